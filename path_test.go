package simplify

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathBuild(t *testing.T) {
	p := &Path{}
	test.T(t, p.Empty(), true)
	p.MoveTo(1.0, 2.0)
	p.LineTo(3.0, 4.0)
	x, y := p.Pos()
	test.Float(t, x, 3.0)
	test.Float(t, y, 4.0)
	p.Close()
	x, y = p.Pos()
	test.Float(t, x, 1.0)
	test.Float(t, y, 2.0)
	test.T(t, p.Empty(), false)
}

func TestPathEquals(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10z")
	test.T(t, p.Equals(MustParseSVGPath("M0 0L10 0L10 10z")), true)
	test.T(t, p.Equals(MustParseSVGPath("M0 0L10 0L10 10")), false)
	test.T(t, p.Equals(MustParseSVGPath("M0 0L10 0L10 11z")), false)
}

func TestPathBounds(t *testing.T) {
	p := &Path{}
	p.Rect(1.0, 2.0, 10.0, 20.0)
	test.T(t, p.Bounds(), Rect{1.0, 2.0, 11.0, 22.0})

	// control point hull bounds are conservative
	q := &Path{}
	q.MoveTo(0.0, 0.0)
	q.QuadTo(5.0, 10.0, 10.0, 0.0)
	test.T(t, q.Bounds(), Rect{0.0, 0.0, 10.0, 10.0})
}

func TestParseSVGPath(t *testing.T) {
	test.String(t, ParseSVGPath([]byte("M0 0L10 0L10 10L0 10z")).String(), "M0 0L10 0L10 10L0 10z")
	test.String(t, MustParseSVGPath("m10 10h5v5z").String(), "M10 10L15 10L15 15z")
	test.String(t, MustParseSVGPath("M0 0l10 0 0 10").String(), "M0 0L10 0L10 10")
	test.String(t, MustParseSVGPath("M0 0Q5 10 10 0z").String(), "M0 0Q5 10 10 0z")
	test.String(t, MustParseSVGPath("M0 0C0 5 10 5 10 0").String(), "M0 0C0 5 10 5 10 0")

	// smooth continuations mirror the previous control point
	test.String(t, MustParseSVGPath("M0 0Q5 10 10 0T20 0").String(), "M0 0Q5 10 10 0Q15 -10 20 0")
}

func TestParseSVGPathArc(t *testing.T) {
	p := MustParseSVGPath("M0 0A5 5 0 0 1 10 0")
	x, y := p.Pos()
	test.Float(t, x, 10.0)
	test.Float(t, y, 0.0)
	// the arc was converted to cubics
	hasCube := false
	for _, cmd := range p.cmds {
		test.T(t, cmd == moveToCmd || cmd == cubeToCmd, true)
		if cmd == cubeToCmd {
			hasCube = true
		}
	}
	test.T(t, hasCube, true)
}

func TestInterior(t *testing.T) {
	p := &Path{}
	p.Rect(0.0, 0.0, 10.0, 10.0)
	test.T(t, p.Interior(5.0, 5.0, Winding), true)
	test.T(t, p.Interior(5.0, 5.0, EvenOdd), true)
	test.T(t, p.Interior(15.0, 5.0, Winding), false)
	test.T(t, p.Interior(5.0, -1.0, Winding), false)

	// nested rectangles with equal orientation double the winding
	p.Rect(2.0, 2.0, 6.0, 6.0)
	test.T(t, p.Interior(5.0, 5.0, Winding), true)
	test.T(t, p.Interior(5.0, 5.0, EvenOdd), false)
	test.T(t, p.Interior(1.0, 1.0, Winding), true)
	test.T(t, p.Interior(1.0, 1.0, EvenOdd), true)
}

func TestInteriorCurved(t *testing.T) {
	p := MustParseSVGPath("M0 0Q10 0 10 10Q0 10 0 0z")
	test.T(t, p.Interior(5.0, 5.0, Winding), true)
	test.T(t, p.Interior(9.5, 0.5, Winding), false) // outside the first quad
	test.T(t, p.Interior(0.5, 9.5, Winding), false)
}
