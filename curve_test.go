package simplify

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCurveEval(t *testing.T) {
	l := lineCurve(Point{0.0, 0.0}, Point{10.0, 4.0})
	test.T(t, l.ptAtT(0.0), Point{0.0, 0.0})
	test.T(t, l.ptAtT(1.0), Point{10.0, 4.0})
	test.T(t, l.ptAtT(0.5), Point{5.0, 2.0})

	q := quadCurve(Point{0.0, 0.0}, Point{5.0, 10.0}, Point{10.0, 0.0})
	test.T(t, q.ptAtT(0.0), Point{0.0, 0.0})
	test.T(t, q.ptAtT(1.0), Point{10.0, 0.0})
	test.T(t, q.ptAtT(0.5), Point{5.0, 5.0})
	test.Float(t, q.dxdyAtT(0.5).Y, 0.0) // apex

	c := cubicCurve(Point{0.0, 0.0}, Point{0.0, 10.0}, Point{10.0, 10.0}, Point{10.0, 0.0})
	test.T(t, c.ptAtT(0.5), Point{5.0, 7.5})
	test.Float(t, c.dxdyAtT(0.5).Y, 0.0)
}

func TestSubCurve(t *testing.T) {
	q := quadCurve(Point{0.0, 0.0}, Point{5.0, 10.0}, Point{10.0, 0.0})
	sub := q.subCurve(0.25, 0.75)
	test.T(t, sub.start().ApproxEqual(q.ptAtT(0.25)), true)
	test.T(t, sub.end().ApproxEqual(q.ptAtT(0.75)), true)
	test.T(t, sub.ptAtT(0.5).ApproxEqual(q.ptAtT(0.5)), true)

	// reversed extraction
	rev := q.subCurve(0.75, 0.25)
	test.T(t, rev.start().ApproxEqual(q.ptAtT(0.75)), true)
	test.T(t, rev.end().ApproxEqual(q.ptAtT(0.25)), true)

	c := cubicCurve(Point{0.0, 0.0}, Point{3.0, 9.0}, Point{7.0, 9.0}, Point{10.0, 0.0})
	sub = c.subCurve(0.2, 0.9)
	test.T(t, sub.start().ApproxEqual(c.ptAtT(0.2)), true)
	test.T(t, sub.end().ApproxEqual(c.ptAtT(0.9)), true)
	test.T(t, sub.ptAtT(0.5).ApproxEqual(c.ptAtT(0.2+0.7*0.5)), true)
}

func TestReduce(t *testing.T) {
	// collinear quad lowers to a line
	q := quadCurve(Point{0.0, 0.0}, Point{5.0, 5.0}, Point{10.0, 10.0})
	test.T(t, q.reduce().verb, lineVerb)

	// curved quad stays
	q = quadCurve(Point{0.0, 0.0}, Point{5.0, 10.0}, Point{10.0, 0.0})
	test.T(t, q.reduce().verb, quadVerb)

	// a cubic that is an elevated quad lowers back
	orig := quadCurve(Point{0.0, 0.0}, Point{6.0, 9.0}, Point{12.0, 0.0})
	elevated := cubicCurve(
		orig.pts[0],
		orig.pts[0].Interpolate(orig.pts[1], 2.0/3.0),
		orig.pts[2].Interpolate(orig.pts[1], 2.0/3.0),
		orig.pts[2])
	red := elevated.reduce()
	test.T(t, red.verb, quadVerb)
	test.T(t, red.ptAtT(0.3).ApproxEqual(orig.ptAtT(0.3)), true)

	// collinear cubic lowers to a line
	c := cubicCurve(Point{0.0, 0.0}, Point{2.0, 2.0}, Point{7.0, 7.0}, Point{10.0, 10.0})
	test.T(t, c.reduce().verb, lineVerb)
}

func TestImplicitConic(t *testing.T) {
	q := quadCurve(Point{0.0, 0.0}, Point{1.0, 1.0}, Point{2.0, 0.0})
	co := implicitConic(q.pts[0], q.pts[1], q.pts[2])
	for _, tt := range []float64{0.0, 0.2, 0.5, 0.8, 1.0} {
		test.Float(t, co.eval(q.ptAtT(tt)), 0.0)
	}
	test.T(t, approxZero(co.eval(Point{1.0, 1.0})), false)

	// a piece of the quad lies on the same conic
	sub := q.subCurve(0.25, 0.75)
	co2 := implicitConic(sub.pts[0], sub.pts[1], sub.pts[2])
	test.T(t, co.match(co2), true)

	other := quadCurve(Point{0.0, 0.0}, Point{1.0, 2.0}, Point{2.0, 0.0})
	co3 := implicitConic(other.pts[0], other.pts[1], other.pts[2])
	test.T(t, co.match(co3), false)
}

func TestFlatMeasure(t *testing.T) {
	test.Float(t, lineCurve(Point{0.0, 0.0}, Point{10.0, 0.0}).flatMeasure(), 0.0)
	q := quadCurve(Point{0.0, 0.0}, Point{5.0, 4.0}, Point{10.0, 0.0})
	test.Float(t, q.flatMeasure(), 4.0)
	flat := quadCurve(Point{0.0, 0.0}, Point{5.0, 0.0}, Point{10.0, 0.0})
	test.Float(t, flat.flatMeasure(), 0.0)
}
