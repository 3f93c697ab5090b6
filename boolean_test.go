package simplify

import (
	"testing"

	"github.com/tdewolff/test"
)

func rect(x, y, w, h float64) *Path {
	p := &Path{}
	p.Rect(x, y, w, h)
	return p
}

func TestBooleanRects(t *testing.T) {
	a := rect(0.0, 0.0, 10.0, 10.0)
	b := rect(5.0, 5.0, 10.0, 10.0)
	bounds := Rect{-1.0, -1.0, 16.0, 16.0}

	union := a.Or(b)
	moves, lines, _, _ := countCmds(union)
	test.T(t, moves, 1)
	test.T(t, lines, 8)
	test.T(t, union.Bounds(), Rect{0.0, 0.0, 15.0, 15.0})
	sampleCompare(t, union, bounds, func(x, y float64) bool {
		return a.Interior(x, y, Winding) || b.Interior(x, y, Winding)
	})

	isect := a.And(b)
	moves, lines, _, _ = countCmds(isect)
	test.T(t, moves, 1)
	test.T(t, lines, 4)
	test.T(t, isect.Bounds(), Rect{5.0, 5.0, 10.0, 10.0})
	sampleCompare(t, isect, bounds, func(x, y float64) bool {
		return a.Interior(x, y, Winding) && b.Interior(x, y, Winding)
	})

	diff := a.Not(b)
	sampleCompare(t, diff, bounds, func(x, y float64) bool {
		return a.Interior(x, y, Winding) && !b.Interior(x, y, Winding)
	})

	xor := a.Xor(b)
	sampleCompare(t, xor, bounds, func(x, y float64) bool {
		return a.Interior(x, y, Winding) != b.Interior(x, y, Winding)
	})
}

func TestBooleanCommutative(t *testing.T) {
	a := rect(0.0, 0.0, 10.0, 10.0)
	b := rect(3.0, -2.0, 4.0, 20.0)
	bounds := Rect{-3.0, -3.0, 12.0, 19.0}

	ab, ba := a.Or(b), b.Or(a)
	sampleCompare(t, ba, bounds, func(x, y float64) bool {
		return ab.Interior(x, y, Winding)
	})
	ab, ba = a.And(b), b.And(a)
	sampleCompare(t, ba, bounds, func(x, y float64) bool {
		return ab.Interior(x, y, Winding)
	})
}

func TestBooleanPartition(t *testing.T) {
	// difference, intersection and reverse difference partition the union
	a := rect(0.0, 0.0, 10.0, 10.0)
	b := rect(5.0, 5.0, 10.0, 10.0)
	union := a.Or(b)
	parts := []*Path{a.Not(b), a.And(b), b.Not(a)}

	const n = 21
	bounds := Rect{-1.0, -1.0, 16.0, 16.0}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := bounds.Left + (bounds.Right-bounds.Left)*(float64(i)+0.5)/n
			y := bounds.Top + (bounds.Bottom-bounds.Top)*(float64(j)+0.5)/n
			in := 0
			for _, p := range parts {
				if p.Interior(x, y, Winding) {
					in++
				}
			}
			if union.Interior(x, y, Winding) {
				test.T(t, in, 1)
			} else {
				test.T(t, in, 0)
			}
		}
	}
}

func TestBooleanSelf(t *testing.T) {
	a := rect(0.0, 0.0, 10.0, 10.0)
	test.T(t, a.Xor(a).Empty(), true)
	test.T(t, a.Not(a).Empty(), true)

	union := a.Or(a)
	sampleCompare(t, union, Rect{-1.0, -1.0, 11.0, 11.0}, func(x, y float64) bool {
		return a.Interior(x, y, Winding)
	})
}

func TestBooleanSharedSeam(t *testing.T) {
	// operands overlapping along whole edges fold their contributions onto one
	// segment; the folded edges must still be traversal candidates
	a := rect(0.0, 0.0, 10.0, 10.0)
	b := rect(0.0, 0.0, 10.0, 5.0)
	union := a.Or(b)
	moves, lines, _, _ := countCmds(union)
	test.T(t, moves, 1)
	test.T(t, lines, 4)
	test.T(t, union.Bounds(), Rect{0.0, 0.0, 10.0, 10.0})
	sampleCompare(t, union, Rect{-1.0, -1.0, 11.0, 11.0}, func(x, y float64) bool {
		return a.Interior(x, y, Winding)
	})

	// side by side rectangles from different operands merge seamlessly
	c := rect(0.0, 0.0, 5.0, 10.0)
	d := rect(5.0, 0.0, 5.0, 10.0)
	union = c.Or(d)
	moves, lines, _, _ = countCmds(union)
	test.T(t, moves, 1)
	test.T(t, lines, 4)
	test.T(t, c.And(d).Empty(), true)
}

func TestBooleanDisjoint(t *testing.T) {
	a := rect(0.0, 0.0, 4.0, 4.0)
	b := rect(6.0, 0.0, 4.0, 4.0)

	test.T(t, a.And(b).Empty(), true)
	union := a.Or(b)
	moves, _, _, _ := countCmds(union)
	test.T(t, moves, 2)
	diff := a.Not(b)
	sampleCompare(t, diff, Rect{-1.0, -1.0, 11.0, 5.0}, func(x, y float64) bool {
		return a.Interior(x, y, Winding)
	})
}

func TestBooleanContained(t *testing.T) {
	a := rect(0.0, 0.0, 10.0, 10.0)
	b := rect(3.0, 3.0, 4.0, 4.0)
	bounds := Rect{-1.0, -1.0, 11.0, 11.0}

	// the hole punched by the difference must be wound opposite
	diff := a.Not(b)
	moves, lines, _, _ := countCmds(diff)
	test.T(t, moves, 2)
	test.T(t, lines, 8)
	sampleCompare(t, diff, bounds, func(x, y float64) bool {
		return a.Interior(x, y, Winding) && !b.Interior(x, y, Winding)
	})

	sampleCompare(t, a.Or(b), bounds, func(x, y float64) bool {
		return a.Interior(x, y, Winding)
	})
	sampleCompare(t, a.And(b), bounds, func(x, y float64) bool {
		return b.Interior(x, y, Winding)
	})
}

func TestBooleanCurved(t *testing.T) {
	a := MustParseSVGPath("M0 0Q10 0 10 10Q0 10 0 0z")
	b := rect(4.0, -1.0, 12.0, 5.0)
	bounds := Rect{-1.0, -2.0, 17.0, 11.0}

	for _, op := range []Op{Union, Intersect, Difference, Xor} {
		got := Boolean(a, b, Winding, Winding, op, nil)
		combine := op.combiner()
		sampleCompare(t, got, bounds, func(x, y float64) bool {
			return combine(a.Interior(x, y, Winding), b.Interior(x, y, Winding))
		})
	}
}

func TestBooleanEvenOddOperand(t *testing.T) {
	// nested rects under even-odd describe a ring
	ring := &Path{}
	ring.Rect(0.0, 0.0, 10.0, 10.0)
	ring.Rect(2.0, 2.0, 6.0, 6.0)
	b := rect(4.0, 4.0, 10.0, 2.0)
	bounds := Rect{-1.0, -1.0, 15.0, 11.0}

	got := Boolean(ring, b, EvenOdd, Winding, Union, nil)
	sampleCompare(t, got, bounds, func(x, y float64) bool {
		return ring.Interior(x, y, EvenOdd) || b.Interior(x, y, Winding)
	})
}

func TestOpString(t *testing.T) {
	test.String(t, Union.String(), "union")
	test.String(t, Intersect.String(), "intersect")
	test.String(t, Difference.String(), "difference")
	test.String(t, Xor.String(), "xor")
}
