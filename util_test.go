package simplify

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestApprox(t *testing.T) {
	test.T(t, approxZero(0.0), true)
	test.T(t, approxZero(epsilon/2.0), true)
	test.T(t, approxZero(epsilon*2.0), false)
	test.T(t, approxEqual(1.0, 1.0+epsilon/2.0), true)
	test.T(t, approxEqual(1.0, 1.0+epsilon*2.0), false)
	test.T(t, preciselyZero(0.0), true)
	test.T(t, preciselyZero(epsilon), false)
	test.T(t, preciselyEqual(0.5, 0.5), true)
}

func TestBetween(t *testing.T) {
	test.T(t, between(0.0, 0.5, 1.0), true)
	test.T(t, between(1.0, 0.5, 0.0), true)
	test.T(t, between(0.0, 0.0, 1.0), true)
	test.T(t, between(0.0, 1.0, 1.0), true)
	test.T(t, between(0.0, 1.5, 1.0), false)
	test.T(t, approxBetween(0.0, 1.0+epsilon/2.0, 1.0), true)
}

func TestAlmostEqualUlps(t *testing.T) {
	test.T(t, almostEqualUlps(1.0, 1.0), true)
	test.T(t, almostEqualUlps(1.0, math.Nextafter(1.0, 2.0)), true)
	test.T(t, almostEqualUlps(1.0, 1.0001), false)
	test.T(t, almostEqualUlps(-1.0, 1.0), false)
	test.T(t, almostEqualUlps(0.0, 0.0), true)
}

func TestPoint(t *testing.T) {
	p := Point{2.0, 3.0}
	q := Point{4.0, 7.0}
	test.T(t, p.Add(q), Point{6.0, 10.0})
	test.T(t, q.Sub(p), Point{2.0, 4.0})
	test.T(t, p.Mul(2.0), Point{4.0, 6.0})
	test.Float(t, p.Dot(q), 29.0)
	test.Float(t, p.PerpDot(q), 2.0)
	test.Float(t, Point{3.0, 4.0}.Length(), 5.0)
	test.T(t, p.Interpolate(q, 0.5), Point{3.0, 5.0})
	test.T(t, p.ApproxEqual(Point{2.0, 3.0}), true)
	test.T(t, p.ApproxEqual(q), false)
	test.String(t, p.String(), "(2,3)")
}

func TestRect(t *testing.T) {
	r := rectAt(Point{1.0, 2.0})
	r.add(Point{3.0, -1.0})
	test.T(t, r, Rect{1.0, -1.0, 3.0, 2.0})
	s := rectAt(Point{5.0, 5.0})
	r.union(s)
	test.T(t, r, Rect{1.0, -1.0, 5.0, 5.0})
	test.T(t, r.intersects(Rect{4.0, 4.0, 6.0, 6.0}), true)
	test.T(t, r.intersects(Rect{6.0, 6.0, 7.0, 7.0}), false)
	test.T(t, r.intersects(Rect{5.0, 5.0, 7.0, 7.0}), true) // touching counts
}
