package simplify

import "math"

// verb tags the closed set of curve kinds the engine works on. Degenerate
// quads and cubics are reduced to lower orders before any intersection math
// runs, see reduce.
type verb uint8

const (
	lineVerb verb = iota
	quadVerb
	cubicVerb
)

func (v verb) String() string {
	switch v {
	case lineVerb:
		return "line"
	case quadVerb:
		return "quad"
	}
	return "cubic"
}

// pointCount returns the number of control points for the verb.
func (v verb) pointCount() int {
	return int(v) + 2
}

// curve is one line, quadratic or cubic Bezier segment. It is immutable once
// created; every geometric query is a pure function of the control points and
// a parameter t in [0,1].
type curve struct {
	verb verb
	pts  [4]Point
}

func lineCurve(p0, p1 Point) curve {
	return curve{lineVerb, [4]Point{p0, p1}}
}

func quadCurve(p0, p1, p2 Point) curve {
	return curve{quadVerb, [4]Point{p0, p1, p2}}
}

func cubicCurve(p0, p1, p2, p3 Point) curve {
	return curve{cubicVerb, [4]Point{p0, p1, p2, p3}}
}

func (c curve) start() Point {
	return c.pts[0]
}

func (c curve) end() Point {
	return c.pts[c.verb.pointCount()-1]
}

// ptAtT evaluates the curve position at t.
func (c curve) ptAtT(t float64) Point {
	switch c.verb {
	case lineVerb:
		return c.pts[0].Interpolate(c.pts[1], t)
	case quadVerb:
		s := 1.0 - t
		return Point{
			s*s*c.pts[0].X + 2.0*s*t*c.pts[1].X + t*t*c.pts[2].X,
			s*s*c.pts[0].Y + 2.0*s*t*c.pts[1].Y + t*t*c.pts[2].Y,
		}
	default:
		s := 1.0 - t
		return Point{
			s*s*s*c.pts[0].X + 3.0*s*s*t*c.pts[1].X + 3.0*s*t*t*c.pts[2].X + t*t*t*c.pts[3].X,
			s*s*s*c.pts[0].Y + 3.0*s*s*t*c.pts[1].Y + 3.0*s*t*t*c.pts[2].Y + t*t*t*c.pts[3].Y,
		}
	}
}

// dxdyAtT evaluates the curve derivative at t. At a degenerate end (coincident
// control points) the next control polygon leg stands in so that tangents at
// cusp-like endpoints still have a direction.
func (c curve) dxdyAtT(t float64) Point {
	switch c.verb {
	case lineVerb:
		return c.pts[1].Sub(c.pts[0])
	case quadVerb:
		d := c.pts[1].Sub(c.pts[0]).Mul(1.0 - t).Add(c.pts[2].Sub(c.pts[1]).Mul(t)).Mul(2.0)
		if d.IsZero() {
			d = c.pts[2].Sub(c.pts[0])
		}
		return d
	default:
		s := 1.0 - t
		d01 := c.pts[1].Sub(c.pts[0])
		d12 := c.pts[2].Sub(c.pts[1])
		d23 := c.pts[3].Sub(c.pts[2])
		d := d01.Mul(3.0 * s * s).Add(d12.Mul(6.0 * s * t)).Add(d23.Mul(3.0 * t * t))
		if d.IsZero() {
			if t < 0.5 {
				d = c.pts[2].Sub(c.pts[0])
			} else {
				d = c.pts[3].Sub(c.pts[1])
			}
			if d.IsZero() {
				d = c.pts[3].Sub(c.pts[0])
			}
		}
		return d
	}
}

func splitQuad(p0, p1, p2 Point, t float64) (curve, curve) {
	q01 := p0.Interpolate(p1, t)
	q12 := p1.Interpolate(p2, t)
	m := q01.Interpolate(q12, t)
	return quadCurve(p0, q01, m), quadCurve(m, q12, p2)
}

func splitCubic(p0, p1, p2, p3 Point, t float64) (curve, curve) {
	q01 := p0.Interpolate(p1, t)
	q12 := p1.Interpolate(p2, t)
	q23 := p2.Interpolate(p3, t)
	r0 := q01.Interpolate(q12, t)
	r1 := q12.Interpolate(q23, t)
	m := r0.Interpolate(r1, t)
	return cubicCurve(p0, q01, r0, m), cubicCurve(m, r1, q23, p3)
}

// subCurve extracts the part of the curve between parameters t0 and t1. When
// t0 > t1 the result is oriented from t0 towards t1, ie. reversed.
func (c curve) subCurve(t0, t1 float64) curve {
	if t1 < t0 {
		return c.subCurve(t1, t0).reversed()
	}
	switch c.verb {
	case lineVerb:
		return lineCurve(c.ptAtT(t0), c.ptAtT(t1))
	case quadVerb:
		q := c
		if t1 < 1.0 {
			q, _ = splitQuad(q.pts[0], q.pts[1], q.pts[2], t1)
		}
		if 0.0 < t0 {
			_, q = splitQuad(q.pts[0], q.pts[1], q.pts[2], t0/t1)
		}
		return q
	default:
		q := c
		if t1 < 1.0 {
			q, _ = splitCubic(q.pts[0], q.pts[1], q.pts[2], q.pts[3], t1)
		}
		if 0.0 < t0 {
			_, q = splitCubic(q.pts[0], q.pts[1], q.pts[2], q.pts[3], t0/t1)
		}
		return q
	}
}

func (c curve) reversed() curve {
	n := c.verb.pointCount()
	r := curve{verb: c.verb}
	for i := 0; i < n; i++ {
		r.pts[i] = c.pts[n-1-i]
	}
	return r
}

// bounds returns the control point hull bounds, a conservative bounding box.
func (c curve) bounds() Rect {
	r := rectAt(c.pts[0])
	for i := 1; i < c.verb.pointCount(); i++ {
		r.add(c.pts[i])
	}
	return r
}

// flatMeasure returns the largest distance-scaled deviation of any control
// point from the chord. A numerically flat curve behaves like a line.
func (c curve) flatMeasure() float64 {
	chord := c.end().Sub(c.pts[0])
	length := chord.Length()
	if preciselyZero(length) {
		// degenerate chord, measure spread of control points instead
		m := 0.0
		for i := 1; i < c.verb.pointCount(); i++ {
			d := c.pts[i].Sub(c.pts[0]).Length()
			if m < d {
				m = d
			}
		}
		return m
	}
	m := 0.0
	for i := 1; i < c.verb.pointCount()-1; i++ {
		d := math.Abs(chord.PerpDot(c.pts[i].Sub(c.pts[0]))) / length
		if m < d {
			m = d
		}
	}
	return m
}

// reduce lowers the order of degenerate curves: a quad whose control point is
// collinear with its endpoints becomes a line, a cubic that is a quad or line
// in disguise is lowered likewise. A zero-length result keeps its verb; the
// edge builder drops it.
func (c curve) reduce() curve {
	switch c.verb {
	case lineVerb:
		return c
	case quadVerb:
		if approxZero(c.flatMeasure()) {
			return lineCurve(c.pts[0], c.pts[2])
		}
		return c
	default:
		if approxZero(c.flatMeasure()) {
			return lineCurve(c.pts[0], c.pts[3])
		}
		// a cubic is a disguised quad when both implied quad control points,
		// computed from either cubic control point, agree
		q1 := c.pts[1].Mul(3.0).Sub(c.pts[0]).Mul(0.5)
		q2 := c.pts[2].Mul(3.0).Sub(c.pts[3]).Mul(0.5)
		if almostEqualUlps(q1.X, q2.X) && almostEqualUlps(q1.Y, q2.Y) {
			return quadCurve(c.pts[0], q1.Interpolate(q2, 0.5), c.pts[3])
		}
		return c
	}
}

// isDegenerate is true when all control points coincide.
func (c curve) isDegenerate() bool {
	for i := 1; i < c.verb.pointCount(); i++ {
		if !c.pts[0].ApproxEqual(c.pts[i]) {
			return false
		}
	}
	return true
}

// conic holds the implicit form of a quadratic Bezier,
// x^2*A + xy*B + y^2*C + x*D + y*E + F = 0.
type conic struct {
	a, b, c, d, e, f float64
}

// implicitConic computes the implicit conic coefficients of a quadratic by
// eliminating t from the parametric form with the Sylvester resultant of
// (ax*t^2 + bx*t + cx - x) and (ay*t^2 + by*t + cy - y):
//
//	res = (ax*(cy-y) - ay*(cx-x))^2 - (ax*by - ay*bx)*(bx*(cy-y) - by*(cx-x))
func implicitConic(p0, p1, p2 Point) conic {
	ax := p0.X - 2.0*p1.X + p2.X
	ay := p0.Y - 2.0*p1.Y + p2.Y
	bx := 2.0 * (p1.X - p0.X)
	by := 2.0 * (p1.Y - p0.Y)
	cx := p0.X
	cy := p0.Y

	u0 := ax*cy - ay*cx
	w0 := bx*cy - by*cx
	k := ax*by - ay*bx
	return conic{
		a: ay * ay,
		b: -2.0 * ax * ay,
		c: ax * ax,
		d: 2.0*u0*ay - k*by,
		e: -2.0*u0*ax + k*bx,
		f: u0*u0 - k*w0,
	}
}

// evalConic evaluates the implicit form at a point.
func (co conic) eval(p Point) float64 {
	return co.a*p.X*p.X + co.b*p.X*p.Y + co.c*p.Y*p.Y + co.d*p.X + co.e*p.Y + co.f
}

// match reports whether two conics are coefficient-proportional, ie. describe
// the same curve.
func (co conic) match(o conic) bool {
	// scale both so their largest coefficient magnitude is 1
	s1 := co.maxCoeff()
	s2 := o.maxCoeff()
	if preciselyZero(s1) || preciselyZero(s2) {
		return preciselyZero(s1) && preciselyZero(s2)
	}
	// align signs using the first significant coefficient
	c1 := []float64{co.a / s1, co.b / s1, co.c / s1, co.d / s1, co.e / s1, co.f / s1}
	c2 := []float64{o.a / s2, o.b / s2, o.c / s2, o.d / s2, o.e / s2, o.f / s2}
	sign := 1.0
	for i := range c1 {
		if !approxZero(c1[i]) || !approxZero(c2[i]) {
			if c1[i]*c2[i] < 0.0 {
				sign = -1.0
			}
			break
		}
	}
	for i := range c1 {
		if !approxEqual(c1[i], sign*c2[i]) {
			return false
		}
	}
	return true
}

func (co conic) maxCoeff() float64 {
	m := math.Abs(co.a)
	for _, v := range []float64{co.b, co.c, co.d, co.e, co.f} {
		if m < math.Abs(v) {
			m = math.Abs(v)
		}
	}
	return m
}
