package simplify

import "math"

// flatTol is the absolute deviation from its chord below which a curve is
// intersected as a line.
const flatTol = 1e-7

// curveTAtPoint finds the parameter on c whose position matches pt, by
// solving along the coordinate axis with the larger chord extent and keeping
// the root whose position is nearest. Reports failure when no unit root
// lands on the point.
func curveTAtPoint(c curve, pt Point) (float64, bool) {
	chord := c.end().Sub(c.start())
	axisY := math.Abs(chord.X) < math.Abs(chord.Y)
	v := pt.X
	if axisY {
		v = pt.Y
	}
	var buf [3]float64
	best := 0.0
	bestD := math.Inf(1)
	for _, t := range axisRoots(c, v, axisY, buf[:0]) {
		t, ok := pinT(t)
		if !ok {
			continue
		}
		d := c.ptAtT(t).Sub(pt)
		if dd := d.Dot(d); dd < bestD {
			best, bestD = t, dd
		}
	}
	if math.IsInf(bestD, 1) || !c.ptAtT(best).ApproxEqual(pt) {
		return 0.0, false
	}
	return best, true
}

// powerCoeffs returns the power basis coefficients of one coordinate of a
// quadratic, constant term first.
func powerCoeffs(p0, p1, p2 float64) [3]float64 {
	return [3]float64{p0, 2.0 * (p1 - p0), p0 - 2.0*p1 + p2}
}

func polyMul3(a, b [3]float64) [5]float64 {
	var m [5]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i+j] += a[i] * b[j]
		}
	}
	return m
}

func (is *intersections) quadQuad(a, b curve) {
	is.matchEndpoints(a, b)

	aFlat := a.flatMeasure() < flatTol
	bFlat := b.flatMeasure() < flatTol
	if aFlat || bFlat {
		is.quadsAsLines(a, b, aFlat, bFlat)
		return
	}

	coA := implicitConic(a.pts[0], a.pts[1], a.pts[2])
	if coA.match(implicitConic(b.pts[0], b.pts[1], b.pts[2])) {
		is.coincidentQuads(a, b)
		return
	}

	// substitute b's parametric form into a's implicit conic; the result is a
	// quartic in b's parameter
	x := powerCoeffs(b.pts[0].X, b.pts[1].X, b.pts[2].X)
	y := powerCoeffs(b.pts[0].Y, b.pts[1].Y, b.pts[2].Y)
	xx := polyMul3(x, x)
	xy := polyMul3(x, y)
	yy := polyMul3(y, y)
	var q [5]float64
	for k := 0; k < 5; k++ {
		q[k] = coA.a*xx[k] + coA.b*xy[k] + coA.c*yy[k]
	}
	for k := 0; k < 3; k++ {
		q[k] += coA.d*x[k] + coA.e*y[k]
	}
	q[0] += coA.f

	for _, tb := range quarticRoots(q[4], q[3], q[2], q[1], q[0]) {
		tb, ok := pinT(tb)
		if !ok {
			continue
		}
		pt := b.ptAtT(tb)
		ta, ok := curveTAtPoint(a, pt)
		if !ok {
			continue
		}
		is.insert(ta, tb, pt)
	}
}

// quadsAsLines intersects quads that are flat enough to act as lines,
// remapping chord parameters back onto the curves.
func (is *intersections) quadsAsLines(a, b curve, aFlat, bFlat bool) {
	chordA := lineCurve(a.start(), a.end())
	chordB := lineCurve(b.start(), b.end())
	var tmp intersections
	switch {
	case aFlat && bFlat:
		tmp.lineLine(chordA, chordB)
	case aFlat:
		tmp.lineCurve(chordA, b)
	default:
		tmp.lineCurve(chordB, a)
		tmp.flip()
	}
	for j := 0; j < tmp.used; j++ {
		pt := tmp.pt[j]
		ta, tb := tmp.t[0][j], tmp.t[1][j]
		if aFlat {
			var ok bool
			if ta, ok = curveTAtPoint(a, pt); !ok {
				continue
			}
		}
		if bFlat {
			var ok bool
			if tb, ok = curveTAtPoint(b, pt); !ok {
				continue
			}
		}
		if k := is.insert(ta, tb, pt); 0 <= k && tmp.coin[j] {
			is.coin[k] = true
		}
	}
}

// coincidentQuads handles two quads on the same implicit conic, recording
// their shared parameter range.
func (is *intersections) coincidentQuads(a, b curve) {
	type pair struct {
		ta, tb float64
		pt     Point
	}
	var pairs []pair
	addPair := func(ta, tb float64, pt Point) {
		for _, p := range pairs {
			if approxEqual(p.ta, ta) {
				return
			}
		}
		pairs = append(pairs, pair{ta, tb, pt})
	}
	for tb, pt := range [2]Point{b.start(), b.end()} {
		if ta, ok := curveTAtPoint(a, pt); ok {
			addPair(ta, float64(tb), pt)
		}
	}
	for ta, pt := range [2]Point{a.start(), a.end()} {
		if tb, ok := curveTAtPoint(b, pt); ok {
			addPair(float64(ta), tb, pt)
		}
	}
	if len(pairs) == 0 {
		return
	}
	lo, hi := pairs[0], pairs[0]
	for _, p := range pairs[1:] {
		if p.ta < lo.ta {
			lo = p
		}
		if hi.ta < p.ta {
			hi = p
		}
	}
	if approxEqual(lo.ta, hi.ta) {
		is.insert(lo.ta, lo.tb, lo.pt)
		return
	}
	is.insertCoincident(lo.ta, lo.tb, lo.pt, hi.ta, hi.tb, hi.pt)
}
