package simplify

import "math"

// Polynomial root finding for the intersection routines. Every solver returns
// all real roots; callers pin or filter against the unit parameter interval
// themselves since they differ in how they treat endpoints.

// quadraticRootsX returns the real roots of a*t^2 + b*t + c.
func quadraticRootsX(a, b, c float64, roots []float64) []float64 {
	if approxZero(a) {
		if approxZero(b) {
			return roots
		}
		return append(roots, -c/b)
	}
	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return roots
	}
	// Citardauq: compute the root where b and the radical do not cancel, and
	// derive the other from the product of roots.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	q = -0.5 * (b + q)
	if approxZero(q) {
		return append(roots, 0.0, 0.0)
	}
	roots = append(roots, q/a)
	if discriminant == 0.0 {
		return roots
	}
	return append(roots, c/q)
}

// cubicRootsX returns the real roots of a*t^3 + b*t^2 + c*t + d using the
// trigonometric method for three real roots and Cardano's for one.
func cubicRootsX(a, b, c, d float64, roots []float64) []float64 {
	if approxZero(a) {
		return quadraticRootsX(b, c, d, roots)
	}
	if approxZero(d) {
		// t=0 is a root, deflate
		roots = quadraticRootsX(a, b, c, roots)
		for _, r := range roots {
			if preciselyZero(r) {
				return roots
			}
		}
		return append(roots, 0.0)
	}
	if approxZero(a + b + c + d) {
		// coefficients sum to zero, t=1 is a root; deflate by (t-1)
		roots = quadraticRootsX(a, a+b, -d, roots)
		for _, r := range roots {
			if preciselyEqual(r, 1.0) {
				return roots
			}
		}
		return append(roots, 1.0)
	}

	a2 := b / a
	a1 := c / a
	a0 := d / a
	q := (a2*a2 - 3.0*a1) / 9.0
	r := (2.0*a2*a2*a2 - 9.0*a2*a1 + 27.0*a0) / 54.0
	r2 := r * r
	q3 := q * q * q
	adiv3 := a2 / 3.0
	if r2 < q3 {
		// three real roots
		theta := math.Acos(r / math.Sqrt(q3))
		neg2RootQ := -2.0 * math.Sqrt(q)
		roots = append(roots,
			neg2RootQ*math.Cos(theta/3.0)-adiv3,
			neg2RootQ*math.Cos((theta+2.0*math.Pi)/3.0)-adiv3,
			neg2RootQ*math.Cos((theta-2.0*math.Pi)/3.0)-adiv3)
		return roots
	}
	s := math.Cbrt(math.Abs(r) + math.Sqrt(r2-q3))
	if r > 0.0 {
		s = -s
	}
	if s != 0.0 {
		s += q / s
	}
	return append(roots, s-adiv3)
}

// quarticRoots returns the real roots of a*t^4 + b*t^3 + c*t^2 + d*t + e,
// using the resolvent cubic to factor the depressed quartic into two
// quadratics. Numerically equal roots are coalesced.
func quarticRoots(a, b, c, d, e float64) []float64 {
	var buf [4]float64
	roots := buf[:0]
	if approxZero(a) {
		return dedupRoots(cubicRootsX(b, c, d, e, roots))
	}
	if approxZero(e) {
		// t=0 is a root, deflate
		roots = cubicRootsX(a, b, c, d, roots)
		for _, r := range roots {
			if preciselyZero(r) {
				return dedupRoots(roots)
			}
		}
		return dedupRoots(append(roots, 0.0))
	}
	if approxZero(a + b + c + d + e) {
		// t=1 is a root, deflate by (t-1)
		roots = cubicRootsX(a, a+b, a+b+c, -e, roots)
		for _, r := range roots {
			if preciselyEqual(r, 1.0) {
				return dedupRoots(roots)
			}
		}
		return dedupRoots(append(roots, 1.0))
	}

	// normalize to monic and substitute t = u - b/4 to kill the cubic term
	b1 := b / a
	c1 := c / a
	d1 := d / a
	e1 := e / a
	p := c1 - 3.0/8.0*b1*b1
	q := d1 - 0.5*b1*c1 + b1*b1*b1/8.0
	r := e1 - 0.25*b1*d1 + b1*b1*c1/16.0 - 3.0/256.0*b1*b1*b1*b1

	if approxZero(q) {
		// biquadratic: u^4 + p*u^2 + r
		var qbuf [2]float64
		for _, u2 := range quadraticRootsX(1.0, p, r, qbuf[:0]) {
			if u2 < 0.0 {
				if !approxZero(u2) {
					continue
				}
				u2 = 0.0
			}
			u := math.Sqrt(u2)
			roots = append(roots, u-b1/4.0, -u-b1/4.0)
		}
		return dedupRoots(roots)
	}

	// resolvent cubic; any real root z factors the quartic
	var zbuf [3]float64
	zs := cubicRootsX(1.0, -0.5*p, -r, 0.5*r*p-q*q/8.0, zbuf[:0])
	if len(zs) == 0 {
		return roots
	}
	z := zs[0]
	u := z*z - r
	v := 2.0*z - p
	if u < 0.0 {
		if !approxZero(u) {
			return roots
		}
		u = 0.0
	} else {
		u = math.Sqrt(u)
	}
	if v < 0.0 {
		if !approxZero(v) {
			return roots
		}
		v = 0.0
	} else {
		v = math.Sqrt(v)
	}
	if q < 0.0 {
		v = -v
	}
	var qbuf [2]float64
	roots = quadraticRootsX(1.0, v, z-u, roots)
	for _, t := range quadraticRootsX(1.0, -v, z+u, qbuf[:0]) {
		roots = append(roots, t)
	}
	for i := range roots {
		roots[i] -= b1 / 4.0
	}
	return dedupRoots(roots)
}

func dedupRoots(roots []float64) []float64 {
	keep := roots[:0]
outer:
	for _, r := range roots {
		for _, k := range keep {
			if approxEqual(k, r) {
				continue outer
			}
		}
		keep = append(keep, r)
	}
	return keep
}
