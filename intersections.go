package simplify

// maxIntersections bounds the number of crossings between two curves the
// engine tracks; two cubics intersect in at most nine points.
const maxIntersections = 9

// intersections collects the crossings of a curve pair as parameter pairs
// with their coordinates. Entries stay sorted by the first curve's t.
// Coincident runs are stored as flagged entry pairs delimiting the shared
// parameter ranges.
type intersections struct {
	t       [2][maxIntersections]float64
	pt      [maxIntersections]Point
	coin    [maxIntersections]bool
	used    int
	swapped bool
}

func (is *intersections) count() int {
	return is.used
}

// insert adds a crossing at t0 on the first curve and t1 on the second,
// keeping entries ordered by t0 and coalescing near-duplicates. It returns
// the entry index, or -1 when the table is full.
func (is *intersections) insert(t0, t1 float64, pt Point) int {
	for j := 0; j < is.used; j++ {
		if approxEqual(is.t[0][j], t0) && approxEqual(is.t[1][j], t1) {
			return j
		}
	}
	if is.used == maxIntersections {
		return -1
	}
	pos := is.used
	for j := 0; j < is.used; j++ {
		if t0 < is.t[0][j] {
			pos = j
			break
		}
	}
	for j := is.used; j > pos; j-- {
		is.t[0][j] = is.t[0][j-1]
		is.t[1][j] = is.t[1][j-1]
		is.pt[j] = is.pt[j-1]
		is.coin[j] = is.coin[j-1]
	}
	is.t[0][pos], is.t[1][pos], is.pt[pos] = t0, t1, pt
	is.coin[pos] = false
	is.used++
	return pos
}

// insertCoincident records both ends of a shared run between the curves.
func (is *intersections) insertCoincident(t0a, t1a float64, pa Point, t0b, t1b float64, pb Point) {
	if j := is.insert(t0a, t1a, pa); 0 <= j {
		is.coin[j] = true
	}
	if j := is.insert(t0b, t1b, pb); 0 <= j {
		is.coin[j] = true
	}
}

// flip swaps the roles of the two curves in the recorded entries.
func (is *intersections) flip() {
	for j := 0; j < is.used; j++ {
		is.t[0][j], is.t[1][j] = is.t[1][j], is.t[0][j]
	}
	// restore ordering on the new first row
	for a := 1; a < is.used; a++ {
		for b := a; 0 < b && is.t[0][b] < is.t[0][b-1]; b-- {
			is.t[0][b], is.t[0][b-1] = is.t[0][b-1], is.t[0][b]
			is.t[1][b], is.t[1][b-1] = is.t[1][b-1], is.t[1][b]
			is.pt[b], is.pt[b-1] = is.pt[b-1], is.pt[b]
			is.coin[b], is.coin[b-1] = is.coin[b-1], is.coin[b]
		}
	}
}

// hasCoincidence reports whether any entry is part of a coincident run.
func (is *intersections) hasCoincidence() bool {
	for j := 0; j < is.used; j++ {
		if is.coin[j] {
			return true
		}
	}
	return false
}

// intersect computes the crossings of two reduced curves. The first row of t
// values belongs to a, the second to b.
func intersect(a, b curve, is *intersections) {
	if b.verb < a.verb {
		intersect(b, a, is)
		is.flip()
		is.swapped = !is.swapped
		return
	}
	switch {
	case a.verb == lineVerb && b.verb == lineVerb:
		is.lineLine(a, b)
	case a.verb == lineVerb && b.verb == quadVerb:
		is.lineQuad(a, b)
	case a.verb == lineVerb && b.verb == cubicVerb:
		is.lineCubic(a, b)
	case a.verb == quadVerb && b.verb == quadVerb:
		is.quadQuad(a, b)
	case a.verb == quadVerb && b.verb == cubicVerb:
		is.quadCubic(a, b)
	default:
		is.cubicCubic(a, b)
	}
}

// pinT clamps a parameter that is within tolerance of the unit interval onto
// it, and reports whether it was inside at all.
func pinT(t float64) (float64, bool) {
	if t < 0.0 {
		return 0.0, approxZero(t)
	}
	if 1.0 < t {
		return 1.0, approxEqual(t, 1.0)
	}
	return t, true
}

// matchEndpoints inserts the crossings where the two curves share endpoints,
// so that the root finders never have to resolve an exact touch.
func (is *intersections) matchEndpoints(a, b curve) {
	aEnds := [2]Point{a.start(), a.end()}
	bEnds := [2]Point{b.start(), b.end()}
	for ai, ap := range aEnds {
		for bi, bp := range bEnds {
			if ap.ApproxEqual(bp) {
				is.insert(float64(ai), float64(bi), ap)
			}
		}
	}
}

////////////////////////////////////////////////////////////////

func (is *intersections) lineLine(a, b curve) {
	is.matchEndpoints(a, b)
	a0, a1 := a.pts[0], a.pts[1]
	b0, b1 := b.pts[0], b.pts[1]
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.PerpDot(db)
	ab0 := b0.Sub(a0)

	lenA := da.Length()
	lenB := db.Length()
	if preciselyZero(lenA) || preciselyZero(lenB) {
		return
	}
	if !approxZero(denom / (lenA * lenB)) {
		ta := ab0.PerpDot(db) / denom
		tb := ab0.PerpDot(da) / denom
		ta, okA := pinT(ta)
		tb, okB := pinT(tb)
		if okA && okB {
			is.insert(ta, tb, a.ptAtT(ta))
		}
		return
	}

	// parallel; coincident when b's start lies on a's carrier line
	if !approxZero(da.PerpDot(ab0) / lenA) {
		return
	}
	lenSq := da.Dot(da)
	tb0 := ab0.Dot(da) / lenSq
	tb1 := b1.Sub(a0).Dot(da) / lenSq
	lo, hi := tb0, tb1
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi < -epsilon || 1.0+epsilon < lo {
		return
	}
	if lo < 0.0 {
		lo = 0.0
	}
	if 1.0 < hi {
		hi = 1.0
	}
	onB := func(ta float64) float64 {
		// map a's parameter onto b along the shared carrier
		t := (ta - tb0) / (tb1 - tb0)
		t, _ = pinT(t)
		return t
	}
	if approxEqual(lo, hi) {
		is.insert(lo, onB(lo), a.ptAtT(lo))
		return
	}
	is.insertCoincident(lo, onB(lo), a.ptAtT(lo), hi, onB(hi), a.ptAtT(hi))
}

// axisRoots returns the parameters where the curve's X (or Y when axisY)
// coordinate equals v; roots are not restricted to the unit interval.
func axisRoots(c curve, v float64, axisY bool, roots []float64) []float64 {
	coord := func(p Point) float64 {
		if axisY {
			return p.Y
		}
		return p.X
	}
	e0 := coord(c.pts[0]) - v
	switch c.verb {
	case lineVerb:
		d := coord(c.pts[1]) - coord(c.pts[0])
		if preciselyZero(d) {
			return roots
		}
		return append(roots, -e0/d)
	case quadVerb:
		a := coord(c.pts[0]) - 2.0*coord(c.pts[1]) + coord(c.pts[2])
		b := 2.0 * (coord(c.pts[1]) - coord(c.pts[0]))
		return quadraticRootsX(a, b, e0, roots)
	default:
		a := coord(c.pts[3]) - coord(c.pts[0]) + 3.0*(coord(c.pts[1])-coord(c.pts[2]))
		b := 3.0 * (coord(c.pts[0]) - 2.0*coord(c.pts[1]) + coord(c.pts[2]))
		cc := 3.0 * (coord(c.pts[1]) - coord(c.pts[0]))
		return cubicRootsX(a, b, cc, e0, roots)
	}
}

// lineCurveRoots finds where the given curve crosses the carrier line of l,
// as parameters on the curve.
func lineCurveRoots(l, c curve, roots []float64) []float64 {
	d := l.pts[1].Sub(l.pts[0])
	n := Point{-d.Y, d.X}
	e := func(p Point) float64 {
		return n.Dot(p.Sub(l.pts[0]))
	}
	switch c.verb {
	case quadVerb:
		e0, e1, e2 := e(c.pts[0]), e(c.pts[1]), e(c.pts[2])
		return quadraticRootsX(e0-2.0*e1+e2, 2.0*(e1-e0), e0, roots)
	default:
		e0, e1, e2, e3 := e(c.pts[0]), e(c.pts[1]), e(c.pts[2]), e(c.pts[3])
		return cubicRootsX(e3-e0+3.0*(e1-e2), 3.0*(e0-2.0*e1+e2), 3.0*(e1-e0), e0, roots)
	}
}

// lineCurve intersects the line l with the higher order curve c, inserting
// l's parameters in the first row.
func (is *intersections) lineCurve(l, c curve) {
	is.matchEndpoints(l, c)
	d := l.pts[1].Sub(l.pts[0])
	lenSq := d.Dot(d)
	if preciselyZero(lenSq) {
		return
	}
	var buf [3]float64
	for _, tc := range lineCurveRoots(l, c, buf[:0]) {
		tc, ok := pinT(tc)
		if !ok {
			continue
		}
		pt := c.ptAtT(tc)
		tl := pt.Sub(l.pts[0]).Dot(d) / lenSq
		tl, ok = pinT(tl)
		if !ok {
			continue
		}
		if tl == 0.0 {
			pt = l.pts[0]
		} else if tl == 1.0 {
			pt = l.pts[1]
		}
		is.insert(tl, tc, pt)
	}
}

func (is *intersections) lineQuad(l, q curve) {
	is.lineCurve(l, q)
}

func (is *intersections) lineCubic(l, c curve) {
	is.lineCurve(l, c)
}
