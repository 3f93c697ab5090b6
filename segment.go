package simplify

import "math"

// minWindSum marks a winding sum that has not been computed yet.
const minWindSum = math.MinInt32

// otherLink connects a break point to the matching break point on another
// segment that passes through the same coordinate.
type otherLink struct {
	seg   *segment
	t     float64
	index int // span index on seg, resolved by fixOtherTIndex
}

// span is one break point on a segment. The edge from this break to the next
// one carries the attributes stored here: its winding contribution, the
// winding sums once known, and whether it was consumed by the traversal.
type span struct {
	t         float64
	pt        Point
	others    []otherLink
	windSum   int // winding left of the edge in increasing t, minWindSum until known
	oppSum    int // same for the other operand
	windValue int // contribution to the own operand's winding
	oppValue  int // contribution to the other operand's winding
	done      bool
	tiny      bool // edge to the next span is shorter than the tolerances resolve
}

// segment is one curve of a contour, split at its intersections with other
// segments into edges delimited by spans.
type segment struct {
	c       curve
	spans   []span
	bounds  Rect
	operand bool // true for the second path of a binary operation
	xor     bool // own operand fills even-odd
	id      int
}

func newSegment(c curve, operand, xorFill bool, id int) *segment {
	return &segment{
		c:       c,
		bounds:  c.bounds(),
		operand: operand,
		xor:     xorFill,
		id:      id,
		spans: []span{
			{t: 0.0, pt: c.start(), windSum: minWindSum, oppSum: minWindSum, windValue: 1},
			{t: 1.0, pt: c.end(), windSum: minWindSum, oppSum: minWindSum, windValue: 1},
		},
	}
}

func (s *segment) edgeCount() int {
	return len(s.spans) - 1
}

func (s *segment) done() bool {
	for i := 0; i < s.edgeCount(); i++ {
		if !s.spans[i].done {
			return false
		}
	}
	return true
}

// addT splits the segment at parameter t, linking the new break to the
// matching parameter on the other segment. An existing break within
// tolerance is reused. Returns the span index of the break.
func (s *segment) addT(other *segment, pt Point, t, otherT float64) int {
	pos := len(s.spans)
	for i := range s.spans {
		sp := &s.spans[i]
		if preciselyEqual(sp.t, t) || approxEqual(sp.t, t) && sp.pt.ApproxEqual(pt) {
			if other != nil {
				sp.others = append(sp.others, otherLink{seg: other, t: otherT})
			}
			return i
		}
		if t < sp.t {
			pos = i
			break
		}
	}
	// the edge being split keeps its attributes on both halves
	prev := s.spans[pos-1]
	sp := span{
		t:         t,
		pt:        pt,
		windSum:   minWindSum,
		oppSum:    minWindSum,
		windValue: prev.windValue,
		oppValue:  prev.oppValue,
		done:      prev.done,
	}
	if other != nil {
		sp.others = []otherLink{{seg: other, t: otherT}}
	}
	s.spans = append(s.spans, span{})
	copy(s.spans[pos+1:], s.spans[pos:])
	s.spans[pos] = sp
	s.markTiny(pos - 1)
	s.markTiny(pos)
	return pos
}

// markTiny flags the edge at index when its span is too short to resolve.
func (s *segment) markTiny(i int) {
	if i < 0 || s.edgeCount() <= i {
		return
	}
	sp, next := &s.spans[i], &s.spans[i+1]
	if approxEqual(sp.t, next.t) && sp.pt.ApproxEqual(next.pt) {
		sp.tiny = true
		sp.done = true
	}
}

// addTPair records an intersection between two segments, splitting both.
func addTPair(a *segment, ta float64, b *segment, tb float64, pt Point) {
	a.addT(b, pt, ta, tb)
	b.addT(a, pt, tb, ta)
}

// fixOtherTIndex resolves the span indices of all cross links. Links are
// added while both segments are still being split, so indices can only be
// computed once all break points exist.
func (s *segment) fixOtherTIndex() {
	for i := range s.spans {
		for j := range s.spans[i].others {
			l := &s.spans[i].others[j]
			l.index = l.seg.findSpanIndex(l.t, s.spans[i].pt)
		}
	}
}

// findSpanIndex locates the span at parameter t, falling back to coordinate
// matching when t landed on a coalesced break.
func (s *segment) findSpanIndex(t float64, pt Point) int {
	for i := range s.spans {
		if preciselyEqual(s.spans[i].t, t) {
			return i
		}
	}
	for i := range s.spans {
		if approxEqual(s.spans[i].t, t) && s.spans[i].pt.ApproxEqual(pt) {
			return i
		}
	}
	best, bestD := 0, math.Inf(1)
	for i := range s.spans {
		if d := math.Abs(s.spans[i].t - t); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func (s *segment) markWinding(i int, wind, opp int) {
	sp := &s.spans[i]
	if sp.windSum == minWindSum {
		sp.windSum = wind
		sp.oppSum = opp
	}
}

func (s *segment) markDone(i int, wind, opp int) {
	s.markWinding(i, wind, opp)
	s.spans[i].done = true
}

// edgeCurve extracts the edge's curve piece oriented in travel direction,
// with the endpoints snapped onto the stored break coordinates so that
// emitted contours are watertight.
func (s *segment) edgeCurve(i int, towardEnd bool) curve {
	t0, t1 := s.spans[i].t, s.spans[i+1].t
	p0, p1 := s.spans[i].pt, s.spans[i+1].pt
	if !towardEnd {
		t0, t1 = t1, t0
		p0, p1 = p1, p0
	}
	c := s.c.subCurve(t0, t1)
	c.pts[0] = p0
	c.pts[c.verb.pointCount()-1] = p1
	return c
}

////////////////////////////////////////////////////////////////

type junctionKey struct {
	seg *segment
	idx int
}

// junctionAngles gathers every edge incident to the break point, following
// cross links transitively and stepping over tiny edges, whose far spans
// belong to the same effective junction.
func junctionAngles(s *segment, spanIdx int) []angle {
	visited := map[junctionKey]bool{}
	queue := []junctionKey{{s, spanIdx}}
	var angles []angle
	for 0 < len(queue) {
		k := queue[0]
		queue = queue[1:]
		if visited[k] {
			continue
		}
		visited[k] = true
		seg, i := k.seg, k.idx
		// edges whose contributions were fully cancelled by a coincident run
		// are not part of the arrangement anymore
		if 0 < i {
			sp := &seg.spans[i-1]
			if sp.tiny {
				queue = append(queue, junctionKey{seg, i - 1})
			} else if sp.windValue != 0 || sp.oppValue != 0 {
				angles = append(angles, newAngle(seg, i-1, false))
			}
		}
		if i < seg.edgeCount() {
			sp := &seg.spans[i]
			if sp.tiny {
				queue = append(queue, junctionKey{seg, i + 1})
			} else if sp.windValue != 0 || sp.oppValue != 0 {
				angles = append(angles, newAngle(seg, i, true))
			}
		}
		for _, l := range seg.spans[i].others {
			queue = append(queue, junctionKey{l.seg, l.index})
		}
	}
	return angles
}

////////////////////////////////////////////////////////////////

// Coincident runs are merged edge by edge: first each segment's break points
// inside the run are mirrored onto the other, then the winding contributions
// of matched edges are combined on one segment and zeroed on the other.

// coincidentMap maps a parameter in [as,ae] on one segment onto [bs,be] on
// the other; be may be less than bs for opposing runs.
func coincidentMap(as, ae, bs, be, t float64) float64 {
	u := (t - as) / (ae - as)
	m, _ := pinT(bs + u*(be-bs))
	return m
}

func mirrorBreaks(src *segment, s0, s1 float64, dst *segment, d0, d1 float64) {
	lo, hi := s0, s1
	if hi < lo {
		lo, hi = hi, lo
	}
	for i := 0; i < len(src.spans); i++ {
		t := src.spans[i].t
		if t <= lo+epsilon || hi-epsilon <= t {
			continue
		}
		dst.addT(src, src.spans[i].pt, coincidentMap(s0, s1, d0, d1, t), t)
	}
}

// combineCoincident merges the winding contributions of the edge runs
// [as,ae] on a and [bs,be] on b, which trace the same curve. When cancel is
// set the runs oppose in direction. b's contributions move onto a; zeroed
// edges are marked done so the traversal never visits them.
func combineCoincident(a *segment, as, ae float64, b *segment, bs, be float64, cancel bool) {
	mirrorBreaks(a, as, ae, b, bs, be)
	mirrorBreaks(b, bs, be, a, as, ae)

	ia0 := a.findSpanIndex(as, a.c.ptAtT(as))
	ia1 := a.findSpanIndex(ae, a.c.ptAtT(ae))
	for ia := ia0; ia < ia1; ia++ {
		aSpan := &a.spans[ia]
		if aSpan.tiny {
			continue
		}
		// the matching b edge starts at the image of this edge's middle
		tm := coincidentMap(as, ae, bs, be, (a.spans[ia].t+a.spans[ia+1].t)/2.0)
		ib := b.edgeIndexAt(tm)
		if ib < 0 {
			continue
		}
		bSpan := &b.spans[ib]
		sameOperand := a.operand == b.operand
		switch {
		case sameOperand && cancel:
			av, bv := aSpan.windValue, bSpan.windValue
			if bv < av {
				aSpan.windValue, bSpan.windValue = av-bv, 0
			} else {
				aSpan.windValue, bSpan.windValue = 0, bv-av
			}
			ao, bo := aSpan.oppValue, bSpan.oppValue
			aSpan.oppValue, bSpan.oppValue = ao-bo, 0
		case sameOperand:
			aSpan.windValue += bSpan.windValue
			aSpan.oppValue += bSpan.oppValue
			bSpan.windValue, bSpan.oppValue = 0, 0
		case cancel:
			aSpan.oppValue -= bSpan.windValue
			aSpan.windValue -= bSpan.oppValue
			bSpan.windValue, bSpan.oppValue = 0, 0
		default:
			aSpan.oppValue += bSpan.windValue
			aSpan.windValue += bSpan.oppValue
			bSpan.windValue, bSpan.oppValue = 0, 0
		}
		if aSpan.windValue == 0 && aSpan.oppValue == 0 {
			aSpan.done = true
		}
		if bSpan.windValue == 0 && bSpan.oppValue == 0 {
			bSpan.done = true
		}
	}
}

// edgeIndexAt returns the index of the edge whose parameter range contains t.
func (s *segment) edgeIndexAt(t float64) int {
	for i := 0; i < s.edgeCount(); i++ {
		if between(s.spans[i].t, t, s.spans[i+1].t) {
			return i
		}
	}
	for i := 0; i < s.edgeCount(); i++ {
		if approxBetween(s.spans[i].t, t, s.spans[i+1].t) {
			return i
		}
	}
	return -1
}
