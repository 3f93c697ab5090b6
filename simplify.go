package simplify

import (
	"fmt"
	"io"
	"math"
)

// Config controls the diagnostic output of the boolean engine. All logging
// is off by default; Output defaults to discarding.
type Config struct {
	LogIntersects  bool
	LogWinding     bool
	LogSort        bool
	LogActiveSpans bool
	Output         io.Writer
}

func (cfg *Config) logf(enabled bool, format string, args ...interface{}) {
	if !enabled || cfg.Output == nil {
		return
	}
	fmt.Fprintf(cfg.Output, format+"\n", args...)
}

// opContext holds the state of one boolean operation: the flattened segment
// list, the fill rules of both operands, and the predicate that decides
// which winding pairs are inside the result.
type opContext struct {
	segments     []*segment
	coincidences []coincidence
	xorA, xorB   bool
	twoOperands  bool
	op           Op
	combine      func(fa, fb bool) bool
	cfg          *Config
}

func opIdx(operand bool) int {
	if operand {
		return 1
	}
	return 0
}

func active(w int, xorFill bool) bool {
	if xorFill {
		return w&1 != 0
	}
	return w != 0
}

// filledFrame evaluates the result predicate for a winding pair given in
// operand order.
func (ctx *opContext) filledFrame(w [2]int) bool {
	fa := active(w[0], ctx.xorA)
	if !ctx.twoOperands {
		return fa
	}
	return ctx.combine(fa, active(w[1], ctx.xorB))
}

// filledFor evaluates the predicate for sums as stored on a segment, where
// own refers to the segment's operand.
func (ctx *opContext) filledFor(s *segment, own, opp int) bool {
	var w [2]int
	w[opIdx(s.operand)] = own
	w[opIdx(!s.operand)] = opp
	return ctx.filledFrame(w)
}

////////////////////////////////////////////////////////////////

// intersectSegments finds all pairwise crossings, splits the segments there,
// and records coincident runs for later merging.
func (ctx *opContext) intersectSegments() {
	segs := ctx.segments
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			a, b := segs[i], segs[j]
			if !a.bounds.intersects(b.bounds) {
				continue
			}
			var is intersections
			intersect(a.c, b.c, &is)
			for k := 0; k < is.used; k++ {
				ctx.cfg.logf(ctx.cfg.LogIntersects, "intersect %d/%d at %v t=%g/%g",
					a.id, b.id, is.pt[k], is.t[0][k], is.t[1][k])
				addTPair(a, is.t[0][k], b, is.t[1][k], is.pt[k])
			}
			for k := 0; k+1 < is.used; k++ {
				if is.coin[k] && is.coin[k+1] {
					ctx.coincidences = append(ctx.coincidences, coincidence{
						a:   a,
						b:   b,
						ats: [2]float64{is.t[0][k], is.t[0][k+1]},
						bts: [2]float64{is.t[1][k], is.t[1][k+1]},
					})
					k++
				}
			}
		}
	}
}

// resolveCoincidences merges all recorded coincident runs, then resolves the
// cross link indices once no further splits can happen.
func (ctx *opContext) resolveCoincidences() {
	for _, co := range ctx.coincidences {
		as, ae := co.ats[0], co.ats[1]
		bs, be := co.bts[0], co.bts[1]
		if ae < as {
			as, ae = ae, as
			bs, be = be, bs
		}
		combineCoincident(co.a, as, ae, co.b, bs, be, be < bs)
	}
	for _, s := range ctx.segments {
		s.fixOtherTIndex()
	}
}

// promoteCloseEdges catches line edges that ended up sharing both endpoints
// without the pairwise pass flagging them coincident, which happens when
// break points from other crossings land on the same coordinates. Such edges
// are merged like any other coincident run. Line edges with equal endpoints
// are fully coincident, so no geometry check is needed.
func (ctx *opContext) promoteCloseEdges() {
	segs := ctx.segments
	for i := 0; i < len(segs); i++ {
		a := segs[i]
		if a.c.verb != lineVerb {
			continue
		}
		for j := i + 1; j < len(segs); j++ {
			b := segs[j]
			if b.c.verb != lineVerb || !a.bounds.intersects(b.bounds) {
				continue
			}
			for ia := 0; ia < a.edgeCount(); ia++ {
				asp, ae := &a.spans[ia], &a.spans[ia+1]
				if asp.tiny || asp.windValue == 0 && asp.oppValue == 0 {
					continue
				}
				for ib := 0; ib < b.edgeCount(); ib++ {
					bsp, be := &b.spans[ib], &b.spans[ib+1]
					if bsp.tiny || bsp.windValue == 0 && bsp.oppValue == 0 {
						continue
					}
					var cancel bool
					switch {
					case asp.pt.ApproxEqual(bsp.pt) && ae.pt.ApproxEqual(be.pt):
						cancel = false
					case asp.pt.ApproxEqual(be.pt) && ae.pt.ApproxEqual(bsp.pt):
						cancel = true
					default:
						continue
					}
					bt0, bt1 := bsp.t, be.t
					if cancel {
						bt0, bt1 = bt1, bt0
					}
					combineCoincident(a, asp.t, ae.t, b, bt0, bt1, cancel)
					if asp.windValue == 0 && asp.oppValue == 0 {
						break
					}
				}
			}
		}
	}
}

////////////////////////////////////////////////////////////////

// raySums casts a ray from pt, downward when vertical and leftward
// otherwise, and sums the winding contributions of every edge crossing
// strictly beyond pt. Sums are returned relative to the given operand.
func (ctx *opContext) raySums(pt Point, operand bool, vertical bool) (own, opp int) {
	var buf [3]float64
	axis := pt.X
	if !vertical {
		axis = pt.Y
	}
	for _, seg := range ctx.segments {
		b := seg.bounds
		if vertical {
			if axis < b.Left-epsilon || b.Right+epsilon < axis || pt.Y < b.Top-epsilon {
				continue
			}
		} else {
			if axis < b.Top-epsilon || b.Bottom+epsilon < axis || pt.X < b.Left-epsilon {
				continue
			}
		}
		for _, t := range axisRoots(seg.c, axis, !vertical, buf[:0]) {
			if t < 0.0 || 1.0 <= t {
				// half-open so adjacent segments count a shared vertex once
				continue
			}
			hit := seg.c.ptAtT(t)
			d := seg.c.dxdyAtT(t)
			sign := 0
			if vertical {
				// the margin keeps the sampled edge from counting itself
				// when the root solver reproduces pt's own parameter
				if pt.Y <= hit.Y+epsilon {
					continue
				}
				if 0.0 < d.X {
					sign = 1
				} else if d.X < 0.0 {
					sign = -1
				}
			} else {
				if pt.X <= hit.X+epsilon {
					continue
				}
				if d.Y < 0.0 {
					sign = 1
				} else if 0.0 < d.Y {
					sign = -1
				}
			}
			if sign == 0 {
				continue
			}
			e := seg.edgeIndexAt(t)
			if e < 0 {
				continue
			}
			v, o := seg.spans[e].windValue, seg.spans[e].oppValue
			if seg.operand != operand {
				v, o = o, v
			}
			own += sign * v
			opp += sign * o
		}
	}
	return own, opp
}

// rayHitsVertex reports whether the ray from pt passes within tolerance of a
// break point, which would make the crossing count ambiguous.
func (ctx *opContext) rayHitsVertex(pt Point, vertical bool) bool {
	for _, seg := range ctx.segments {
		for i := range seg.spans {
			q := seg.spans[i].pt
			if vertical {
				if approxEqual(q.X, pt.X) && q.Y < pt.Y+epsilon {
					return true
				}
			} else {
				if approxEqual(q.Y, pt.Y) && q.X < pt.X+epsilon {
					return true
				}
			}
		}
	}
	return false
}

// computeWindSum establishes the winding sums of an edge from scratch with a
// ray cast from a point in the edge's interior. Samples that graze a vertex
// or run along the edge are skipped in favor of a nudged one.
func (ctx *opContext) computeWindSum(s *segment, i int) {
	t0, t1 := s.spans[i].t, s.spans[i+1].t
	samples := [5]float64{0.5, 0.382, 0.618, 0.25, 0.75}
	for pass := 0; pass < 2; pass++ {
		for _, f := range samples {
			t := t0 + (t1-t0)*f
			d := s.c.dxdyAtT(t)
			vertical := math.Abs(d.Y) <= math.Abs(d.X)
			if vertical && approxZero(d.X) || !vertical && approxZero(d.Y) {
				continue
			}
			pt := s.c.ptAtT(t)
			if pass == 0 && ctx.rayHitsVertex(pt, vertical) {
				continue
			}
			own, opp := ctx.raySums(pt, s.operand, vertical)
			// the sums give the face behind the ray; crossing the edge itself
			// reaches the stored left-of-increasing side
			if vertical && 0.0 < d.X || !vertical && d.Y < 0.0 {
				own += s.spans[i].windValue
				opp += s.spans[i].oppValue
			}
			ctx.cfg.logf(ctx.cfg.LogWinding, "windSum %d[%d] = %d/%d", s.id, i, own, opp)
			s.markWinding(i, own, opp)
			return
		}
	}
	// degenerate in both axes, nothing crosses it meaningfully
	s.markWinding(i, 0, 0)
}

////////////////////////////////////////////////////////////////

// findSortableTop picks the topmost unprocessed edge. Starting at an extreme
// point keeps the first junction of a trace simple.
func (ctx *opContext) findSortableTop() (*segment, int) {
	var best *segment
	bestEdge := -1
	bestPt := Point{}
	for _, s := range ctx.segments {
		for i := 0; i < s.edgeCount(); i++ {
			if s.spans[i].done {
				continue
			}
			top := s.spans[i].pt
			if s.spans[i+1].pt.Y < top.Y || s.spans[i+1].pt.Y == top.Y && s.spans[i+1].pt.X < top.X {
				top = s.spans[i+1].pt
			}
			if best == nil || top.Y < bestPt.Y || top.Y == bestPt.Y && top.X < bestPt.X {
				best, bestEdge, bestPt = s, i, top
			}
		}
	}
	return best, bestEdge
}

// findNext continues a face trace that arrived at the far end of the given
// edge. It sorts the fan of edges around the junction, consumes the edges
// interior to the result, and returns the edge where the fill state flips.
// ok is false when the junction cannot be ordered; the caller then abandons
// the contour as a fragment.
func (ctx *opContext) findNext(s *segment, i int, towardEnd bool) (*segment, int, bool, bool) {
	j := i
	if towardEnd {
		j = i + 1
	}
	angles := junctionAngles(s, j)
	if len(angles) < 2 {
		return nil, 0, false, false
	}
	if !sortAngles(angles) {
		ctx.cfg.logf(ctx.cfg.LogSort, "unsortable junction at %v", s.spans[j].pt)
		return nil, 0, false, false
	}
	if ctx.cfg.LogSort {
		for _, a := range angles {
			ctx.cfg.logf(true, "fan %d[%d] out=%v dir=%v", a.seg.id, a.edge, a.outwardIncreasing, a.dir)
		}
	}

	k := -1
	for idx, a := range angles {
		if a.seg == s && a.edge == i && a.outwardIncreasing == !towardEnd {
			k = idx
			break
		}
	}
	if k < 0 {
		return nil, 0, false, false
	}

	// winding pair of the face left of the incoming travel direction, which
	// is the sector clockwise of the incoming edge
	sp := &s.spans[i]
	own, opp := sp.windSum, sp.oppSum
	if !towardEnd {
		own -= sp.windValue
		opp -= sp.oppValue
	}
	var cur [2]int
	cur[opIdx(s.operand)] = own
	cur[opIdx(!s.operand)] = opp

	n := len(angles)
	for step := 1; step < n; step++ {
		a := angles[((k-step)%n+n)%n]
		o := 1
		if !a.outwardIncreasing {
			o = -1
		}
		asp := &a.seg.spans[a.edge]
		next := cur
		next[opIdx(a.seg.operand)] -= o * asp.windValue
		next[opIdx(!a.seg.operand)] -= o * asp.oppValue

		// the stored sums are the side counterclockwise of the edge when it
		// leaves the junction in increasing t, clockwise otherwise
		stored := cur
		if o < 0 {
			stored = next
		}
		a.seg.markWinding(a.edge, stored[opIdx(a.seg.operand)], stored[opIdx(!a.seg.operand)])

		if ctx.filledFrame(cur) != ctx.filledFrame(next) {
			return a.seg, a.edge, a.outwardIncreasing, true
		}
		// both sides agree, the edge is not part of the result's boundary
		a.seg.markDone(a.edge, stored[opIdx(a.seg.operand)], stored[opIdx(!a.seg.operand)])
		cur = next
	}
	return nil, 0, false, false
}

// activeEdge consults the operation's activation table: whether an edge of
// this operand can bound the result given the opposite operand's winding on
// either side of it.
func (ctx *opContext) activeEdge(s *segment, sp *span) bool {
	oppXor := ctx.xorB
	if s.operand {
		oppXor = ctx.xorA
	}
	oppNonzero := active(sp.oppSum, oppXor) || active(sp.oppSum-sp.oppValue, oppXor)
	idx := 0
	if oppNonzero {
		idx = 1
	}
	return opLookup[ctx.op][opIdx(s.operand)][idx]
}

// run traces the filled region's boundary until every edge is consumed.
func (ctx *opContext) run(w *pathWriter) {
	for {
		s, i := ctx.findSortableTop()
		if s == nil {
			break
		}
		if s.spans[i].windSum == minWindSum {
			ctx.computeWindSum(s, i)
		}
		sp := &s.spans[i]
		// edges that absorbed a coincident run of the other operand carry both
		// contributions and always remain boundary candidates
		if ctx.twoOperands && sp.oppValue == 0 && !ctx.activeEdge(s, sp) {
			s.markDone(i, sp.windSum, sp.oppSum)
			continue
		}
		leftFilled := ctx.filledFor(s, sp.windSum, sp.oppSum)
		rightFilled := ctx.filledFor(s, sp.windSum-sp.windValue, sp.oppSum-sp.oppValue)
		if leftFilled == rightFilled {
			// interior or fully outside, consume without output
			s.markDone(i, sp.windSum, sp.oppSum)
			continue
		}
		// travel with the filled face on the left
		towardEnd := leftFilled

		cs, ci, ctoward := s, i, towardEnd
		start := cs.spans[ci].pt
		if !ctoward {
			start = cs.spans[ci+1].pt
		}
		w.moveTo(start)
		for {
			ctx.cfg.logf(ctx.cfg.LogActiveSpans, "trace %d[%d] towardEnd=%v", cs.id, ci, ctoward)
			w.curveTo(cs.edgeCurve(ci, ctoward))
			cs.markDone(ci, cs.spans[ci].windSum, cs.spans[ci].oppSum)
			ns, ni, ntoward, ok := ctx.findNext(cs, ci, ctoward)
			if !ok || ns.spans[ni].done {
				break
			}
			cs, ci, ctoward = ns, ni, ntoward
		}
		w.close()
	}
}

func (ctx *opContext) result() *Path {
	ctx.intersectSegments()
	ctx.resolveCoincidences()
	ctx.promoteCloseEdges()
	var w pathWriter
	ctx.run(&w)
	if w.hasFragments() {
		w.assemble()
	}
	return w.path()
}

////////////////////////////////////////////////////////////////

// Simplify rewrites the path as an equivalent set of non-overlapping,
// consistently oriented contours. The result fills identically under either
// fill rule; self intersections and overlapping contours are resolved
// according to the given rule.
func Simplify(p *Path, fill FillRule, cfg *Config) *Path {
	if cfg == nil {
		cfg = &Config{}
	}
	var eb edgeBuilder
	eb.addPath(p, fill, false)
	ctx := &opContext{
		segments: eb.segments(),
		xorA:     fill == EvenOdd,
		cfg:      cfg,
	}
	return ctx.result()
}
