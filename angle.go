package simplify

import (
	"math"
	"sort"
)

// angle describes one edge incident to a junction point, oriented away from
// the junction. Angles sort counterclockwise starting from straight down so
// that the traversal can walk the fan of edges around a vertex.
type angle struct {
	seg  *segment
	edge int
	// outwardIncreasing is true when walking away from the junction moves in
	// the direction of increasing t on the segment.
	outwardIncreasing bool
	dir               Point // tangent leaving the junction
	mid               Point // direction to the middle of the edge, tie breaker
	unsortable        bool
}

// ccwFromSouth returns the angle of d measured counterclockwise from the
// downward direction, in [0, 2*pi).
func ccwFromSouth(d Point) float64 {
	theta := math.Atan2(d.X, -d.Y)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

// newAngle builds the fan entry for the edge leaving the junction at the
// given end. When the tangent at the junction is degenerate the chord to the
// edge middle stands in.
func newAngle(s *segment, edge int, outwardIncreasing bool) angle {
	t0 := s.spans[edge].t
	t1 := s.spans[edge+1].t
	jt, ft := t0, t1
	if !outwardIncreasing {
		jt, ft = t1, t0
	}
	dir := s.c.dxdyAtT(jt)
	if !outwardIncreasing {
		dir = dir.Mul(-1.0)
	}
	jpt := s.c.ptAtT(jt)
	mid := s.c.ptAtT(jt + (ft-jt)*0.5).Sub(jpt)
	if dir.IsZero() {
		dir = mid
	}
	return angle{
		seg:               s,
		edge:              edge,
		outwardIncreasing: outwardIncreasing,
		dir:               dir,
		mid:               mid,
		unsortable:        dir.IsZero() && mid.IsZero(),
	}
}

// sortAngles orders the fan counterclockwise from south. It reports false
// when two distinct edges are indistinguishable, which makes the junction
// unsortable.
func sortAngles(angles []angle) bool {
	sort.Slice(angles, func(i, j int) bool {
		ti, tj := ccwFromSouth(angles[i].dir), ccwFromSouth(angles[j].dir)
		if !approxEqual(ti, tj) {
			return ti < tj
		}
		return ccwFromSouth(angles[i].mid) < ccwFromSouth(angles[j].mid)
	})
	ok := true
	for i := 1; i < len(angles); i++ {
		a, b := &angles[i-1], &angles[i]
		if a.unsortable || b.unsortable {
			ok = false
			continue
		}
		if approxEqual(ccwFromSouth(a.dir), ccwFromSouth(b.dir)) &&
			approxEqual(ccwFromSouth(a.mid), ccwFromSouth(b.mid)) {
			a.unsortable = true
			b.unsortable = true
			ok = false
		}
	}
	return ok
}
