package simplify

// contour groups the segments of one closed subpath together with the flags
// the winding rules need.
type contour struct {
	segments []*segment
	bounds   Rect
	operand  bool
	xor      bool
}

// coincidence records a pair of segment runs that trace the same curve. The
// runs are merged before the traversal so that overlapping edges carry their
// combined winding contribution exactly once.
type coincidence struct {
	a, b *segment
	ats  [2]float64
	bts  [2]float64
}

// edgeBuilder converts paths into intersectable contours. Curves are lowered
// to their true order and degenerate pieces dropped; every contour is closed
// by construction.
type edgeBuilder struct {
	contours []*contour
	nextID   int
}

func (eb *edgeBuilder) addPath(p *Path, fill FillRule, operand bool) {
	xorFill := fill == EvenOdd
	for _, curves := range p.curves() {
		ct := &contour{operand: operand, xor: xorFill}
		for _, c := range curves {
			c = c.reduce()
			if c.isDegenerate() {
				continue
			}
			eb.nextID++
			ct.segments = append(ct.segments, newSegment(c, operand, xorFill, eb.nextID))
		}
		if len(ct.segments) == 0 {
			continue
		}
		ct.bounds = ct.segments[0].bounds
		for _, s := range ct.segments[1:] {
			ct.bounds.union(s.bounds)
		}
		eb.contours = append(eb.contours, ct)
	}
}

func (eb *edgeBuilder) segments() []*segment {
	var segs []*segment
	for _, ct := range eb.contours {
		segs = append(segs, ct.segments...)
	}
	return segs
}
