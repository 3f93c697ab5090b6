package simplify

// pathWriter accumulates the curves emitted by the traversal into contours.
// The initial moveto is deferred until the first curve arrives so that empty
// contours produce no output. Contours that fail to close, which happens when
// a junction was unsortable, are kept as fragments for assemble.
type pathWriter struct {
	closed [][]curve // finished contours
	open   [][]curve // fragments that did not close
	cur    []curve
	first  Point
	pos    Point
}

func (w *pathWriter) moveTo(pt Point) {
	w.finish()
	w.first = pt
	w.pos = pt
}

// curveTo appends a curve to the current contour. Consecutive collinear lines
// in the same direction are coalesced into one.
func (w *pathWriter) curveTo(c curve) {
	if c.isDegenerate() {
		return
	}
	if c.verb == lineVerb && 0 < len(w.cur) {
		if prev := w.cur[len(w.cur)-1]; prev.verb == lineVerb {
			d0 := prev.pts[1].Sub(prev.pts[0])
			d1 := c.pts[1].Sub(c.pts[0])
			if approxZero(d0.PerpDot(d1)) && 0.0 < d0.Dot(d1) {
				w.cur[len(w.cur)-1] = lineCurve(prev.pts[0], c.pts[1])
				w.pos = c.pts[1]
				return
			}
		}
	}
	w.cur = append(w.cur, c)
	w.pos = c.end()
}

// close ends the current contour. When the pen returned to the start the
// contour is complete; otherwise it is kept as an open fragment.
func (w *pathWriter) close() {
	if len(w.cur) == 0 {
		return
	}
	if w.pos.ApproxEqual(w.first) {
		w.closed = append(w.closed, w.cur)
	} else {
		w.open = append(w.open, w.cur)
	}
	w.cur = nil
}

func (w *pathWriter) finish() {
	w.close()
}

// hasFragments reports whether any contour failed to close.
func (w *pathWriter) hasFragments() bool {
	return 0 < len(w.open)
}

// assemble stitches the open fragments into closed contours by greedily
// joining nearest endpoints, reversing fragments as needed. It is the
// fallback for traces interrupted by unsortable junctions.
func (w *pathWriter) assemble() {
	for 0 < len(w.open) {
		cur := w.open[0]
		w.open = w.open[1:]
		start := cur[0].start()
		for {
			end := cur[len(cur)-1].end()
			if end.ApproxEqual(start) {
				break
			}
			// join the fragment whose endpoint is nearest, unless closing the
			// contour where it stands is nearer still
			best := -1
			bestRev := false
			bestD := end.Sub(start).Dot(end.Sub(start))
			for i, frag := range w.open {
				ds := frag[0].start().Sub(end)
				if d := ds.Dot(ds); d < bestD {
					best, bestRev, bestD = i, false, d
				}
				de := frag[len(frag)-1].end().Sub(end)
				if d := de.Dot(de); d < bestD {
					best, bestRev, bestD = i, true, d
				}
			}
			if best < 0 {
				break
			}
			frag := w.open[best]
			w.open = append(w.open[:best], w.open[best+1:]...)
			if bestRev {
				for i, j := 0, len(frag)-1; i < j; i, j = i+1, j-1 {
					frag[i], frag[j] = frag[j], frag[i]
				}
				for i := range frag {
					frag[i] = frag[i].reversed()
				}
			}
			if !end.ApproxEqual(frag[0].start()) {
				cur = append(cur, lineCurve(end, frag[0].start()))
			}
			cur = append(cur, frag...)
		}
		if end := cur[len(cur)-1].end(); !end.ApproxEqual(start) {
			cur = append(cur, lineCurve(end, start))
		}
		w.closed = append(w.closed, cur)
	}
}

// path renders the accumulated contours as a Path.
func (w *pathWriter) path() *Path {
	w.finish()
	p := &Path{}
	for _, contour := range w.closed {
		if len(contour) == 0 {
			continue
		}
		s := contour[0].start()
		p.MoveTo(s.X, s.Y)
		for _, c := range contour {
			switch c.verb {
			case lineVerb:
				p.LineTo(c.pts[1].X, c.pts[1].Y)
			case quadVerb:
				p.QuadTo(c.pts[1].X, c.pts[1].Y, c.pts[2].X, c.pts[2].Y)
			default:
				p.CubeTo(c.pts[1].X, c.pts[1].Y, c.pts[2].X, c.pts[2].Y, c.pts[3].X, c.pts[3].Y)
			}
		}
		p.Close()
	}
	return p
}
