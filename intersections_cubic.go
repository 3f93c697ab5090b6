package simplify

// Cubic intersections use bounded recursive subdivision with bounding box
// pruning; once both pieces are numerically flat their chords are
// intersected and the parameters mapped back.

const maxCurveRecursion = 32

func (is *intersections) quadCubic(q, c curve) {
	is.matchEndpoints(q, c)
	is.curveCurve(q, c, 0.0, 1.0, 0.0, 1.0, 0)
}

func (is *intersections) cubicCubic(a, b curve) {
	is.matchEndpoints(a, b)
	// identical or reversed control polygons are fully coincident
	if a.pts == b.pts {
		is.insertCoincident(0.0, 0.0, a.start(), 1.0, 1.0, a.end())
		return
	}
	if a.pts == b.reversed().pts {
		is.insertCoincident(0.0, 1.0, a.start(), 1.0, 0.0, a.end())
		return
	}
	is.curveCurve(a, b, 0.0, 1.0, 0.0, 1.0, 0)
}

func (is *intersections) curveCurve(a, b curve, a0, a1, b0, b1 float64, depth int) {
	sa := a.subCurve(a0, a1)
	sb := b.subCurve(b0, b1)
	if !sa.bounds().intersects(sb.bounds()) {
		return
	}
	fa := sa.flatMeasure()
	fb := sb.flatMeasure()
	if maxCurveRecursion <= depth || fa < flatTol && fb < flatTol {
		var tmp intersections
		tmp.lineLine(lineCurve(sa.start(), sa.end()), lineCurve(sb.start(), sb.end()))
	leaf:
		for j := 0; j < tmp.used; j++ {
			ta := a0 + (a1-a0)*tmp.t[0][j]
			tb := b0 + (b1-b0)*tmp.t[1][j]
			// both curves pass within flatTol of the chord crossing
			pt := a.ptAtT(ta).Interpolate(b.ptAtT(tb), 0.5)
			// neighboring pieces rediscover a crossing on their shared
			// boundary with slightly different parameters
			for k := 0; k < is.used; k++ {
				if is.pt[k].ApproxEqual(pt) {
					continue leaf
				}
			}
			if k := is.insert(ta, tb, pt); 0 <= k && tmp.coin[j] {
				is.coin[k] = true
			}
		}
		return
	}
	// split the less flat piece and recurse on both halves
	if fb < fa {
		am := (a0 + a1) / 2.0
		is.curveCurve(a, b, a0, am, b0, b1, depth+1)
		is.curveCurve(a, b, am, a1, b0, b1, depth+1)
	} else {
		bm := (b0 + b1) / 2.0
		is.curveCurve(a, b, a0, a1, b0, bm, depth+1)
		is.curveCurve(a, b, a0, a1, bm, b1, depth+1)
	}
}
