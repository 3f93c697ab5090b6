package simplify

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

type pathCmd int

const (
	moveToCmd pathCmd = iota
	lineToCmd
	quadToCmd
	cubeToCmd
	closeCmd
)

// coordLen returns the number of coordinates stored for a command.
func (cmd pathCmd) coordLen() int {
	switch cmd {
	case moveToCmd, lineToCmd:
		return 2
	case quadToCmd:
		return 4
	case cubeToCmd:
		return 6
	}
	return 0
}

// FillRule selects how winding numbers map to filled regions.
type FillRule int

const (
	// Winding fills where the winding number is non-zero.
	Winding FillRule = iota
	// EvenOdd fills where the winding number is odd.
	EvenOdd
)

func (fill FillRule) String() string {
	if fill == EvenOdd {
		return "evenodd"
	}
	return "winding"
}

// Path is a sequence of moveto/lineto/quadto/cubeto/close commands describing
// zero or more contours. Contours used in boolean operations are implicitly
// closed.
type Path struct {
	cmds []pathCmd
	d    []float64
	x0   float64 // start of current contour, for Close and Pos
	y0   float64
}

func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Pos returns the current pen position.
func (p *Path) Pos() (float64, float64) {
	if len(p.cmds) > 0 && p.cmds[len(p.cmds)-1] == closeCmd {
		return p.x0, p.y0
	}
	if len(p.d) > 1 {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, moveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, lineToCmd)
	p.d = append(p.d, x, y)
}

func (p *Path) QuadTo(x1, y1, x, y float64) {
	p.cmds = append(p.cmds, quadToCmd)
	p.d = append(p.d, x1, y1, x, y)
}

func (p *Path) CubeTo(x1, y1, x2, y2, x, y float64) {
	p.cmds = append(p.cmds, cubeToCmd)
	p.d = append(p.d, x1, y1, x2, y2, x, y)
}

func (p *Path) Close() {
	p.cmds = append(p.cmds, closeCmd)
}

// Equals returns true when both paths hold the same commands with coordinates
// equal within tolerance.
func (p *Path) Equals(q *Path) bool {
	if len(p.cmds) != len(q.cmds) || len(p.d) != len(q.d) {
		return false
	}
	for i := range p.cmds {
		if p.cmds[i] != q.cmds[i] {
			return false
		}
	}
	for i := range p.d {
		if !approxEqual(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// Append concatenates q onto p.
func (p *Path) Append(q *Path) {
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	p.x0, p.y0 = q.x0, q.y0
}

// Rect appends an axis-aligned rectangle contour.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Bounds returns the control point hull bounds of the path, a conservative
// bounding box.
func (p *Path) Bounds() Rect {
	if p.Empty() {
		return Rect{}
	}
	r := rectAt(Point{p.d[0], p.d[1]})
	for i := 0; i < len(p.d); i += 2 {
		r.add(Point{p.d[i], p.d[i+1]})
	}
	return r
}

// curves converts the path to per-contour curve lists, closing every contour
// with a line back to its first point when needed. Degenerate curves are kept;
// the edge builder reduces or drops them.
func (p *Path) curves() [][]curve {
	var all [][]curve
	var cur []curve
	var start, pos Point
	di := 0
	flush := func() {
		if len(cur) > 0 {
			if !pos.ApproxEqual(start) {
				cur = append(cur, lineCurve(pos, start))
			}
			all = append(all, cur)
		}
		cur = nil
	}
	for _, cmd := range p.cmds {
		switch cmd {
		case moveToCmd:
			flush()
			start = Point{p.d[di], p.d[di+1]}
			pos = start
		case lineToCmd:
			to := Point{p.d[di], p.d[di+1]}
			cur = append(cur, lineCurve(pos, to))
			pos = to
		case quadToCmd:
			cp := Point{p.d[di], p.d[di+1]}
			to := Point{p.d[di+2], p.d[di+3]}
			cur = append(cur, quadCurve(pos, cp, to))
			pos = to
		case cubeToCmd:
			cp1 := Point{p.d[di], p.d[di+1]}
			cp2 := Point{p.d[di+2], p.d[di+3]}
			to := Point{p.d[di+4], p.d[di+5]}
			cur = append(cur, cubicCurve(pos, cp1, cp2, to))
			pos = to
		case closeCmd:
			if !pos.ApproxEqual(start) {
				cur = append(cur, lineCurve(pos, start))
			}
			if len(cur) > 0 {
				all = append(all, cur)
			}
			cur = nil
			pos = start
		}
		di += cmd.coordLen()
	}
	flush()
	return all
}

// Interior returns true when the point is inside the filled region of the
// path under the given fill rule, using a downward ray cast. Points exactly
// on the boundary are not meaningfully classified.
func (p *Path) Interior(x, y float64, fill FillRule) bool {
	winding := 0
	for _, contour := range p.curves() {
		for _, c := range contour {
			winding += rayCrossings(c, Point{x, y})
		}
	}
	if fill == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// rayCrossings sums the signed crossings of the downward vertical ray from pt
// with the curve; each crossing contributes the sign of dx/dt there.
func rayCrossings(c curve, pt Point) int {
	b := c.bounds()
	if pt.X < b.Left-epsilon || b.Right+epsilon < pt.X || pt.Y < b.Top-epsilon {
		return 0
	}
	var buf [3]float64
	sum := 0
	for _, t := range axisRoots(c, pt.X, false, buf[:0]) {
		if t < 0.0 || 1.0 <= t {
			// half-open so adjoining segments count a shared endpoint once
			continue
		}
		if c.ptAtT(t).Y >= pt.Y {
			continue
		}
		if dx := c.dxdyAtT(t).X; dx > 0.0 {
			sum++
		} else if dx < 0.0 {
			sum--
		}
	}
	return sum
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	b := make([]byte, 0, 32+8*len(p.d))
	di := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case moveToCmd:
			b = append(b, 'M')
		case lineToCmd:
			b = append(b, 'L')
		case quadToCmd:
			b = append(b, 'Q')
		case cubeToCmd:
			b = append(b, 'C')
		case closeCmd:
			b = append(b, 'z')
		}
		for i := 0; i < cmd.coordLen(); i++ {
			if 0 < i {
				b = append(b, ' ')
			}
			var ok bool
			if b, ok = strconv.AppendFloat(b, p.d[di+i], 6); !ok {
				b = append(b, fmt.Sprintf("%g", p.d[di+i])...)
			}
		}
		di += cmd.coordLen()
	}
	return string(b)
}
