package simplify

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// svgArgs gives the coordinate count of each SVG path command letter.
var svgArgs = map[byte]int{'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7}

// svgScanner cursors over path data, treating commas like whitespace.
type svgScanner struct {
	data []byte
	pos  int
}

func (s *svgScanner) skipSep() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', ',', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// letter consumes a command letter when one is next.
func (s *svgScanner) letter() (byte, bool) {
	if s.pos < len(s.data) {
		if c := s.data[s.pos]; 'A' <= c&^0x20 && c&^0x20 <= 'Z' {
			s.pos++
			return c, true
		}
	}
	return 0, false
}

func (s *svgScanner) num() (float64, bool) {
	s.skipSep()
	f, n := strconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0.0, false
	}
	s.pos += n
	return f, true
}

// ParseSVGPath parses SVG path data into a Path. A command letter repeats for
// consecutive coordinate groups, except that a moveto repeats as linetos.
// Elliptical arcs are converted to cubic Beziers since the boolean engine
// works on polynomial curves only. Parsing stops at the first malformed
// token, returning what was read so far.
func ParseSVGPath(path []byte) *Path {
	p := &Path{}
	s := svgScanner{data: path}
	var cmd byte
	cpx, cpy := 0.0, 0.0 // previous control point, for smooth continuations
	for {
		s.skipSep()
		if len(s.data) <= s.pos {
			return p
		}
		prev := cmd
		if c, ok := s.letter(); ok {
			cmd = c
		} else if cmd == 0 {
			return p
		}
		upper := cmd &^ 0x20
		n, known := svgArgs[upper]
		if !known {
			return p
		}
		var args [7]float64
		for k := 0; k < n; k++ {
			v, ok := s.num()
			if !ok {
				return p
			}
			args[k] = v
		}
		x, y := p.Pos()
		if 'a' <= cmd { // lowercase is relative
			switch upper {
			case 'H':
				args[0] += x
			case 'V':
				args[0] += y
			case 'A':
				args[5] += x
				args[6] += y
			default:
				for k := 0; k+1 < n; k += 2 {
					args[k] += x
					args[k+1] += y
				}
			}
		}
		switch upper {
		case 'M':
			p.MoveTo(args[0], args[1])
			// bare coordinates after a moveto repeat as linetos
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'Z':
			p.Close()
		case 'L':
			p.LineTo(args[0], args[1])
		case 'H':
			p.LineTo(args[0], y)
		case 'V':
			p.LineTo(x, args[0])
		case 'C':
			p.CubeTo(args[0], args[1], args[2], args[3], args[4], args[5])
			cpx, cpy = args[2], args[3]
		case 'S':
			c1x, c1y := x, y
			if pu := prev &^ 0x20; pu == 'C' || pu == 'S' {
				c1x, c1y = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(c1x, c1y, args[0], args[1], args[2], args[3])
			cpx, cpy = args[0], args[1]
		case 'Q':
			p.QuadTo(args[0], args[1], args[2], args[3])
			cpx, cpy = args[0], args[1]
		case 'T':
			c1x, c1y := x, y
			if pu := prev &^ 0x20; pu == 'Q' || pu == 'T' {
				c1x, c1y = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(c1x, c1y, args[0], args[1])
			cpx, cpy = c1x, c1y
		case 'A':
			p.arcTo(args[0], args[1], args[2], args[3] != 0.0, args[4] != 0.0, args[5], args[6])
		}
	}
}

// arcCenter converts an endpoint-parameterized elliptical arc to center form,
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes.
// The radii grow when they cannot span the endpoints. Returns the center, the start angle, the signed sweep angle, and
// the possibly adjusted radii. Angles live on the unit circle of the scaled,
// rotated frame.
func arcCenter(from, to Point, rx, ry, phi float64, large, sweep bool) (Point, float64, float64, float64, float64) {
	sinp, cosp := math.Sincos(phi)
	h := from.Sub(to).Mul(0.5)
	u := Point{(cosp*h.X + sinp*h.Y) / rx, (-sinp*h.X + cosp*h.Y) / ry}
	d := u.Dot(u)
	if 1.0 < d {
		f := math.Sqrt(d)
		rx *= f
		ry *= f
		u = u.Mul(1.0 / f)
		d = 1.0
	}
	f := 0.0
	if d < 1.0 {
		f = math.Sqrt(1.0/d - 1.0)
	}
	if large == sweep {
		f = -f
	}
	// the unit-frame center sits perpendicular to the half chord
	c := Point{f * u.Y, -f * u.X}
	theta := math.Atan2(u.Y-c.Y, u.X-c.X)
	delta := math.Atan2(-u.Y-c.Y, -u.X-c.X) - theta
	if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	} else if !sweep && 0.0 < delta {
		delta -= 2.0 * math.Pi
	}
	mid := from.Add(to).Mul(0.5)
	center := Point{cosp*c.X*rx - sinp*c.Y*ry + mid.X, sinp*c.X*rx + cosp*c.Y*ry + mid.Y}
	return center, theta, delta, rx, ry
}

// arcTo appends an elliptical arc as cubic Beziers covering at most a quarter
// turn each. The last one lands exactly on the arc's endpoint.
func (p *Path) arcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	x0, y0 := p.Pos()
	if x0 == x && y0 == y {
		return
	}
	if approxZero(rx) || approxZero(ry) {
		p.LineTo(x, y)
		return
	}
	phi := rot * math.Pi / 180.0
	center, theta, delta, crx, cry := arcCenter(Point{x0, y0}, Point{x, y}, math.Abs(rx), math.Abs(ry), phi, large, sweep)

	sinp, cosp := math.Sincos(phi)
	point := func(a float64) Point {
		sa, ca := math.Sincos(a)
		return Point{center.X + crx*ca*cosp - cry*sa*sinp, center.Y + crx*ca*sinp + cry*sa*cosp}
	}
	tangent := func(a float64) Point {
		sa, ca := math.Sincos(a)
		return Point{-crx*sa*cosp - cry*ca*sinp, -crx*sa*sinp + cry*ca*cosp}
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2.0)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	alpha := 4.0 / 3.0 * math.Tan(step/4.0)
	from := point(theta)
	for i := 1; i <= n; i++ {
		a0 := theta + float64(i-1)*step
		a1 := a0 + step
		to := point(a1)
		if i == n {
			to = Point{x, y}
		}
		t0 := tangent(a0).Mul(alpha)
		t1 := tangent(a1).Mul(alpha)
		p.CubeTo(from.X+t0.X, from.Y+t0.Y, to.X-t1.X, to.Y-t1.Y, to.X, to.Y)
		from = to
	}
}

// MustParseSVGPath is ParseSVGPath for string literals in tests and examples.
func MustParseSVGPath(s string) *Path {
	return ParseSVGPath([]byte(s))
}
