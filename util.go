package simplify

import (
	"fmt"
	"math"
)

// Tolerances used throughout. Parameter values and coefficient arithmetic are
// compared with the loose epsilon, which mirrors single precision resolution;
// the precise variants are used where values were computed without cancellation
// and double precision can be trusted.
const (
	epsilon     = 1.1920928955078125e-07 // 2^-23
	precEpsilon = 2.220446049250313e-16  // 2^-52
)

func approxZero(x float64) bool {
	return math.Abs(x) < epsilon
}

func approxEqual(a, b float64) bool {
	return approxZero(a - b)
}

func preciselyZero(x float64) bool {
	return math.Abs(x) < precEpsilon
}

func preciselyEqual(a, b float64) bool {
	return preciselyZero(a - b)
}

// between returns true if b is between a and c, without assuming an order
// between a and c. Exact endpoints count as between.
func between(a, b, c float64) bool {
	return (a-b)*(c-b) <= 0.0
}

func approxBetween(a, b, c float64) bool {
	return between(a, b, c) || approxEqual(a, b) || approxEqual(c, b)
}

// ulpsDistance orders float32 bit patterns so that adjacent representable
// values differ by one.
func ulpsDistance(v float64) int32 {
	i := int32(math.Float32bits(float32(v)))
	if i < 0 {
		i = math.MinInt32 - i
	}
	return i
}

// almostEqualUlps compares two values at single precision resolution, allowing
// 16 units in the last place. Coordinates that went through intersection math
// carry about that much noise.
func almostEqualUlps(a, b float64) bool {
	const maxUlps = 16
	d := ulpsDistance(a) - ulpsDistance(b)
	if d < 0 {
		d = -d
	}
	return d <= maxUlps
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned
// and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1.0-t)*p.X + t*q.X, (1.0-t)*p.Y + t*q.Y}
}

// ApproxEqual compares coordinates at single precision ULP resolution.
func (p Point) ApproxEqual(q Point) bool {
	return almostEqualUlps(p.X, q.X) && almostEqualUlps(p.Y, q.Y)
}

func (p Point) IsZero() bool {
	return approxZero(p.X) && approxZero(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box. Top is the minimal Y since the
// traversal scans from minimal Y downward.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func rectAt(p Point) Rect {
	return Rect{p.X, p.Y, p.X, p.Y}
}

func (r *Rect) add(p Point) {
	if p.X < r.Left {
		r.Left = p.X
	}
	if p.Y < r.Top {
		r.Top = p.Y
	}
	if r.Right < p.X {
		r.Right = p.X
	}
	if r.Bottom < p.Y {
		r.Bottom = p.Y
	}
}

func (r *Rect) union(s Rect) {
	if s.Left < r.Left {
		r.Left = s.Left
	}
	if s.Top < r.Top {
		r.Top = s.Top
	}
	if r.Right < s.Right {
		r.Right = s.Right
	}
	if r.Bottom < s.Bottom {
		r.Bottom = s.Bottom
	}
}

// intersects is a necessary condition for two curves to intersect; the
// comparison is tolerant so that curves merely touching still pass.
func (r Rect) intersects(s Rect) bool {
	return r.Left <= s.Right+epsilon && s.Left <= r.Right+epsilon &&
		r.Top <= s.Bottom+epsilon && s.Top <= r.Bottom+epsilon
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Left, r.Top, r.Right, r.Bottom)
}
