package simplify

// Op selects the boolean operation combining two paths.
type Op int

const (
	// Difference keeps the first path minus the second.
	Difference Op = iota
	// Intersect keeps the regions covered by both paths.
	Intersect
	// Union keeps the regions covered by either path.
	Union
	// Xor keeps the regions covered by exactly one path.
	Xor
)

func (op Op) String() string {
	switch op {
	case Difference:
		return "difference"
	case Intersect:
		return "intersect"
	case Union:
		return "union"
	}
	return "xor"
}

// opLookup gives the edge activation per operation, indexed by whether the
// edge belongs to the second operand and whether the opposite operand's
// winding is non-zero. An inactive edge can never bound the result, which
// lets the traversal discard it early. Edges that folded in a coincident run
// of the other operand are exempt, their sums speak for both operands.
var opLookup = [4][2][2]bool{
	Difference: {{true, false}, {false, true}},
	Intersect:  {{false, true}, {false, true}},
	Union:      {{true, false}, {true, false}},
	Xor:        {{true, true}, {true, true}},
}

// combiner returns the fill predicate of the operation in operand order.
func (op Op) combiner() func(fa, fb bool) bool {
	switch op {
	case Difference:
		return func(fa, fb bool) bool { return fa && !fb }
	case Intersect:
		return func(fa, fb bool) bool { return fa && fb }
	case Union:
		return func(fa, fb bool) bool { return fa || fb }
	default:
		return func(fa, fb bool) bool { return fa != fb }
	}
}

// Boolean combines two paths with the given operation under their fill
// rules. The result is a simplified path: non-overlapping contours,
// consistently oriented, filling identically under either rule.
func Boolean(a, b *Path, aFill, bFill FillRule, op Op, cfg *Config) *Path {
	if cfg == nil {
		cfg = &Config{}
	}
	var eb edgeBuilder
	eb.addPath(a, aFill, false)
	eb.addPath(b, bFill, true)
	ctx := &opContext{
		segments:    eb.segments(),
		xorA:        aFill == EvenOdd,
		xorB:        bFill == EvenOdd,
		twoOperands: true,
		op:          op,
		combine:     op.combiner(),
		cfg:         cfg,
	}
	return ctx.result()
}

// And returns the intersection of the paths under the winding rule.
func (p *Path) And(q *Path) *Path {
	return Boolean(p, q, Winding, Winding, Intersect, nil)
}

// Or returns the union of the paths under the winding rule.
func (p *Path) Or(q *Path) *Path {
	return Boolean(p, q, Winding, Winding, Union, nil)
}

// Xor returns the symmetric difference of the paths under the winding rule.
func (p *Path) Xor(q *Path) *Path {
	return Boolean(p, q, Winding, Winding, Xor, nil)
}

// Not returns the difference of the paths under the winding rule.
func (p *Path) Not(q *Path) *Path {
	return Boolean(p, q, Winding, Winding, Difference, nil)
}
