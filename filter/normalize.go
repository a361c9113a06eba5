package filter

// Normalize rewrites p into negation normal form: Not is pushed through
// combinators by De Morgan's laws and folded into leaf comparators, so the
// only surviving Not nodes wrap Membership leaves, which have no direct
// complement. Statistics pruning is only well-defined on that form.
func Normalize(p Predicate) Predicate {
	switch t := p.(type) {
	case *And:
		return NewAnd(Normalize(t.left), Normalize(t.right))
	case *Or:
		return NewOr(Normalize(t.left), Normalize(t.right))
	case *Not:
		return negate(t.child)
	}
	return p
}

// negate returns the normalized complement of p. Each step either strictly
// reduces negation depth or flips a leaf, so the rewrite terminates.
func negate(p Predicate) Predicate {
	switch t := p.(type) {
	case *And:
		return NewOr(negate(t.left), negate(t.right))
	case *Or:
		return NewAnd(negate(t.left), negate(t.right))
	case *Not:
		return Normalize(t.child)
	case *Comparison:
		return NewComparison(t.op.negate(), t.column, t.value)
	}
	// Membership keeps its Not wrapper; pruning goes through InverseCanDrop.
	return NewNot(p)
}
