package filter

import (
	"fmt"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/bits-and-blooms/bitset"
)

type And struct {
	left, right Predicate
}

func NewAnd(left, right Predicate) *And {
	return &And{left: left, right: right}
}

func (a *And) Type() PredicateType {
	return AndPredicate
}

func (a *And) Left() Predicate {
	return a.left
}

func (a *And) Right() Predicate {
	return a.right
}

func (a *And) String() string {
	return fmt.Sprintf("(%s and %s)", a.left, a.right)
}

func (a *And) CanDrop(stats RowGroupStats) bool {
	return a.left.CanDrop(stats) || a.right.CanDrop(stats)
}

func (a *And) InverseCanDrop(stats RowGroupStats) bool {
	// not(a and b) == not(a) or not(b)
	return a.left.InverseCanDrop(stats) && a.right.InverseCanDrop(stats)
}

func (a *And) Apply(rec arrow.Record, drop *bitset.BitSet) {
	a.left.Apply(rec, drop)
	a.right.Apply(rec, drop)
}

type Or struct {
	left, right Predicate
}

func NewOr(left, right Predicate) *Or {
	return &Or{left: left, right: right}
}

func (o *Or) Type() PredicateType {
	return OrPredicate
}

func (o *Or) Left() Predicate {
	return o.left
}

func (o *Or) Right() Predicate {
	return o.right
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s or %s)", o.left, o.right)
}

func (o *Or) CanDrop(stats RowGroupStats) bool {
	return o.left.CanDrop(stats) && o.right.CanDrop(stats)
}

func (o *Or) InverseCanDrop(stats RowGroupStats) bool {
	return o.left.InverseCanDrop(stats) || o.right.InverseCanDrop(stats)
}

func (o *Or) Apply(rec arrow.Record, drop *bitset.BitSet) {
	n := uint(rec.NumRows())
	l := bitset.New(n)
	r := bitset.New(n)
	o.left.Apply(rec, l)
	o.right.Apply(rec, r)
	// a row fails the disjunction only when both sides discard it
	l.InPlaceIntersection(r)
	drop.InPlaceUnion(l)
}

// Not survives negation normalization only directly around a Membership
// leaf; every other shape is rewritten away before pruning.
type Not struct {
	child Predicate
}

func NewNot(child Predicate) *Not {
	return &Not{child: child}
}

func (n *Not) Type() PredicateType {
	return NotPredicate
}

func (n *Not) Child() Predicate {
	return n.child
}

func (n *Not) String() string {
	return fmt.Sprintf("not(%s)", n.child)
}

func (n *Not) CanDrop(stats RowGroupStats) bool {
	return n.child.InverseCanDrop(stats)
}

func (n *Not) InverseCanDrop(stats RowGroupStats) bool {
	return n.child.CanDrop(stats)
}

func (n *Not) Apply(rec arrow.Record, drop *bitset.BitSet) {
	// Normalization leaves Not only around leaves. Their complement goes
	// through the column evaluation, so rows the leaf never decided — a
	// missing column included — stay kept rather than being flipped out.
	switch c := n.child.(type) {
	case *Comparison:
		applyColumn(rec, c.column, drop, true, c.eval)
		return
	case *Membership:
		applyColumn(rec, c.column, drop, true, c.eval)
		return
	}
	rows := uint(rec.NumRows())
	inner := bitset.New(rows)
	n.child.Apply(rec, inner)
	inner.FlipRange(0, rows)
	drop.InPlaceUnion(inner)
}
