package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/bits-and-blooms/bitset"
)

// Membership asserts column value ∈ fixed set. Its pruning rules are
// asymmetric: dropping the predicate itself needs the whole set to miss the
// chunk's [min, max] range, while dropping its negation needs the chunk to
// provably hold a single constant value that is in the set.
type Membership struct {
	column string
	kind   FieldType
	// sorted ascending under the type's natural ordering, nulls removed:
	// keep requires a non-null probe, so a null member can never match
	values []Value
}

func NewMembership(column string, kind FieldType, values []Value) *Membership {
	vs := make([]Value, 0, len(values))
	for _, v := range values {
		if !v.IsNull() {
			vs = append(vs, v)
		}
	}
	sort.Slice(vs, func(i, j int) bool {
		c, _ := vs[i].compare(vs[j])
		return c < 0
	})
	// dedup after sorting
	out := vs[:0]
	for i, v := range vs {
		if i == 0 || !v.equal(vs[i-1]) {
			out = append(out, v)
		}
	}
	return &Membership{column: column, kind: kind, values: out}
}

func (m *Membership) Type() PredicateType {
	return MembershipPredicate
}

func (m *Membership) Column() string {
	return m.column
}

func (m *Membership) String() string {
	parts := make([]string, len(m.values))
	for i, v := range m.values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s in (%s)", m.column, strings.Join(parts, ", "))
}

// Keep is true iff v is non-null and present in the set.
func (m *Membership) Keep(v Value) bool {
	if v.IsNull() {
		return false
	}
	i := sort.Search(len(m.values), func(i int) bool {
		c, ok := m.values[i].compare(v)
		return !ok || c >= 0
	})
	return i < len(m.values) && m.values[i].equal(v)
}

func (m *Membership) CanDrop(stats RowGroupStats) bool {
	return m.canDrop(stats.Column(m.column))
}

// canDrop is true iff no member falls inside [min, max]: the chunk cannot
// contain any matching value. An empty set therefore drops every chunk.
func (m *Membership) canDrop(s Statistics) bool {
	if !s.HasMinMax() {
		return false
	}
	min, max := s.Min(), s.Max()
	i := sort.Search(len(m.values), func(i int) bool {
		c, ok := m.values[i].compare(min)
		return !ok || c >= 0
	})
	if i == len(m.values) {
		return true
	}
	c, ok := m.values[i].compare(max)
	if !ok {
		return false
	}
	return c > 0
}

func (m *Membership) InverseCanDrop(stats RowGroupStats) bool {
	return m.inverseCanDrop(stats.Column(m.column))
}

// inverseCanDrop is true iff the chunk provably holds one constant value and
// that value is in the set, making NOT IN false for every row. Mere overlap
// with [min, max] proves nothing about the negation.
func (m *Membership) inverseCanDrop(s Statistics) bool {
	if !s.HasMinMax() || !s.Min().equal(s.Max()) {
		return false
	}
	return m.Keep(s.Min())
}

// eval: membership is always decided — a null or foreign-typed probe is
// simply not a member of the set.
func (m *Membership) eval(v Value) (keep, decided bool) {
	return m.Keep(v), true
}

func (m *Membership) Apply(rec arrow.Record, drop *bitset.BitSet) {
	applyColumn(rec, m.column, drop, false, m.eval)
}
