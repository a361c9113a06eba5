// Package filter holds the native predicate representation evaluated against
// Parquet row-group statistics, together with the row-level evaluation used
// when statistics alone cannot decide. Predicates are immutable once built
// and safe to evaluate concurrently.
package filter

import (
	"github.com/apache/arrow/go/v12/arrow"
	"github.com/bits-and-blooms/bitset"
)

type PredicateType int8

const (
	AndPredicate PredicateType = iota
	OrPredicate
	NotPredicate
	ComparisonPredicate
	MembershipPredicate
)

// Predicate is a node of the native predicate tree.
//
// CanDrop reports that no row in the group can satisfy the predicate, so the
// group may be skipped without reading it. InverseCanDrop reports the same
// for the predicate's negation; it is what a Not wrapper consults. Both are
// conservative: absent or non-comparable statistics yield false. Apply marks
// in drop the rows of rec that do not satisfy the predicate.
type Predicate interface {
	CanDrop(stats RowGroupStats) bool
	InverseCanDrop(stats RowGroupStats) bool
	Apply(rec arrow.Record, drop *bitset.BitSet)
	Type() PredicateType
	String() string
}

type ComparisonType int8

const (
	Equal ComparisonType = iota
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

func (c ComparisonType) String() string {
	switch c {
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	}
	return "?"
}

// negate returns the comparison holding exactly when c does not.
func (c ComparisonType) negate() ComparisonType {
	switch c {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	case LessThan:
		return GreaterThanOrEqual
	case LessThanOrEqual:
		return GreaterThan
	case GreaterThan:
		return LessThanOrEqual
	}
	return LessThan
}
