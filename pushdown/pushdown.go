package pushdown

import (
	"github.com/apache/arrow/go/v12/arrow"

	cerr "github.com/openlake-io/openlake-storage/go/common/errors"
	"github.com/openlake-io/openlake-storage/go/common/log"
	"github.com/openlake-io/openlake-storage/go/filter"
	"github.com/openlake-io/openlake-storage/go/logical"
)

// Translate converts a logical filter into the native predicate handed to
// the row-group pruner. A nil predicate with a nil error means the filter is
// not pushable and must be applied residually after the scan. A non-nil
// error means the filter violates the caller contract (a literal whose
// runtime type disagrees with the column's declared type).
//
// Translation is pure: the schema and filter are never modified, and
// Translate may run concurrently against the same schema.
func Translate(schema *arrow.Schema, expr logical.Expr, treatInt96AsTimestamp bool) (filter.Predicate, error) {
	if schema == nil {
		return nil, cerr.ErrSchemaIsNil
	}
	fields := BuildFieldMap(schema, treatInt96AsTimestamp)
	p, err := translate(fields, expr)
	if err != nil {
		return nil, err
	}
	if p == nil && expr != nil {
		log.Debug("filter not pushable, will be applied after scan",
			log.Any("filter", expr))
	}
	return p, nil
}

func translate(fields map[string]filter.FieldType, expr logical.Expr) (filter.Predicate, error) {
	switch e := expr.(type) {
	case logical.IsNull:
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.Equal, e.Column, kind, nil)
		}
	case logical.IsNotNull:
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.NotEqual, e.Column, kind, nil)
		}
	case logical.EqualTo:
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.Equal, e.Column, kind, e.Value)
		}
	case logical.EqualNullSafe:
		// Collapsed onto plain equality: the planner rewrites null
		// comparisons into IsNull before they reach the storage layer, so
		// the null-safe variant never carries a null operand here. Known
		// simplification, kept as-is.
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.Equal, e.Column, kind, e.Value)
		}
	case logical.LessThan:
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.LessThan, e.Column, kind, e.Value)
		}
	case logical.LessThanOrEqual:
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.LessThanOrEqual, e.Column, kind, e.Value)
		}
	case logical.GreaterThan:
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.GreaterThan, e.Column, kind, e.Value)
		}
	case logical.GreaterThanOrEqual:
		if kind, ok := fields[e.Column]; ok {
			return makeComparison(filter.GreaterThanOrEqual, e.Column, kind, e.Value)
		}
	case logical.In:
		if kind, ok := fields[e.Column]; ok {
			return makeMembership(e.Column, kind, e.Values)
		}
	case logical.And:
		// Pushing only one side would change semantics under an enclosing
		// NOT, so conjunctions translate all-or-nothing.
		left, err := translate(fields, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := translate(fields, e.Right)
		if err != nil {
			return nil, err
		}
		if left == nil || right == nil {
			return nil, nil
		}
		return filter.NewAnd(left, right), nil
	case logical.Or:
		// A one-sided disjunction is unsound for pruning: the untranslated
		// side might still select rows.
		left, err := translate(fields, e.Left)
		if err != nil {
			return nil, err
		}
		right, err := translate(fields, e.Right)
		if err != nil {
			return nil, err
		}
		if left == nil || right == nil {
			return nil, nil
		}
		return filter.NewOr(left, right), nil
	case logical.Not:
		// Negated equality gets a direct not-equal, skipping the extra
		// normalization round trip.
		if eq, ok := e.Child.(logical.EqualTo); ok {
			if kind, found := fields[eq.Column]; found {
				return makeComparison(filter.NotEqual, eq.Column, kind, eq.Value)
			}
			return nil, nil
		}
		inner, err := translate(fields, e.Child)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, nil
		}
		// Pruning is only defined on non-negated leaves, so the negation is
		// rewritten to normal form before it leaves the translator.
		return filter.Normalize(filter.NewNot(inner)), nil
	}
	return nil, nil
}
