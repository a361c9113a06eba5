package filter

import (
	"fmt"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/bits-and-blooms/bitset"
)

// Comparison is a leaf predicate comparing one column against a literal.
// Equality against a null literal is how IsNull/IsNotNull reach the engine.
type Comparison struct {
	column string
	op     ComparisonType
	value  Value
}

func NewComparison(op ComparisonType, column string, value Value) *Comparison {
	return &Comparison{column: column, op: op, value: value}
}

func (c *Comparison) Type() PredicateType {
	return ComparisonPredicate
}

func (c *Comparison) Column() string {
	return c.column
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.column, c.op, c.value)
}

// Keep reports whether a row holding v satisfies the comparison. Null
// semantics follow the query layer: a null probe matches only "== null",
// and a non-null probe matches "!= null".
func (c *Comparison) Keep(v Value) bool {
	keep, decided := c.eval(v)
	return decided && keep
}

// eval returns the row verdict and whether one could be reached at all. An
// incomparable probe is undecided, and row evaluation must not discard the
// row in either direction.
func (c *Comparison) eval(v Value) (keep, decided bool) {
	if c.value.IsNull() {
		switch c.op {
		case Equal:
			return v.IsNull(), true
		case NotEqual:
			return !v.IsNull(), true
		}
		return false, true
	}
	if v.IsNull() {
		return false, true
	}
	cmp, ok := v.compare(c.value)
	if !ok {
		return false, false
	}
	switch c.op {
	case Equal:
		return cmp == 0, true
	case NotEqual:
		return cmp != 0, true
	case LessThan:
		return cmp < 0, true
	case LessThanOrEqual:
		return cmp <= 0, true
	case GreaterThan:
		return cmp > 0, true
	case GreaterThanOrEqual:
		return cmp >= 0, true
	}
	return false, true
}

func (c *Comparison) CanDrop(stats RowGroupStats) bool {
	return c.canDrop(stats.Column(c.column))
}

func (c *Comparison) InverseCanDrop(stats RowGroupStats) bool {
	inverse := Comparison{column: c.column, op: c.op.negate(), value: c.value}
	return inverse.CanDrop(stats)
}

// canDrop decides skippability from one chunk's min/max. Min/max statistics
// carry no null information, so comparisons involving a null literal never
// allow a drop.
func (c *Comparison) canDrop(s Statistics) bool {
	if !s.HasMinMax() || c.value.IsNull() {
		return false
	}
	cmpMin, okMin := c.value.compare(s.Min())
	cmpMax, okMax := c.value.compare(s.Max())
	if !okMin || !okMax {
		return false
	}
	switch c.op {
	case Equal:
		return cmpMin < 0 || cmpMax > 0
	case NotEqual:
		return cmpMin == 0 && cmpMax == 0
	case LessThan:
		// all values are >= min, so none can be < value
		return cmpMin <= 0
	case LessThanOrEqual:
		return cmpMin < 0
	case GreaterThan:
		return cmpMax >= 0
	case GreaterThanOrEqual:
		return cmpMax > 0
	}
	return false
}

func (c *Comparison) Apply(rec arrow.Record, drop *bitset.BitSet) {
	applyColumn(rec, c.column, drop, false, c.eval)
}
