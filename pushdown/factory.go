package pushdown

import (
	"time"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/pkg/errors"

	cerr "github.com/openlake-io/openlake-storage/go/common/errors"
	"github.com/openlake-io/openlake-storage/go/filter"
)

// makeComparison builds the native comparison for one column, encoding the
// planner's literal into the engine representation first.
func makeComparison(op filter.ComparisonType, column string, kind filter.FieldType, literal interface{}) (filter.Predicate, error) {
	v, err := encodeLiteral(kind, literal)
	if err != nil {
		return nil, errors.Wrapf(err, "column %q", column)
	}
	return filter.NewComparison(op, column, v), nil
}

// makeMembership builds the IN predicate for one column. An empty value set
// is valid and yields an always-false membership.
func makeMembership(column string, kind filter.FieldType, literals []interface{}) (filter.Predicate, error) {
	values := make([]filter.Value, 0, len(literals))
	for _, l := range literals {
		v, err := encodeLiteral(kind, l)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", column)
		}
		values = append(values, v)
	}
	return filter.NewMembership(column, kind, values), nil
}

// encodeLiteral validates the literal's runtime type against the column's
// declared type and encodes it: dates become day offsets and timestamps
// microsecond offsets from the Unix epoch. A mismatch is a caller-contract
// violation and fails fast rather than mis-encoding.
func encodeLiteral(kind filter.FieldType, literal interface{}) (filter.Value, error) {
	if literal == nil {
		return filter.NullValue(kind), nil
	}
	switch kind {
	case filter.BooleanType:
		if v, ok := literal.(bool); ok {
			return filter.NewBooleanValue(v), nil
		}
	case filter.IntegerType:
		if v, ok := literal.(int32); ok {
			return filter.NewIntegerValue(v), nil
		}
	case filter.LongType:
		if v, ok := literal.(int64); ok {
			return filter.NewLongValue(v), nil
		}
	case filter.FloatType:
		if v, ok := literal.(float32); ok {
			return filter.NewFloatValue(v), nil
		}
	case filter.DoubleType:
		if v, ok := literal.(float64); ok {
			return filter.NewDoubleValue(v), nil
		}
	case filter.StringType:
		if v, ok := literal.(string); ok {
			return filter.NewStringValue(v), nil
		}
	case filter.BinaryType:
		if v, ok := literal.([]byte); ok {
			return filter.NewBinaryValue(v), nil
		}
	case filter.DateType:
		switch v := literal.(type) {
		case time.Time:
			return filter.NewDateValue(int32(arrow.Date32FromTime(v))), nil
		case arrow.Date32:
			return filter.NewDateValue(int32(v)), nil
		}
	case filter.TimestampType:
		switch v := literal.(type) {
		case time.Time:
			return filter.NewTimestampValue(v.UnixMicro()), nil
		case arrow.Timestamp:
			return filter.NewTimestampValue(int64(v)), nil
		}
	}
	return filter.Value{}, errors.Wrapf(cerr.ErrTypeMismatch,
		"%T literal for %s column", literal, kind)
}
