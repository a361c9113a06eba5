// Package pushdown translates the planner's logical filter tree into the
// native predicate evaluated against Parquet row-group statistics. A filter
// that cannot be pushed translates to no predicate at all; the caller then
// applies it residually after reading rows.
package pushdown

import (
	"github.com/apache/arrow/go/v12/arrow"

	"github.com/openlake-io/openlake-storage/go/filter"
)

// BuildFieldMap derives the name to type lookup used during translation.
// Only top-level scalar fields are pushable: nested fields are dropped
// entirely, with no dotted-path resolution. When treatInt96AsTimestamp is
// set, timestamp columns are excluded as well, because their legacy INT96
// on-disk encoding cannot be range-compared safely.
func BuildFieldMap(schema *arrow.Schema, treatInt96AsTimestamp bool) map[string]filter.FieldType {
	fields := make(map[string]filter.FieldType, len(schema.Fields()))
	for _, f := range schema.Fields() {
		kind, ok := fieldType(f.Type)
		if !ok {
			continue
		}
		if kind == filter.TimestampType && treatInt96AsTimestamp {
			continue
		}
		if _, exists := fields[f.Name]; exists {
			continue
		}
		fields[f.Name] = kind
	}
	return fields
}

func fieldType(dt arrow.DataType) (filter.FieldType, bool) {
	switch dt.ID() {
	case arrow.BOOL:
		return filter.BooleanType, true
	case arrow.INT32:
		return filter.IntegerType, true
	case arrow.INT64:
		return filter.LongType, true
	case arrow.FLOAT32:
		return filter.FloatType, true
	case arrow.FLOAT64:
		return filter.DoubleType, true
	case arrow.STRING:
		return filter.StringType, true
	case arrow.BINARY:
		return filter.BinaryType, true
	case arrow.TIMESTAMP:
		return filter.TimestampType, true
	case arrow.DATE32:
		return filter.DateType, true
	}
	return 0, false
}
