package filter

import (
	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/bits-and-blooms/bitset"
)

// applyColumn evaluates one column of rec and sets the drop bit for every
// row with a decided verdict on the losing side: keep == false normally,
// keep == true when the enclosing predicate is negated. Rows the leaf cannot
// decide — a column missing from the record, an array type the engine cannot
// read, or an incomparable probe — are conservatively kept in both
// directions.
func applyColumn(rec arrow.Record, column string, drop *bitset.BitSet, negated bool, eval func(Value) (keep, decided bool)) {
	indices := rec.Schema().FieldIndices(column)
	if len(indices) == 0 {
		return
	}
	col := rec.Column(indices[0])
	for i := 0; i < col.Len(); i++ {
		v, ok := valueAt(col, i)
		if !ok {
			continue
		}
		keep, decided := eval(v)
		if decided && keep == negated {
			drop.Set(uint(i))
		}
	}
}

// valueAt reads row i of arr into the engine's value encoding.
func valueAt(arr arrow.Array, i int) (Value, bool) {
	switch a := arr.(type) {
	case *array.Boolean:
		if a.IsNull(i) {
			return NullValue(BooleanType), true
		}
		return NewBooleanValue(a.Value(i)), true
	case *array.Int32:
		if a.IsNull(i) {
			return NullValue(IntegerType), true
		}
		return NewIntegerValue(a.Value(i)), true
	case *array.Int64:
		if a.IsNull(i) {
			return NullValue(LongType), true
		}
		return NewLongValue(a.Value(i)), true
	case *array.Float32:
		if a.IsNull(i) {
			return NullValue(FloatType), true
		}
		return NewFloatValue(a.Value(i)), true
	case *array.Float64:
		if a.IsNull(i) {
			return NullValue(DoubleType), true
		}
		return NewDoubleValue(a.Value(i)), true
	case *array.String:
		if a.IsNull(i) {
			return NullValue(StringType), true
		}
		return NewStringValue(a.Value(i)), true
	case *array.Binary:
		if a.IsNull(i) {
			return NullValue(BinaryType), true
		}
		return NewBinaryValue(a.Value(i)), true
	case *array.Date32:
		if a.IsNull(i) {
			return NullValue(DateType), true
		}
		return NewDateValue(int32(a.Value(i))), true
	case *array.Timestamp:
		if a.IsNull(i) {
			return NullValue(TimestampType), true
		}
		unit := arrow.Microsecond
		if t, ok := a.DataType().(*arrow.TimestampType); ok {
			unit = t.Unit
		}
		return NewTimestampValue(toMicros(int64(a.Value(i)), unit)), true
	}
	return Value{}, false
}

func toMicros(v int64, unit arrow.TimeUnit) int64 {
	switch unit {
	case arrow.Second:
		return v * 1_000_000
	case arrow.Millisecond:
		return v * 1_000
	case arrow.Nanosecond:
		return v / 1_000
	}
	return v
}
