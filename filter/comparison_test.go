package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func longStats(min, max int64) RowGroupStats {
	return RowGroupStats{"x": NewStatistics(NewLongValue(min), NewLongValue(max))}
}

func TestComparisonCanDropLong(t *testing.T) {
	// chunk holds values in [10, 20]
	stats := longStats(10, 20)

	cases := []struct {
		op      ComparisonType
		value   int64
		canDrop bool
	}{
		{Equal, 15, false},
		{Equal, 10, false},
		{Equal, 20, false},
		{Equal, 9, true},
		{Equal, 21, true},
		{NotEqual, 15, false},
		{LessThan, 10, true},
		{LessThan, 9, true},
		{LessThan, 11, false},
		{LessThanOrEqual, 9, true},
		{LessThanOrEqual, 10, false},
		{GreaterThan, 20, true},
		{GreaterThan, 21, true},
		{GreaterThan, 19, false},
		{GreaterThanOrEqual, 21, true},
		{GreaterThanOrEqual, 20, false},
	}
	for _, c := range cases {
		p := NewComparison(c.op, "x", NewLongValue(c.value))
		assert.Equal(t, c.canDrop, p.CanDrop(stats), p.String())
	}
}

func TestComparisonNotEqualConstantChunk(t *testing.T) {
	p := NewComparison(NotEqual, "x", NewLongValue(7))
	assert.True(t, p.CanDrop(longStats(7, 7)))
	assert.False(t, p.CanDrop(longStats(7, 8)))
}

func TestComparisonCanDropString(t *testing.T) {
	stats := RowGroupStats{"s": NewStatistics(NewStringValue("banana"), NewStringValue("cherry"))}

	assert.True(t, NewComparison(Equal, "s", NewStringValue("apple")).CanDrop(stats))
	assert.False(t, NewComparison(Equal, "s", NewStringValue("blueberry")).CanDrop(stats))
	assert.True(t, NewComparison(LessThan, "s", NewStringValue("banana")).CanDrop(stats))
	assert.True(t, NewComparison(GreaterThan, "s", NewStringValue("cherry")).CanDrop(stats))
	assert.False(t, NewComparison(GreaterThanOrEqual, "s", NewStringValue("cherry")).CanDrop(stats))
}

func TestComparisonMissingStatisticsNeverDrops(t *testing.T) {
	p := NewComparison(Equal, "x", NewLongValue(5))
	assert.False(t, p.CanDrop(nil))
	assert.False(t, p.CanDrop(RowGroupStats{}))
	assert.False(t, p.CanDrop(RowGroupStats{"x": {}}))
	assert.False(t, p.InverseCanDrop(RowGroupStats{}))
}

func TestComparisonNullLiteralNeverDrops(t *testing.T) {
	// IsNull / IsNotNull reach the engine as equality against null; min/max
	// statistics carry no null information.
	assert.False(t, NewComparison(Equal, "x", NullValue(LongType)).CanDrop(longStats(1, 2)))
	assert.False(t, NewComparison(NotEqual, "x", NullValue(LongType)).CanDrop(longStats(1, 2)))
}

func TestComparisonKeep(t *testing.T) {
	lt := NewComparison(LessThan, "x", NewLongValue(10))
	assert.True(t, lt.Keep(NewLongValue(9)))
	assert.False(t, lt.Keep(NewLongValue(10)))
	assert.False(t, lt.Keep(NullValue(LongType)))

	isNull := NewComparison(Equal, "x", NullValue(LongType))
	assert.True(t, isNull.Keep(NullValue(LongType)))
	assert.False(t, isNull.Keep(NewLongValue(0)))

	isNotNull := NewComparison(NotEqual, "x", NullValue(LongType))
	assert.False(t, isNotNull.Keep(NullValue(LongType)))
	assert.True(t, isNotNull.Keep(NewLongValue(0)))
}

func TestComparisonInverseCanDrop(t *testing.T) {
	// not(x == 7) on a constant chunk of 7s
	eq := NewComparison(Equal, "x", NewLongValue(7))
	assert.True(t, eq.InverseCanDrop(longStats(7, 7)))
	assert.False(t, eq.InverseCanDrop(longStats(6, 7)))

	// not(x < 10) == x >= 10
	lt := NewComparison(LessThan, "x", NewLongValue(10))
	assert.True(t, lt.InverseCanDrop(longStats(1, 9)))
	assert.False(t, lt.InverseCanDrop(longStats(1, 10)))
}

func TestComparisonDateAgainstIntegerStatistics(t *testing.T) {
	// parquet stores dates as int32 day offsets; decoded statistics come
	// back integer-typed and must still compare against date literals
	stats := RowGroupStats{"d": NewStatistics(NewIntegerValue(100), NewIntegerValue(200))}
	assert.True(t, NewComparison(Equal, "d", NewDateValue(99)).CanDrop(stats))
	assert.False(t, NewComparison(Equal, "d", NewDateValue(150)).CanDrop(stats))
}

func TestComparisonCanDropDouble(t *testing.T) {
	// chunk holds values in [1.5, 2.5]
	stats := RowGroupStats{"score": NewStatistics(NewDoubleValue(1.5), NewDoubleValue(2.5))}

	cases := []struct {
		op      ComparisonType
		value   float64
		canDrop bool
	}{
		{Equal, 2.0, false},
		{Equal, 1.5, false},
		{Equal, 2.5, false},
		{Equal, 1.25, true},
		{Equal, 2.75, true},
		{NotEqual, 2.0, false},
		{LessThan, 1.5, true},
		{LessThan, 1.75, false},
		{LessThanOrEqual, 1.25, true},
		{LessThanOrEqual, 1.5, false},
		{GreaterThan, 2.5, true},
		{GreaterThan, 2.25, false},
		{GreaterThanOrEqual, 2.75, true},
		{GreaterThanOrEqual, 2.5, false},
	}
	for _, c := range cases {
		p := NewComparison(c.op, "score", NewDoubleValue(c.value))
		assert.Equal(t, c.canDrop, p.CanDrop(stats), p.String())
	}
}

func TestComparisonCanDropFloat(t *testing.T) {
	stats := RowGroupStats{"ratio": NewStatistics(NewFloatValue(0.25), NewFloatValue(0.75))}

	assert.True(t, NewComparison(Equal, "ratio", NewFloatValue(1)).CanDrop(stats))
	assert.False(t, NewComparison(Equal, "ratio", NewFloatValue(0.5)).CanDrop(stats))
	assert.True(t, NewComparison(LessThan, "ratio", NewFloatValue(0.25)).CanDrop(stats))
	assert.True(t, NewComparison(GreaterThan, "ratio", NewFloatValue(0.75)).CanDrop(stats))

	// float literals also prune against double-typed chunk statistics
	wide := RowGroupStats{"ratio": NewStatistics(NewDoubleValue(0.25), NewDoubleValue(0.75))}
	assert.True(t, NewComparison(Equal, "ratio", NewFloatValue(1)).CanDrop(wide))

	constant := RowGroupStats{"ratio": NewStatistics(NewFloatValue(0.5), NewFloatValue(0.5))}
	assert.True(t, NewComparison(NotEqual, "ratio", NewFloatValue(0.5)).CanDrop(constant))
}

func TestComparisonCanDropBoolean(t *testing.T) {
	allFalse := RowGroupStats{"ok": NewStatistics(NewBooleanValue(false), NewBooleanValue(false))}

	assert.True(t, NewComparison(Equal, "ok", NewBooleanValue(true)).CanDrop(allFalse))
	assert.False(t, NewComparison(Equal, "ok", NewBooleanValue(false)).CanDrop(allFalse))
	assert.True(t, NewComparison(NotEqual, "ok", NewBooleanValue(false)).CanDrop(allFalse))
	// false < true under the natural ordering
	assert.True(t, NewComparison(GreaterThanOrEqual, "ok", NewBooleanValue(true)).CanDrop(allFalse))

	mixed := RowGroupStats{"ok": NewStatistics(NewBooleanValue(false), NewBooleanValue(true))}
	assert.False(t, NewComparison(Equal, "ok", NewBooleanValue(true)).CanDrop(mixed))
	assert.False(t, NewComparison(NotEqual, "ok", NewBooleanValue(true)).CanDrop(mixed))
}

func TestComparisonCanDropTimestamp(t *testing.T) {
	// chunk covers one second starting at t+1s, in micros
	stats := RowGroupStats{"ts": NewStatistics(NewTimestampValue(1_000_000), NewTimestampValue(2_000_000))}

	assert.True(t, NewComparison(Equal, "ts", NewTimestampValue(3_000_000)).CanDrop(stats))
	assert.False(t, NewComparison(Equal, "ts", NewTimestampValue(1_500_000)).CanDrop(stats))
	assert.True(t, NewComparison(LessThanOrEqual, "ts", NewTimestampValue(999_999)).CanDrop(stats))

	// micros compare against int64-typed chunk statistics too
	physical := RowGroupStats{"ts": NewStatistics(NewLongValue(1_000_000), NewLongValue(2_000_000))}
	assert.True(t, NewComparison(GreaterThan, "ts", NewTimestampValue(2_000_000)).CanDrop(physical))
}

func TestValueClassMismatchIsUndecidable(t *testing.T) {
	p := NewComparison(Equal, "x", NewStringValue("5"))
	assert.False(t, p.CanDrop(longStats(1, 2)))
	assert.False(t, p.Keep(NewLongValue(5)))
}
