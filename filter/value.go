package filter

import (
	"bytes"
	"fmt"
	"strconv"
)

// FieldType is the closed set of column types a predicate can be pushed for.
type FieldType int8

const (
	BooleanType FieldType = iota
	IntegerType
	LongType
	FloatType
	DoubleType
	StringType
	BinaryType
	TimestampType
	DateType
)

func (t FieldType) String() string {
	switch t {
	case BooleanType:
		return "boolean"
	case IntegerType:
		return "integer"
	case LongType:
		return "long"
	case FloatType:
		return "float"
	case DoubleType:
		return "double"
	case StringType:
		return "string"
	case BinaryType:
		return "binary"
	case TimestampType:
		return "timestamp"
	case DateType:
		return "date"
	}
	return "unknown"
}

// valueClass groups field types by their storage representation. Values are
// ordered within a class, so e.g. a Date predicate literal compares against
// statistics decoded from a parquet Int32 column chunk.
type valueClass int8

const (
	boolClass valueClass = iota
	intClass
	floatClass
	bytesClass
)

func (t FieldType) class() valueClass {
	switch t {
	case BooleanType:
		return boolClass
	case IntegerType, LongType, TimestampType, DateType:
		return intClass
	case FloatType, DoubleType:
		return floatClass
	}
	return bytesClass
}

// Value is a typed literal in the engine's native encoding: Date as days and
// Timestamp as microseconds since the Unix epoch, String and Binary as raw
// bytes. A Value is validated once when the predicate is built and never
// re-interpreted afterwards.
type Value struct {
	kind FieldType
	null bool
	b    bool
	i    int64
	f    float64
	buf  []byte
}

func NewBooleanValue(v bool) Value {
	return Value{kind: BooleanType, b: v}
}

func NewIntegerValue(v int32) Value {
	return Value{kind: IntegerType, i: int64(v)}
}

func NewLongValue(v int64) Value {
	return Value{kind: LongType, i: v}
}

func NewFloatValue(v float32) Value {
	return Value{kind: FloatType, f: float64(v)}
}

func NewDoubleValue(v float64) Value {
	return Value{kind: DoubleType, f: v}
}

func NewStringValue(v string) Value {
	return Value{kind: StringType, buf: []byte(v)}
}

func NewBinaryValue(v []byte) Value {
	buf := make([]byte, len(v))
	copy(buf, v)
	return Value{kind: BinaryType, buf: buf}
}

// NewDateValue takes days since the Unix epoch.
func NewDateValue(days int32) Value {
	return Value{kind: DateType, i: int64(days)}
}

// NewTimestampValue takes microseconds since the Unix epoch.
func NewTimestampValue(micros int64) Value {
	return Value{kind: TimestampType, i: micros}
}

// NullValue is the representation of null for the given type.
func NullValue(kind FieldType) Value {
	return Value{kind: kind, null: true}
}

func (v Value) Kind() FieldType {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.null
}

// compare orders v against o under the type's natural ordering. It reports
// ok=false when the two values live in different storage classes or either
// side is null; callers must treat that as "cannot decide".
func (v Value) compare(o Value) (int, bool) {
	if v.null || o.null || v.kind.class() != o.kind.class() {
		return 0, false
	}
	switch v.kind.class() {
	case boolClass:
		if v.b == o.b {
			return 0, true
		}
		if !v.b {
			return -1, true
		}
		return 1, true
	case intClass:
		switch {
		case v.i < o.i:
			return -1, true
		case v.i > o.i:
			return 1, true
		}
		return 0, true
	case floatClass:
		switch {
		case v.f < o.f:
			return -1, true
		case v.f > o.f:
			return 1, true
		}
		return 0, true
	}
	return bytes.Compare(v.buf, o.buf), true
}

// equal is null-safe: two nulls of the same class are not equal.
func (v Value) equal(o Value) bool {
	c, ok := v.compare(o)
	return ok && c == 0
}

func (v Value) String() string {
	if v.null {
		return "null"
	}
	switch v.kind.class() {
	case boolClass:
		return strconv.FormatBool(v.b)
	case intClass:
		return strconv.FormatInt(v.i, 10)
	case floatClass:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	if v.kind == StringType {
		return strconv.Quote(string(v.buf))
	}
	return fmt.Sprintf("0x%x", v.buf)
}
