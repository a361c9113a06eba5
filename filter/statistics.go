package filter

// Statistics is the min/max pair recorded for one column chunk. The zero
// value means the chunk carries no usable statistics; pruning must then keep
// the row group.
type Statistics struct {
	min, max Value
	valid    bool
}

func NewStatistics(min, max Value) Statistics {
	if min.IsNull() || max.IsNull() || min.Kind().class() != max.Kind().class() {
		return Statistics{}
	}
	return Statistics{min: min, max: max, valid: true}
}

func (s Statistics) HasMinMax() bool {
	return s.valid
}

func (s Statistics) Min() Value {
	return s.min
}

func (s Statistics) Max() Value {
	return s.max
}

// RowGroupStats holds the per-column statistics of one row group, keyed by
// column name. A missing column behaves like a chunk without statistics.
type RowGroupStats map[string]Statistics

func (r RowGroupStats) Column(name string) Statistics {
	if r == nil {
		return Statistics{}
	}
	return r[name]
}
