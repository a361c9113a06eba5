package filter

import (
	"github.com/apache/arrow/go/v12/parquet/metadata"
	"go.uber.org/zap"

	"github.com/openlake-io/openlake-storage/go/common/log"
)

// StatisticsFrom converts one column chunk's parquet statistics into the
// engine encoding. Statistics the engine cannot interpret come back as the
// zero Statistics, which never allows a drop.
func StatisticsFrom(ts metadata.TypedStatistics) Statistics {
	if ts == nil || !ts.HasMinMax() {
		return Statistics{}
	}
	switch s := ts.(type) {
	case *metadata.BooleanStatistics:
		return NewStatistics(NewBooleanValue(s.Min()), NewBooleanValue(s.Max()))
	case *metadata.Int32Statistics:
		return NewStatistics(NewIntegerValue(s.Min()), NewIntegerValue(s.Max()))
	case *metadata.Int64Statistics:
		return NewStatistics(NewLongValue(s.Min()), NewLongValue(s.Max()))
	case *metadata.Float32Statistics:
		return NewStatistics(NewFloatValue(s.Min()), NewFloatValue(s.Max()))
	case *metadata.Float64Statistics:
		return NewStatistics(NewDoubleValue(s.Min()), NewDoubleValue(s.Max()))
	case *metadata.ByteArrayStatistics:
		return NewStatistics(NewBinaryValue(s.Min()), NewBinaryValue(s.Max()))
	}
	return Statistics{}
}

// RowGroupStatsFrom collects the statistics of the named columns in one row
// group. Columns without usable statistics are left out, so pruning keeps
// the group for them.
func RowGroupStatsFrom(rg *metadata.RowGroupMetaData, columns []string) RowGroupStats {
	stats := make(RowGroupStats, len(columns))
	for _, name := range columns {
		idx := rg.Schema.ColumnIndexByName(name)
		if idx < 0 {
			continue
		}
		chunk, err := rg.ColumnChunk(idx)
		if err != nil {
			log.Warn("read column chunk metadata failed",
				log.String("column", name), zap.Error(err))
			continue
		}
		ts, err := chunk.Statistics()
		if err != nil {
			log.Warn("read column statistics failed",
				log.String("column", name), zap.Error(err))
			continue
		}
		if s := StatisticsFrom(ts); s.HasMinMax() {
			stats[name] = s
		}
	}
	return stats
}

// SelectRowGroups returns the indices of the row groups that must still be
// read: every group the predicate can prove empty is skipped.
func SelectRowGroups(md *metadata.FileMetaData, p Predicate) []int {
	columns := Columns(p)
	selected := make([]int, 0, len(md.RowGroups))
	for i := 0; i < len(md.RowGroups); i++ {
		rg := md.RowGroup(i)
		if p.CanDrop(RowGroupStatsFrom(rg, columns)) {
			log.Debug("row group pruned", log.Int("rowGroup", i))
			continue
		}
		selected = append(selected, i)
	}
	return selected
}

// Columns lists, without duplicates, the column names referenced by p.
func Columns(p Predicate) []string {
	seen := make(map[string]struct{})
	var out []string
	var walk func(Predicate)
	walk = func(p Predicate) {
		switch t := p.(type) {
		case *And:
			walk(t.left)
			walk(t.right)
		case *Or:
			walk(t.left)
			walk(t.right)
		case *Not:
			walk(t.child)
		case *Comparison:
			if _, ok := seen[t.column]; !ok {
				seen[t.column] = struct{}{}
				out = append(out, t.column)
			}
		case *Membership:
			if _, ok := seen[t.column]; !ok {
				seen[t.column] = struct{}{}
				out = append(out, t.column)
			}
		}
	}
	walk(p)
	return out
}
