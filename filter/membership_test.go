package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func longSet(values ...int64) *Membership {
	vs := make([]Value, len(values))
	for i, v := range values {
		vs[i] = NewLongValue(v)
	}
	return NewMembership("x", LongType, vs)
}

func TestMembershipKeep(t *testing.T) {
	m := longSet(1, 5)
	assert.True(t, m.Keep(NewLongValue(1)))
	assert.True(t, m.Keep(NewLongValue(5)))
	assert.False(t, m.Keep(NewLongValue(3)))
	assert.False(t, m.Keep(NullValue(LongType)))
}

func TestMembershipCanDrop(t *testing.T) {
	m := longSet(1, 5)
	assert.True(t, m.CanDrop(longStats(10, 20)))
	assert.False(t, m.CanDrop(longStats(3, 5)))
	assert.False(t, m.CanDrop(longStats(0, 2)))
	assert.True(t, m.CanDrop(longStats(2, 4)))
	assert.True(t, m.CanDrop(longStats(6, 9)))
}

func TestMembershipInverseCanDrop(t *testing.T) {
	m := longSet(5)
	// the whole chunk provably holds the single blocked value
	assert.True(t, m.InverseCanDrop(longStats(5, 5)))
	// overlap alone proves nothing about NOT IN
	assert.False(t, m.InverseCanDrop(longStats(4, 6)))
	assert.False(t, longSet(1, 5).InverseCanDrop(longStats(4, 4)))
}

func TestMembershipEmptySet(t *testing.T) {
	m := longSet()
	assert.False(t, m.Keep(NewLongValue(0)))
	assert.False(t, m.Keep(NullValue(LongType)))
	// no value in an empty set can overlap any range, so every chunk with
	// statistics is droppable; flagged as an intentional consequence of the
	// algorithm rather than a special case
	assert.True(t, m.CanDrop(longStats(-1000, 1000)))
	assert.False(t, m.InverseCanDrop(longStats(5, 5)))
}

func TestMembershipMissingStatistics(t *testing.T) {
	m := longSet(1, 5)
	assert.False(t, m.CanDrop(nil))
	assert.False(t, m.CanDrop(RowGroupStats{"x": {}}))
	assert.False(t, m.InverseCanDrop(RowGroupStats{}))

	// even the empty set cannot drop a chunk without statistics
	assert.False(t, longSet().CanDrop(RowGroupStats{}))
}

func TestMembershipNullMembersIgnored(t *testing.T) {
	m := NewMembership("x", LongType, []Value{NullValue(LongType), NewLongValue(2)})
	assert.True(t, m.Keep(NewLongValue(2)))
	assert.False(t, m.Keep(NullValue(LongType)))
	assert.True(t, m.CanDrop(longStats(3, 4)))
}

func TestMembershipStrings(t *testing.T) {
	m := NewMembership("s", StringType, []Value{
		NewStringValue("apple"), NewStringValue("pear"),
	})
	stats := RowGroupStats{"s": NewStatistics(NewStringValue("fig"), NewStringValue("kiwi"))}
	assert.True(t, m.CanDrop(stats))
	assert.True(t, m.Keep(NewStringValue("pear")))

	within := RowGroupStats{"s": NewStatistics(NewStringValue("fig"), NewStringValue("plum"))}
	assert.False(t, m.CanDrop(within))
}
