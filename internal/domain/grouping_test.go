package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByPriority_OrderAndOmission(t *testing.T) {
	tasks := []*Task{
		{ID: "1", Priority: PriorityLow},
		{ID: "2", Priority: PriorityUrgent},
		{ID: "3", Priority: PriorityLow},
		{ID: "4", Priority: PriorityUrgent},
	}

	groups := GroupByPriority(tasks)

	// urgent first, low last; empty tiers (high, medium) omitted.
	require.Len(t, groups, 2)
	assert.Equal(t, PriorityUrgent, groups[0].Priority)
	assert.Equal(t, PriorityLow, groups[1].Priority)

	// Stable partition: input order preserved within each tier.
	assert.Equal(t, "2", groups[0].Tasks[0].ID)
	assert.Equal(t, "4", groups[0].Tasks[1].ID)
	assert.Equal(t, "1", groups[1].Tasks[0].ID)
	assert.Equal(t, "3", groups[1].Tasks[1].ID)
}

func TestGroupByPriority_LegacyValuesNormalized(t *testing.T) {
	tasks := []*Task{
		{ID: "1", Priority: "urgente"},
		{ID: "2", Priority: "media"},
		{ID: "3", Priority: PriorityMedium},
	}

	groups := GroupByPriority(tasks)

	require.Len(t, groups, 2)
	assert.Equal(t, PriorityUrgent, groups[0].Priority)
	assert.Equal(t, PriorityMedium, groups[1].Priority)
	require.Len(t, groups[1].Tasks, 2)
	assert.Equal(t, "2", groups[1].Tasks[0].ID)
	assert.Equal(t, "3", groups[1].Tasks[1].ID)
}

func TestGroupByPriority_Empty(t *testing.T) {
	assert.Empty(t, GroupByPriority(nil))
}
