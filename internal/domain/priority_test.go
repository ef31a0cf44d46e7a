package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Normalize(t *testing.T) {
	tests := []struct {
		in   Priority
		want Priority
	}{
		{"urgente", PriorityUrgent},
		{"alta", PriorityHigh},
		{"media", PriorityMedium},
		{"baixa", PriorityLow},
		{PriorityHigh, PriorityHigh},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize())
	}
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range TierOrder() {
		assert.True(t, p.IsValid(), "%s", p)
	}
	assert.True(t, Priority("urgente").IsValid())
	assert.False(t, Priority("").IsValid())
	assert.False(t, Priority("critical").IsValid())
}

func TestPriority_Display(t *testing.T) {
	assert.Equal(t, "Urgent", PriorityUrgent.Display())
	assert.Equal(t, "High", Priority("alta").Display())
	assert.Equal(t, "whatever", Priority("whatever").Display())
}

func TestTierOrder(t *testing.T) {
	assert.Equal(t, []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}, TierOrder())
}
