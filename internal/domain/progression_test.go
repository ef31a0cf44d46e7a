package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgression_Award(t *testing.T) {
	p := Progression{Experience: 95}
	assert.Equal(t, 1, p.Level())
	assert.Equal(t, 5, p.Remaining())

	p = p.Award(CompletionPoints)

	assert.Equal(t, 105, p.Experience)
	assert.Equal(t, 2, p.Level())
	assert.Equal(t, 95, p.Remaining())
	assert.Equal(t, 5, p.IntoLevel())
}

func TestProgression_LevelDerivation(t *testing.T) {
	tests := []struct {
		xp        int
		level     int
		remaining int
	}{
		{0, 1, 100},
		{10, 1, 90},
		{99, 1, 1},
		{100, 2, 100},
		{250, 3, 50},
		{1000, 11, 100},
	}
	for _, tt := range tests {
		p := Progression{Experience: tt.xp}
		assert.Equal(t, tt.level, p.Level(), "xp=%d", tt.xp)
		assert.Equal(t, tt.remaining, p.Remaining(), "xp=%d", tt.xp)
	}
}

func TestProgression_AwardDoesNotMutate(t *testing.T) {
	p := Progression{Experience: 40}
	_ = p.Award(CompletionPoints)
	assert.Equal(t, 40, p.Experience)
}
