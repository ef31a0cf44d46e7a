package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarefa-app/tarefa/internal/domain"
	"github.com/tarefa-app/tarefa/internal/testutil"
)

func TestShowProgress_DerivesLevelFigures(t *testing.T) {
	prog := &testutil.MockProgressionRepository{Progression: domain.Progression{Experience: 250}}
	uc := NewShowProgress(prog)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 250, out.Progression.Experience)
	assert.Equal(t, 3, out.Level)
	assert.Equal(t, 50, out.IntoLevel)
	assert.Equal(t, 50, out.Remaining)
}

func TestShowProgress_ReadError(t *testing.T) {
	prog := &testutil.MockProgressionRepository{GetErr: errors.New("corrupt store")}
	uc := NewShowProgress(prog)

	_, err := uc.Execute(context.Background())
	assert.Error(t, err)
}
