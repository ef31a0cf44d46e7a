package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// ShowProgressOutput contains the current progression state and its derived
// level figures.
type ShowProgressOutput struct {
	Progression domain.Progression
	Level       int
	IntoLevel   int // Experience accumulated within the current level
	Remaining   int // Experience still needed for the next level
}

// ShowProgress is the use case for displaying the experience counter.
type ShowProgress struct {
	progression domain.ProgressionRepository
}

// NewShowProgress creates a new ShowProgress use case.
func NewShowProgress(progression domain.ProgressionRepository) *ShowProgress {
	return &ShowProgress{progression: progression}
}

// Execute reads the progression record and derives the level figures.
func (uc *ShowProgress) Execute(ctx context.Context) (*ShowProgressOutput, error) {
	prog, err := uc.progression.GetProgression()
	if err != nil {
		return nil, fmt.Errorf("read progression: %w", err)
	}
	return &ShowProgressOutput{
		Progression: prog,
		Level:       prog.Level(),
		IntoLevel:   prog.IntoLevel(),
		Remaining:   prog.Remaining(),
	}, nil
}
