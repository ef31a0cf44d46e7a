package usecase

import (
	"context"
	"fmt"

	"github.com/tarefa-app/tarefa/internal/domain"
)

// InitStoreOutput contains the result of initializing the store.
type InitStoreOutput struct {
	AlreadyInitialized bool
}

// InitStore is the use case for creating the data store.
type InitStore struct {
	store domain.StoreInitializer
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(store domain.StoreInitializer) *InitStore {
	return &InitStore{store: store}
}

// Execute creates the store if it does not exist yet.
func (uc *InitStore) Execute(ctx context.Context) (*InitStoreOutput, error) {
	if uc.store.IsInitialized() {
		return &InitStoreOutput{AlreadyInitialized: true}, nil
	}
	if err := uc.store.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	return &InitStoreOutput{}, nil
}
