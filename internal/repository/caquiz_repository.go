package repository

import (
	"context"
	"sync"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
)

// CAQuizRepository owns the current-affairs quiz attempt log.
type CAQuizRepository struct {
	store DocumentStore
	mu    sync.Mutex
}

func NewCAQuizRepository(store DocumentStore) *CAQuizRepository {
	return &CAQuizRepository{store: store}
}

func (r *CAQuizRepository) Log(ctx context.Context) model.CAQuizAttemptLog {
	return ReadDoc(ctx, r.store, util.KeyCAQuizAttempts, model.CAQuizAttemptLog{})
}

func (r *CAQuizRepository) Append(ctx context.Context, attempt model.CAQuizAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.Log(ctx)
	log.Attempts = append(log.Attempts, attempt)
	return WriteDoc(ctx, r.store, util.KeyCAQuizAttempts, log)
}
