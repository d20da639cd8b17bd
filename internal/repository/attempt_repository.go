package repository

import (
	"context"
	"sync"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
)

// AttemptRepository owns the test-attempt log document. The log is
// append-only; entries are never mutated or deleted by normal flow.
type AttemptRepository struct {
	store DocumentStore
	mu    sync.Mutex
}

func NewAttemptRepository(store DocumentStore) *AttemptRepository {
	return &AttemptRepository{store: store}
}

func (r *AttemptRepository) Log(ctx context.Context) model.TestAttemptLog {
	return ReadDoc(ctx, r.store, util.KeyTestAttempts, model.TestAttemptLog{})
}

// Append adds one attempt under the repository lock so concurrent
// submissions cannot lose each other's writes.
func (r *AttemptRepository) Append(ctx context.Context, attempt model.TestAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.Log(ctx)
	log.Attempts = append(log.Attempts, attempt)
	return WriteDoc(ctx, r.store, util.KeyTestAttempts, log)
}

func (r *AttemptRepository) FindByID(ctx context.Context, attemptID string) (*model.TestAttempt, error) {
	log := r.Log(ctx)
	for i := range log.Attempts {
		if log.Attempts[i].AttemptID == attemptID {
			return &log.Attempts[i], nil
		}
	}
	return nil, util.ErrAttemptNotFound
}
