package repository

import (
	"context"
	"sync"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
)

// PracticeRepository owns the practice-session document: a session list
// plus the embedded per-topic aggregate cache.
type PracticeRepository struct {
	store DocumentStore
	mu    sync.Mutex
}

func NewPracticeRepository(store DocumentStore) *PracticeRepository {
	return &PracticeRepository{store: store}
}

func (r *PracticeRepository) Log(ctx context.Context) model.PracticeLog {
	log := ReadDoc(ctx, r.store, util.KeyPracticeSessions, model.PracticeLog{})
	if log.TopicStats == nil {
		log.TopicStats = make(map[string]model.TopicStat)
	}
	return log
}

// RecordSession appends the session and folds it into the topic cache in a
// single locked read-modify-write.
func (r *PracticeRepository) RecordSession(ctx context.Context, session model.PracticeSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.Log(ctx)
	log.Sessions = append(log.Sessions, session)

	stat := log.TopicStats[session.TopicID]
	stat.Attempted += session.Total
	stat.Correct += session.Correct
	log.TopicStats[session.TopicID] = stat

	return WriteDoc(ctx, r.store, util.KeyPracticeSessions, log)
}
