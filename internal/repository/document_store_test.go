package repository

import (
	"context"
	"testing"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryDocumentStore()
	ctx := context.Background()

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	assert.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`)))
	raw, ok := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	assert.NoError(t, store.Remove(ctx, "k"))
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryStoreClear(t *testing.T) {
	store := NewMemoryDocumentStore()
	ctx := context.Background()

	store.Set(ctx, "a", []byte(`1`))
	store.Set(ctx, "b", []byte(`2`))
	assert.NoError(t, store.Clear(ctx))

	_, ok := store.Get(ctx, "a")
	assert.False(t, ok)
}

func TestReadDocDefaultsOnMissingKey(t *testing.T) {
	store := NewMemoryDocumentStore()

	stats := ReadDoc(context.Background(), store, util.KeyStudyStats, model.StudyStats{TotalXP: 5})

	assert.Equal(t, 5, stats.TotalXP)
}

func TestReadDocDefaultsOnCorruptDocument(t *testing.T) {
	store := NewMemoryDocumentStore()
	ctx := context.Background()

	store.Set(ctx, util.KeyStudyStats, []byte(`{not json`))

	stats := ReadDoc(ctx, store, util.KeyStudyStats, model.StudyStats{})
	assert.Equal(t, model.StudyStats{}, stats)
}

func TestWriteDocThenReadDoc(t *testing.T) {
	store := NewMemoryDocumentStore()
	ctx := context.Background()

	in := model.StudyStats{QuestionsTotal: 7, TotalXP: 70}
	assert.NoError(t, WriteDoc(ctx, store, util.KeyStudyStats, in))

	out := ReadDoc(ctx, store, util.KeyStudyStats, model.StudyStats{})
	assert.Equal(t, in, out)
}

func TestPracticeRepositoryFoldsTopicStats(t *testing.T) {
	repo := NewPracticeRepository(NewMemoryDocumentStore())
	ctx := context.Background()

	repo.RecordSession(ctx, model.PracticeSession{TopicID: "Legal Reasoning-Torts", Correct: 3, Total: 5})
	repo.RecordSession(ctx, model.PracticeSession{TopicID: "Legal Reasoning-Torts", Correct: 4, Total: 5})

	log := repo.Log(ctx)
	assert.Len(t, log.Sessions, 2)
	assert.Equal(t, model.TopicStat{Attempted: 10, Correct: 7}, log.TopicStats["Legal Reasoning-Torts"])
}

func TestAttemptRepositoryFindByID(t *testing.T) {
	repo := NewAttemptRepository(NewMemoryDocumentStore())
	ctx := context.Background()

	repo.Append(ctx, model.TestAttempt{AttemptID: "a1", TestID: "t1"})

	found, err := repo.FindByID(ctx, "a1")
	assert.NoError(t, err)
	assert.Equal(t, "t1", found.TestID)

	_, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, util.ErrAttemptNotFound)
}

func TestGamificationRepositoryNormalizesWeeklyWindow(t *testing.T) {
	store := NewMemoryDocumentStore()
	repo := NewGamificationRepository(store)
	ctx := context.Background()

	WriteDoc(ctx, store, util.KeyStreak, model.StreakState{
		CurrentStreak:  2,
		WeeklyActivity: []bool{true, true},
	})

	state := repo.Streak(ctx)
	assert.Len(t, state.WeeklyActivity, 7)
	assert.Equal(t, []bool{false, false, false, false, false, true, true}, state.WeeklyActivity)
}
