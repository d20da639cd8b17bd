package repository

import (
	"context"
	"sync"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/util"
)

// BookmarkRepository owns the bookmark document.
type BookmarkRepository struct {
	store DocumentStore
	mu    sync.Mutex
}

func NewBookmarkRepository(store DocumentStore) *BookmarkRepository {
	return &BookmarkRepository{store: store}
}

func (r *BookmarkRepository) Get(ctx context.Context) model.Bookmarks {
	b := ReadDoc(ctx, r.store, util.KeyBookmarks, model.Bookmarks{})
	if b.Articles == nil {
		b.Articles = []string{}
	}
	if b.Questions == nil {
		b.Questions = []string{}
	}
	return b
}

// Update applies mutate to the current document under the lock and persists
// the result, returning the new state.
func (r *BookmarkRepository) Update(ctx context.Context, mutate func(*model.Bookmarks)) (model.Bookmarks, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.Get(ctx)
	mutate(&b)
	err := WriteDoc(ctx, r.store, util.KeyBookmarks, b)
	return b, err
}
