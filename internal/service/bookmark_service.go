package service

import (
	"context"
	"time"

	"clat_prep_backend/internal/model"
	"clat_prep_backend/internal/repository"
)

// BookmarkService toggles and lists article/question bookmarks.
type BookmarkService struct {
	Repo *repository.BookmarkRepository
}

func NewBookmarkService(repo *repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{Repo: repo}
}

func toggle(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func (s *BookmarkService) Bookmarks(ctx context.Context) model.Bookmarks {
	return s.Repo.Get(ctx)
}

func (s *BookmarkService) ToggleArticle(ctx context.Context, articleID string) model.Bookmarks {
	b, _ := s.Repo.Update(ctx, func(b *model.Bookmarks) {
		b.Articles = toggle(b.Articles, articleID)
		b.LastUpdated = time.Now()
	})
	return b
}

func (s *BookmarkService) ToggleQuestion(ctx context.Context, questionID string) model.Bookmarks {
	b, _ := s.Repo.Update(ctx, func(b *model.Bookmarks) {
		b.Questions = toggle(b.Questions, questionID)
		b.LastUpdated = time.Now()
	})
	return b
}

func (s *BookmarkService) ClearArticles(ctx context.Context) model.Bookmarks {
	b, _ := s.Repo.Update(ctx, func(b *model.Bookmarks) {
		b.Articles = []string{}
		b.LastUpdated = time.Now()
	})
	return b
}

func (s *BookmarkService) ClearQuestions(ctx context.Context) model.Bookmarks {
	b, _ := s.Repo.Update(ctx, func(b *model.Bookmarks) {
		b.Questions = []string{}
		b.LastUpdated = time.Now()
	})
	return b
}
