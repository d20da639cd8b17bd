package util

import "errors"

var (
	ErrTestNotFound       = errors.New("test not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrArticleNotFound    = errors.New("article not found")
	ErrAttemptNotFound    = errors.New("attempt not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrCatalogUnavailable = errors.New("catalog dataset unavailable")
)
