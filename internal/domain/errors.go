package domain

import "errors"

var (
	ErrEmptyQuestion       = errors.New("question is empty")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrAskNotFound         = errors.New("ask not found")
	ErrBackendUnavailable  = errors.New("backend unavailable")
)
