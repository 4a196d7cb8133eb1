package catalog

import "errors"

// Construction errors.
var (
	ErrEmptyTopic       = errors.New("topic tag is empty")
	ErrInvalidResource  = errors.New("invalid resource record")
	ErrEmptyKeywords    = errors.New("resource has no keywords")
	ErrInvalidKeyword   = errors.New("keyword must be non-empty lowercase text")
	ErrDuplicateKeyword = errors.New("keyword repeated within resource")
)
