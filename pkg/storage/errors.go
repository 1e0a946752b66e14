package storage

import "errors"

var (
	ErrEmptyKey    = errors.New("object key cannot be empty")
	ErrEmptyBucket = errors.New("bucket cannot be empty")
	ErrEmptyBody   = errors.New("object body cannot be empty")
)
