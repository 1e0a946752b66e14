package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpsert = errors.New("failed to upsert record")
)
