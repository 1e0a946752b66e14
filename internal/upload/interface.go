package upload

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase stores user attachments in object storage.
type UseCase interface {
	Upload(ctx context.Context, sc model.Scope, input Input) (Output, error)
	// Remove deletes an object previously uploaded by the caller.
	Remove(ctx context.Context, sc model.Scope, input RemoveInput) error
}
