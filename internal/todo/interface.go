package todo

import (
	"context"

	"smart-todo/internal/model"
)

// UseCase is the owner-scoped task store.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Todo, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Todo, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Todo, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Todo, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
