package repo

import (
	"context"

	"github.com/tasklane/tasklane/internal/domain/model"
)

// TodoRepo is owner scoped by contract: lookups take the owner id and must
// not return rows belonging to anyone else.
type TodoRepo interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error)
	GetByOwner(ctx context.Context, ownerID, id int64) (model.Todo, error)
	Create(ctx context.Context, todo model.Todo) (int64, error)
	Update(ctx context.Context, todo model.Todo) error
	Delete(ctx context.Context, ownerID, id int64) error
}
