package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type BookRepo interface {
	List(ctx context.Context, limit int) ([]model.Book, error)
	Get(ctx context.Context, id uuid.UUID) (model.Book, error)
	Create(ctx context.Context, book model.Book) error
	Update(ctx context.Context, book model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceAll swaps the whole catalog for the imported one.
	ReplaceAll(ctx context.Context, books []model.Book) error
}
