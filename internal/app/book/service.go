package book

import (
	"context"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
	"github.com/tasklane/tasklane/internal/domain/repo"
)

// Source supplies an external catalog for import.
type Source interface {
	Fetch(ctx context.Context) ([]model.Book, error)
}

type Service interface {
	List(ctx context.Context, limit int) ([]model.Book, error)
	Get(ctx context.Context, id uuid.UUID) (model.Book, error)
	Create(ctx context.Context, in dto.BookDTO) (model.Book, error)
	Update(ctx context.Context, id uuid.UUID, in dto.BookDTO) (model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// RunImport replaces the catalog with books fetched from src.
	// Importing reports whether an import is in flight; reads during an
	// import answer "still processing" instead of a partial catalog.
	RunImport(ctx context.Context, src Source) error
	Importing() bool
}

type service struct {
	books     repo.BookRepo
	v         *validator.Validate
	importing atomic.Bool
}

func New(books repo.BookRepo, v *validator.Validate) Service {
	return &service{books: books, v: v}
}

func (s *service) List(ctx context.Context, limit int) ([]model.Book, error) {
	if limit < 0 {
		return nil, apperrors.NewInvalidArgument("the number of books to return must be positive")
	}
	return s.books.List(ctx, limit)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (model.Book, error) {
	return s.books.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, in dto.BookDTO) (model.Book, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Book{}, apperrors.NewInvalidArgument(err.Error())
	}

	b := model.Book{
		ID:          in.ID,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Rating:      in.Rating,
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if err := s.books.Create(ctx, b); err != nil {
		return model.Book{}, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in dto.BookDTO) (model.Book, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Book{}, apperrors.NewInvalidArgument(err.Error())
	}

	b, err := s.books.Get(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	b.Title = in.Title
	b.Author = in.Author
	b.Description = in.Description
	b.Rating = in.Rating
	if err := s.books.Update(ctx, b); err != nil {
		return model.Book{}, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.books.Delete(ctx, id)
}

func (s *service) RunImport(ctx context.Context, src Source) error {
	if !s.importing.CompareAndSwap(false, true) {
		return apperrors.NewInvalidArgument("import already in progress")
	}
	defer s.importing.Store(false)

	books, err := src.Fetch(ctx)
	if err != nil {
		return apperrors.WrapInternal(err, "import books")
	}
	return s.books.ReplaceAll(ctx, books)
}

func (s *service) Importing() bool {
	return s.importing.Load()
}
