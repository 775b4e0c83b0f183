package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type BookRepo struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) List(ctx context.Context, limit int) ([]model.Book, error) {
	var books []model.Book
	q := r.db.WithContext(ctx).Order("title")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&books).Error; err != nil {
		return nil, apperrors.WrapInternal(err, "List")
	}
	return books, nil
}

func (r *BookRepo) Get(ctx context.Context, id uuid.UUID) (model.Book, error) {
	var b model.Book
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&b)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Book{}, apperrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Book{}, apperrors.WrapInternal(err, "Get")
	}
	return b, nil
}

func (r *BookRepo) Create(ctx context.Context, book model.Book) error {
	res := r.db.WithContext(ctx).Create(&book)
	if err := res.Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return apperrors.WrapInternal(err, "Create")
	}
	return nil
}

func (r *BookRepo) Update(ctx context.Context, book model.Book) error {
	res := r.db.WithContext(ctx).
		Model(&model.Book{}).Where("id = ?", book.ID).
		Select("title", "author", "description", "rating").
		Updates(&book)
	if err := res.Error; err != nil {
		return apperrors.WrapInternal(err, "Update")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if err := res.Error; err != nil {
		return apperrors.WrapInternal(err, "Delete")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the catalog atomically; readers either see the old
// catalog or the new one, never a mix.
func (r *BookRepo) ReplaceAll(ctx context.Context, books []model.Book) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Book{}).Error; err != nil {
			return err
		}
		if len(books) == 0 {
			return nil
		}
		return tx.Create(&books).Error
	})
	if err != nil {
		return apperrors.WrapInternal(err, "ReplaceAll")
	}
	return nil
}
