package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type TodoRepo struct {
	db *gorm.DB
}

func NewTodoRepo(db *gorm.DB) *TodoRepo {
	return &TodoRepo{db: db}
}

func (r *TodoRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	var todos []model.Todo
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&todos)
	if err := res.Error; err != nil {
		return nil, apperrors.WrapInternal(err, "ListByOwner")
	}
	return todos, nil
}

func (r *TodoRepo) GetByOwner(ctx context.Context, ownerID, id int64) (model.Todo, error) {
	var t model.Todo
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).First(&t)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Todo{}, apperrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Todo{}, apperrors.WrapInternal(err, "GetByOwner")
	}
	return t, nil
}

func (r *TodoRepo) Create(ctx context.Context, todo model.Todo) (int64, error) {
	res := r.db.WithContext(ctx).Create(&todo)
	if err := res.Error; err != nil {
		return 0, apperrors.WrapInternal(err, "Create")
	}
	return todo.ID, nil
}

func (r *TodoRepo) Update(ctx context.Context, todo model.Todo) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", todo.ID, todo.OwnerID).
		Select("title", "description", "priority", "complete").
		Updates(&todo)
	if err := res.Error; err != nil {
		return apperrors.WrapInternal(err, "Update")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TodoRepo) Delete(ctx context.Context, ownerID, id int64) error {
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.Todo{}, id)
	if err := res.Error; err != nil {
		return apperrors.WrapInternal(err, "Delete")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
