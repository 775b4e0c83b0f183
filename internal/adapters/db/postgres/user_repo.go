package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"

	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, user model.User) (int64, error) {
	res := r.db.WithContext(ctx).Create(&user)
	if err := res.Error; err != nil {
		if isUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyExists
		}
		return 0, apperrors.WrapInternal(err, "CreateUser")
	}
	return user.ID, nil
}

func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, apperrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, apperrors.WrapInternal(err, "GetUserByID")
	}
	return u, nil
}

func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&u)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.User{}, apperrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.User{}, apperrors.WrapInternal(err, "GetUserByUsername")
	}
	return u, nil
}

func (r *UserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.WrapInternal(err, "ListUsers")
	}
	return users, nil
}

func (r *UserRepo) UpdateUser(ctx context.Context, user model.User) error {
	res := r.db.WithContext(ctx).Save(&user)
	if err := res.Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return apperrors.WrapInternal(err, "UpdateUser")
	}
	return nil
}

func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Update("password_hash", hash)
	if err := res.Error; err != nil {
		return apperrors.WrapInternal(err, "UpdatePasswordHash")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if err := res.Error; err != nil {
		return apperrors.WrapInternal(err, "DeleteUser")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
