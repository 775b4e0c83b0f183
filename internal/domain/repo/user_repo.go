package repo

import (
	"context"

	"github.com/tasklane/tasklane/internal/domain/model"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user model.User) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	DeleteUser(ctx context.Context, id int64) error
}
