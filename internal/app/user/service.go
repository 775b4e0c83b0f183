package user

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/app/auth"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
	"github.com/tasklane/tasklane/internal/domain/repo"
)

type Service interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, id int64, in dto.UpdateUserDTO) (model.User, error)
	// ChangePassword verifies the caller's current password before
	// installing the new hash.
	ChangePassword(ctx context.Context, caller model.Identity, in dto.ChangePasswordDTO) error
	// Delete removes the caller's own account.
	Delete(ctx context.Context, caller model.Identity) error
}

type service struct {
	users repo.UserRepo
	v     *validator.Validate
}

func New(users repo.UserRepo, v *validator.Validate) Service {
	return &service{users: users, v: v}
}

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (model.User, error) {
	return s.users.GetUserByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, in dto.UpdateUserDTO) (model.User, error) {
	if err := s.v.Struct(in); err != nil {
		return model.User{}, apperrors.NewInvalidArgument(err.Error())
	}

	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = *in.PhoneNumber
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := s.users.UpdateUser(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, caller model.Identity, in dto.ChangePasswordDTO) error {
	if err := s.v.Struct(in); err != nil {
		return apperrors.NewInvalidArgument(err.Error())
	}

	u, err := s.users.GetUserByID(ctx, caller.ID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(in.OldPassword, u.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, caller.ID, hash)
}

func (s *service) Delete(ctx context.Context, caller model.Identity) error {
	return s.users.DeleteUser(ctx, caller.ID)
}
