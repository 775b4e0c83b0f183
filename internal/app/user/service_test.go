package user_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/app/auth"
	"github.com/tasklane/tasklane/internal/app/user"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type userRepoStub struct {
	byID   map[int64]model.User
	nextID int64
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{byID: make(map[int64]model.User), nextID: 1}
}

func (r *userRepoStub) CreateUser(_ context.Context, u model.User) (int64, error) {
	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = u
	return u.ID, nil
}

func (r *userRepoStub) GetUserByID(_ context.Context, id int64) (model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return model.User{}, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *userRepoStub) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, apperrors.ErrNotFound
}

func (r *userRepoStub) ListUsers(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *userRepoStub) UpdateUser(_ context.Context, u model.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *userRepoStub) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = hash
	r.byID[id] = u
	return nil
}

func (r *userRepoStub) DeleteUser(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func seedUser(t *testing.T, repo *userRepoStub, username, password string) model.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	id, err := repo.CreateUser(context.Background(), model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsActive:     true,
	})
	require.NoError(t, err)
	u, err := repo.GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func TestUpdatePartialFields(t *testing.T) {
	repo := newUserRepoStub()
	svc := user.New(repo, validator.New())
	seeded := seedUser(t, repo, "john", "test1234!")

	email := "john.doe@example.com"
	updated, err := svc.Update(context.Background(), seeded.ID, dto.UpdateUserDTO{Email: &email})
	require.NoError(t, err)
	require.Equal(t, email, updated.Email)
	require.Equal(t, "john", updated.Username)
}

func TestUpdateRejectsBadEmail(t *testing.T) {
	repo := newUserRepoStub()
	svc := user.New(repo, validator.New())
	seeded := seedUser(t, repo, "john", "test1234!")

	email := "not-an-email"
	_, err := svc.Update(context.Background(), seeded.ID, dto.UpdateUserDTO{Email: &email})
	require.True(t, apperrors.IsInvalidArgument(err))
}

func TestChangePassword(t *testing.T) {
	repo := newUserRepoStub()
	svc := user.New(repo, validator.New())
	seeded := seedUser(t, repo, "john", "test1234!")
	caller := model.Identity{Subject: seeded.Username, ID: seeded.ID}

	err := svc.ChangePassword(context.Background(), caller, dto.ChangePasswordDTO{
		OldPassword: "test1234!",
		NewPassword: "fresh5678!",
	})
	require.NoError(t, err)

	stored, err := repo.GetUserByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.True(t, auth.VerifyPassword("fresh5678!", stored.PasswordHash))
	require.False(t, auth.VerifyPassword("test1234!", stored.PasswordHash))
}

func TestChangePasswordWrongOld(t *testing.T) {
	repo := newUserRepoStub()
	svc := user.New(repo, validator.New())
	seeded := seedUser(t, repo, "john", "test1234!")
	caller := model.Identity{Subject: seeded.Username, ID: seeded.ID}

	err := svc.ChangePassword(context.Background(), caller, dto.ChangePasswordDTO{
		OldPassword: "wrong",
		NewPassword: "fresh5678!",
	})
	require.True(t, apperrors.IsInvalidCredentials(err))

	stored, err := repo.GetUserByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.True(t, auth.VerifyPassword("test1234!", stored.PasswordHash))
}

func TestDeleteSelf(t *testing.T) {
	repo := newUserRepoStub()
	svc := user.New(repo, validator.New())
	seeded := seedUser(t, repo, "john", "test1234!")

	err := svc.Delete(context.Background(), model.Identity{Subject: seeded.Username, ID: seeded.ID})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), seeded.ID)
	require.True(t, apperrors.IsNotFound(err))
}
