package auth

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
	"github.com/tasklane/tasklane/internal/domain/repo"
)

// dummyHash keeps the unknown-user path doing the same amount of work as a
// real password check, so response timing does not reveal whether a
// username exists.
var dummyHash, _ = HashPassword(uuid.NewString())

type Service interface {
	Authenticate(ctx context.Context, username, password string) (model.TokenResult, error)
	Register(ctx context.Context, in dto.CreateUserDTO) (model.User, error)
	Resolve(ctx context.Context, raw string) (model.Identity, error)
	Logout(ctx context.Context, raw string) error
}

type service struct {
	users   repo.UserRepo
	revoked repo.TokenRepo // nil runs the service stateless, without revocation
	tokens  *Tokens
	v       *validator.Validate
}

func New(users repo.UserRepo, revoked repo.TokenRepo, tokens *Tokens, v *validator.Validate) Service {
	return &service{users: users, revoked: revoked, tokens: tokens, v: v}
}

// Authenticate runs the login state machine: credential lookup, password
// check, token issuance. Unknown user and wrong password are
// indistinguishable to the caller.
func (s *service) Authenticate(ctx context.Context, username, password string) (model.TokenResult, error) {
	if username == "" || password == "" {
		return model.TokenResult{}, apperrors.NewInvalidArgument("username and password are required")
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		VerifyPassword(password, dummyHash)
		return model.TokenResult{}, apperrors.ErrInvalidCredentials
	case err != nil:
		return model.TokenResult{}, apperrors.WrapInternal(err, "Authenticate")
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return model.TokenResult{}, apperrors.ErrInvalidCredentials
	}

	token, _, _, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return model.TokenResult{}, err
	}
	return model.TokenResult{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.tokens.defaultTTL,
	}, nil
}

func (s *service) Register(ctx context.Context, in dto.CreateUserDTO) (model.User, error) {
	if err := s.v.Struct(in); err != nil {
		return model.User{}, apperrors.NewInvalidArgument(err.Error())
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return model.User{}, err
	}

	user := model.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		IsActive:     true,
		PhoneNumber:  in.PhoneNumber,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return model.User{}, apperrors.ErrAlreadyExists
		}
		return model.User{}, apperrors.WrapInternal(err, "Register")
	}
	user.ID = id
	return user, nil
}

// Resolve turns a presented bearer token into a verified Identity, checking
// the revocation list when one is configured. It holds no mutable state and
// is safe for concurrent in-flight requests.
func (s *service) Resolve(ctx context.Context, raw string) (model.Identity, error) {
	claims, err := s.tokens.parse(raw)
	if err != nil {
		return model.Identity{}, err
	}
	if claims.Subject == "" || claims.UserID == 0 {
		return model.Identity{}, apperrors.ErrIncompleteIdentity
	}
	if s.revoked != nil {
		revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return model.Identity{}, apperrors.WrapInternal(err, "Resolve")
		}
		if revoked {
			return model.Identity{}, apperrors.ErrInvalidToken
		}
	}
	return model.Identity{Subject: claims.Subject, ID: claims.UserID}, nil
}

// Logout revokes the presented token until its natural expiry. Without a
// revocation list the call is a no-op and the token stays valid until exp.
func (s *service) Logout(ctx context.Context, raw string) error {
	claims, err := s.tokens.parse(raw)
	if err != nil {
		return err
	}
	if s.revoked == nil {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}
