package todo

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
	"github.com/tasklane/tasklane/internal/domain/repo"
)

// Service exposes owner-scoped todo CRUD. Every call takes the resolved
// caller identity; there is no way to reach another user's rows.
type Service interface {
	List(ctx context.Context, caller model.Identity) ([]model.Todo, error)
	Get(ctx context.Context, caller model.Identity, id int64) (model.Todo, error)
	Create(ctx context.Context, caller model.Identity, in dto.CreateTodoDTO) (model.Todo, error)
	Update(ctx context.Context, caller model.Identity, id int64, in dto.UpdateTodoDTO) (model.Todo, error)
	Delete(ctx context.Context, caller model.Identity, id int64) error
}

type service struct {
	todos repo.TodoRepo
	v     *validator.Validate
}

func New(todos repo.TodoRepo, v *validator.Validate) Service {
	return &service{todos: todos, v: v}
}

func (s *service) List(ctx context.Context, caller model.Identity) ([]model.Todo, error) {
	return s.todos.ListByOwner(ctx, caller.ID)
}

func (s *service) Get(ctx context.Context, caller model.Identity, id int64) (model.Todo, error) {
	return s.todos.GetByOwner(ctx, caller.ID, id)
}

func (s *service) Create(ctx context.Context, caller model.Identity, in dto.CreateTodoDTO) (model.Todo, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Todo{}, apperrors.NewInvalidArgument(err.Error())
	}
	if in.Priority == 0 {
		in.Priority = 1
	}

	t := model.Todo{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Complete:    in.Complete,
		OwnerID:     caller.ID,
	}
	id, err := s.todos.Create(ctx, t)
	if err != nil {
		return model.Todo{}, err
	}
	t.ID = id
	return t, nil
}

func (s *service) Update(ctx context.Context, caller model.Identity, id int64, in dto.UpdateTodoDTO) (model.Todo, error) {
	if err := s.v.Struct(in); err != nil {
		return model.Todo{}, apperrors.NewInvalidArgument(err.Error())
	}

	t, err := s.todos.GetByOwner(ctx, caller.ID, id)
	if err != nil {
		return model.Todo{}, err
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Complete != nil {
		t.Complete = *in.Complete
	}
	if err := s.todos.Update(ctx, t); err != nil {
		return model.Todo{}, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, caller model.Identity, id int64) error {
	return s.todos.Delete(ctx, caller.ID, id)
}
