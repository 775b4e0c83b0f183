package todo_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/app/todo"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
	"github.com/tasklane/tasklane/internal/domain/model"
)

type todoRepoStub struct {
	byID   map[int64]model.Todo
	nextID int64
}

func newTodoRepoStub() *todoRepoStub {
	return &todoRepoStub{byID: make(map[int64]model.Todo), nextID: 1}
}

func (r *todoRepoStub) ListByOwner(_ context.Context, ownerID int64) ([]model.Todo, error) {
	var out []model.Todo
	for _, t := range r.byID {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *todoRepoStub) GetByOwner(_ context.Context, ownerID, id int64) (model.Todo, error) {
	t, ok := r.byID[id]
	if !ok || t.OwnerID != ownerID {
		return model.Todo{}, apperrors.ErrNotFound
	}
	return t, nil
}

func (r *todoRepoStub) Create(_ context.Context, t model.Todo) (int64, error) {
	t.ID = r.nextID
	r.nextID++
	r.byID[t.ID] = t
	return t.ID, nil
}

func (r *todoRepoStub) Update(_ context.Context, t model.Todo) error {
	if _, ok := r.byID[t.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *todoRepoStub) Delete(_ context.Context, ownerID, id int64) error {
	t, ok := r.byID[id]
	if !ok || t.OwnerID != ownerID {
		return apperrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

var (
	alice = model.Identity{Subject: "alice", ID: 1}
	bob   = model.Identity{Subject: "bob", ID: 2}
)

func newService(t *testing.T) (todo.Service, *todoRepoStub) {
	t.Helper()
	repo := newTodoRepoStub()
	return todo.New(repo, validator.New()), repo
}

func TestCreateDefaultsPriority(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), alice, dto.CreateTodoDTO{
		Title:       "groceries",
		Description: "milk and eggs",
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.Priority)
	require.Equal(t, alice.ID, created.OwnerID)
	require.False(t, created.Complete)
}

func TestCreateRejectsInvalid(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), alice, dto.CreateTodoDTO{Title: "no description"})
	require.Error(t, err)
	require.True(t, apperrors.IsInvalidArgument(err))

	_, err = svc.Create(context.Background(), alice, dto.CreateTodoDTO{
		Title:       "bad priority",
		Description: "x",
		Priority:    6,
	})
	require.True(t, apperrors.IsInvalidArgument(err))
}

func TestOwnerScoping(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), alice, dto.CreateTodoDTO{
		Title:       "private",
		Description: "only alice",
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), bob, created.ID)
	require.True(t, apperrors.IsNotFound(err))

	err = svc.Delete(context.Background(), bob, created.ID)
	require.True(t, apperrors.IsNotFound(err))

	got, err := svc.Get(context.Background(), alice, created.ID)
	require.NoError(t, err)
	require.Equal(t, "private", got.Title)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), alice, dto.CreateTodoDTO{
		Title:       "draft",
		Description: "first pass",
		Priority:    2,
	})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(context.Background(), alice, created.ID, dto.UpdateTodoDTO{Complete: &done})
	require.NoError(t, err)
	require.True(t, updated.Complete)
	require.Equal(t, "draft", updated.Title)
	require.Equal(t, 2, updated.Priority)
}

func TestUpdateMissingTodo(t *testing.T) {
	svc, _ := newService(t)

	title := "nope"
	_, err := svc.Update(context.Background(), alice, 99, dto.UpdateTodoDTO{Title: &title})
	require.True(t, apperrors.IsNotFound(err))
}

func TestListOnlyOwnRows(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), alice, dto.CreateTodoDTO{Title: "a", Description: "a"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, dto.CreateTodoDTO{Title: "b", Description: "b"})
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "a", mine[0].Title)
}
