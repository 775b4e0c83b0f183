package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/adapters/transport/http/middleware"
	"github.com/tasklane/tasklane/internal/app/todo"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
)

type todoHandler struct {
	svc todo.Service
}

func (h *todoHandler) list(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)

	todos, err := h.svc.List(c.Request.Context(), caller)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *todoHandler) get(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)
	id, ok := pathID(c, "todo_id")
	if !ok {
		return
	}

	t, err := h.svc.Get(c.Request.Context(), caller, id)
	if err != nil {
		handleError(c, todoNotFound(err, id))
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *todoHandler) create(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)

	var body dto.CreateTodoDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	t, err := h.svc.Create(c.Request.Context(), caller, body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":         "Todo created successfully",
		"inserted_record": t,
	})
}

func (h *todoHandler) update(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)
	id, ok := pathID(c, "todo_id")
	if !ok {
		return
	}

	var body dto.UpdateTodoDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	t, err := h.svc.Update(c.Request.Context(), caller, id, body)
	if err != nil {
		handleError(c, todoNotFound(err, id))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message":        fmt.Sprintf("Todo with id [%d] updated successfully", id),
		"updated_record": t,
	})
}

func (h *todoHandler) delete(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)
	id, ok := pathID(c, "todo_id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), caller, id); err != nil {
		handleError(c, todoNotFound(err, id))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message": fmt.Sprintf("Todo with id [%d] deleted successfully", id),
	})
}

func todoNotFound(err error, id int64) error {
	if apperrors.IsNotFound(err) {
		return apperrors.NewNotFound(fmt.Sprintf("Todo with id [%d] not found", id))
	}
	return err
}

// pathID parses a numeric path parameter, answering 400 itself when the
// value is not a number.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		handleError(c, apperrors.NewInvalidArgument(name+" must be an integer"))
		return 0, false
	}
	return id, true
}
