package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/adapters/transport/http/middleware"
	"github.com/tasklane/tasklane/internal/app/user"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
)

type userHandler struct {
	svc user.Service
}

func (h *userHandler) list(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *userHandler) get(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	u, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, userNotFound(err, id))
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *userHandler) update(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var body dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	u, err := h.svc.Update(c.Request.Context(), id, body)
	if err != nil {
		handleError(c, userNotFound(err, id))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message":        fmt.Sprintf("User with id [%d] updated successfully", id),
		"updated_record": u,
	})
}

// changePassword rotates the caller's own password; the old one must
// still verify.
func (h *userHandler) changePassword(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)

	var body dto.ChangePasswordDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), caller, body); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated successfully"})
}

func (h *userHandler) deleteSelf(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)

	if err := h.svc.Delete(c.Request.Context(), caller); err != nil {
		handleError(c, userNotFound(err, caller.ID))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message": fmt.Sprintf("User with id [%d] deleted successfully", caller.ID),
	})
}

func userNotFound(err error, id int64) error {
	if apperrors.IsNotFound(err) {
		return apperrors.NewNotFound(fmt.Sprintf("User with id [%d] not found", id))
	}
	return err
}
