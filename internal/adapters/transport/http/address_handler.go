package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/adapters/transport/http/middleware"
	"github.com/tasklane/tasklane/internal/app/address"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
)

type addressHandler struct {
	svc address.Service
}

func (h *addressHandler) create(c *gin.Context) {
	caller, _ := middleware.CurrentIdentity(c)

	var body dto.CreateAddressDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	a, err := h.svc.Create(c.Request.Context(), caller, body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":         fmt.Sprintf("Address created successfully for user: [%s]", caller.Subject),
		"inserted_record": a,
	})
}
