package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/adapters/transport/http/middleware"
	"github.com/tasklane/tasklane/internal/app/auth"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
)

type authHandler struct {
	svc auth.Service
}

// login implements POST /auth/token: form-encoded credentials in, bearer
// token out. Bad credentials are always the same 401, regardless of
// whether the username exists.
func (h *authHandler) login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	res, err := h.svc.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      res.Token,
		"token_type": res.TokenType,
		"expires_in": int(res.ExpiresIn.Seconds()),
	})
}

func (h *authHandler) register(c *gin.Context) {
	var body dto.CreateUserDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	user, err := h.svc.Register(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *authHandler) logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
