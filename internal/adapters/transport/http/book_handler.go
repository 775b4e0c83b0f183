package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tasklane/tasklane/internal/adapters/transport/http/dto"
	"github.com/tasklane/tasklane/internal/app/book"
	"github.com/tasklane/tasklane/internal/domain/apperrors"
)

type bookHandler struct {
	svc book.Service
}

// bookNoRating mirrors the catalog record without its rating field.
type bookNoRating struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
}

func (h *bookHandler) list(c *gin.Context) {
	if h.stillProcessing(c) {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(c, apperrors.NewInvalidArgument("limit must be an integer"))
			return
		}
		limit = n
	}

	books, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (h *bookHandler) get(c *gin.Context) {
	if h.stillProcessing(c) {
		return
	}
	id, ok := bookID(c)
	if !ok {
		return
	}

	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, bookNotFound(err, id))
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *bookHandler) getNoRating(c *gin.Context) {
	if h.stillProcessing(c) {
		return
	}
	id, ok := bookID(c)
	if !ok {
		return
	}

	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, bookNotFound(err, id))
		return
	}
	c.JSON(http.StatusOK, bookNoRating{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
	})
}

func (h *bookHandler) create(c *gin.Context) {
	var body dto.BookDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	b, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *bookHandler) update(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var body dto.BookDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handleError(c, apperrors.NewInvalidArgument(err.Error()))
		return
	}

	b, err := h.svc.Update(c.Request.Context(), id, body)
	if err != nil {
		handleError(c, bookNotFound(err, id))
		return
	}
	c.JSON(http.StatusAccepted, b)
}

func (h *bookHandler) delete(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, bookNotFound(err, id))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"message": fmt.Sprintf("Book with id [%s] deleted successfully", id),
	})
}

// stillProcessing answers for the catalog while an import is replacing it.
func (h *bookHandler) stillProcessing(c *gin.Context) bool {
	if h.svc.Importing() {
		c.JSON(http.StatusOK, gin.H{"wait": "No books found yet. Still processing"})
		return true
	}
	return false
}

func bookID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		handleError(c, apperrors.NewInvalidArgument("book_id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func bookNotFound(err error, id uuid.UUID) error {
	if apperrors.IsNotFound(err) {
		return apperrors.NewNotFound(fmt.Sprintf("Book with id [%s] not found", id))
	}
	return err
}
