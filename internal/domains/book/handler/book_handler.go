package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/service"
	"bookstore-catalog/internal/shared/outcome"
	"bookstore-catalog/internal/shared/request"
	"bookstore-catalog/internal/shared/response"
)

type BookHandler struct {
	service service.ServiceInterface
	log     zerolog.Logger
}

func NewBookHandler(svc service.ServiceInterface, log zerolog.Logger) *BookHandler {
	return &BookHandler{
		service: svc,
		log:     log,
	}
}

// ListBooks godoc
// GET /v1/books
func (h *BookHandler) ListBooks(c *gin.Context) {
	response.Write(c, h.service.GetAll(c.Request.Context()), "")
}

// GetBookDetail godoc
// GET /v1/books/:id
func (h *BookHandler) GetBookDetail(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	response.Write(c, h.service.GetByID(c.Request.Context(), id), "")
}

// CreateBook godoc
// POST /v1/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	req, err := request.BindOptionalJSON[model.BookCreate](c)
	if err != nil {
		h.log.Warn().Err(err).Msg("invalid book payload")
		response.BadRequest(c, "Invalid request body")
		return
	}

	out := h.service.Create(c.Request.Context(), req)
	response.Write(c, out, createdLocation(c, out))
}

// UpdateBook godoc
// PUT /v1/books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	req, err := request.BindOptionalJSON[model.BookUpdate](c)
	if err != nil {
		h.log.Warn().Err(err).Int64("id", id).Msg("invalid book payload")
		response.BadRequest(c, "Invalid request body")
		return
	}

	response.Write(c, h.service.Update(c.Request.Context(), id, req), "")
}

// DeleteBook godoc
// DELETE /v1/books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	response.Write(c, h.service.Delete(c.Request.Context(), id), "")
}

func createdLocation(c *gin.Context, out outcome.Outcome) string {
	created, ok := out.Payload.(*model.BookResponse)
	if out.Kind != outcome.KindCreated || !ok {
		return ""
	}
	return response.Location(c, created.ID)
}
