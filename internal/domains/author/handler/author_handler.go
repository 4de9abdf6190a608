package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/domains/author/service"
	"bookstore-catalog/internal/shared/outcome"
	"bookstore-catalog/internal/shared/request"
	"bookstore-catalog/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
	log     zerolog.Logger
}

func NewAuthorHandler(svc service.ServiceInterface, log zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
		log:     log,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	response.Write(c, h.service.GetAll(c.Request.Context()), "")
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	response.Write(c, h.service.GetByID(c.Request.Context(), id), "")
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	req, err := request.BindOptionalJSON[model.AuthorCreate](c)
	if err != nil {
		h.log.Warn().Err(err).Msg("invalid author payload")
		response.BadRequest(c, "Invalid request body")
		return
	}

	out := h.service.Create(c.Request.Context(), req)
	response.Write(c, out, createdLocation(c, out))
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	req, err := request.BindOptionalJSON[model.AuthorUpdate](c)
	if err != nil {
		h.log.Warn().Err(err).Int64("id", id).Msg("invalid author payload")
		response.BadRequest(c, "Invalid request body")
		return
	}

	response.Write(c, h.service.Update(c.Request.Context(), id, req), "")
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := request.ParseID(c)
	if !ok {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	response.Write(c, h.service.Delete(c.Request.Context(), id), "")
}

func createdLocation(c *gin.Context, out outcome.Outcome) string {
	created, ok := out.Payload.(*model.AuthorResponse)
	if out.Kind != outcome.KindCreated || !ok {
		return ""
	}
	return response.Location(c, created.ID)
}
