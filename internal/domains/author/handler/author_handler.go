package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/domains/author"
	"cms-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// Save handles POST /v1/authors. The body carries the raw author data;
// id 0 creates, non-zero updates. The service's result envelope is returned
// verbatim, with the HTTP status derived from its message code, so IPC and
// HTTP consumers see the same shape.
func (h *AuthorHandler) Save(c *gin.Context) {
	var req author.SaveAuthorRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(author.ToHTTPStatus(result.Message), result)
}

// Delete handles DELETE /v1/authors/:id.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid author id")
		return
	}

	result, svcErr := h.service.Delete(c.Request.Context(), id)
	if svcErr != nil {
		if errors.Is(svcErr, author.ErrAuthorNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", svcErr.Error())
			return
		}
		response.InternalServerError(c, svcErr.Error())
		return
	}

	c.JSON(author.ToHTTPStatus(result.Message), result)
}

// List handles GET /v1/authors.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, authors)
}
