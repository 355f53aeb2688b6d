package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cms-backend/internal/domains/post"
	"cms-backend/internal/shared/response"
)

type PostHandler struct {
	reader post.Reader
}

func NewPostHandler(reader post.Reader) *PostHandler {
	return &PostHandler{
		reader: reader,
	}
}

// List handles GET /v1/posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.reader.Load(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// AuthorsXRef handles GET /v1/posts/authors. It returns the author-to-posts
// cross-reference, recomputed on every call.
func (h *PostHandler) AuthorsXRef(c *gin.Context) {
	xref, err := h.reader.LoadAuthorsXRef(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, xref)
}
