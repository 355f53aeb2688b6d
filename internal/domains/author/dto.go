package author

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cms-backend/internal/domains/post"
)

const (
	MaxNameLength     = 255
	MaxUsernameLength = 255
)

// SaveAuthorRequest carries the raw author data for a create or update.
// ID zero means create; non-zero means update of that row. Name emptiness
// is a business rule handled by the service (it must produce the
// author-empty-name result, not a transport-level rejection), so Validate
// only guards sizes and shape.
type SaveAuthorRequest struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Username       string          `json:"username"`
	Config         json.RawMessage `json:"config,omitempty"`
	AdditionalData json.RawMessage `json:"additional_data,omitempty"`
}

func (r SaveAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Min(0)),
		validation.Field(&r.Name,
			validation.Length(0, MaxNameLength).Error("name must be at most 255 characters"),
		),
		validation.Field(&r.Username,
			validation.Length(0, MaxUsernameLength).Error("username must be at most 255 characters"),
		),
	)
}

// ToEntity builds the Author entity from the request, trimming the name
// once at construction time.
func (r *SaveAuthorRequest) ToEntity() *Author {
	return &Author{
		ID:             r.ID,
		Name:           strings.TrimSpace(r.Name),
		Username:       r.Username,
		Config:         r.Config,
		AdditionalData: r.AdditionalData,
	}
}

// Result is the outcome of a lifecycle operation, consumed by the delivery
// layer. Status false carries only the message code; the listing fields are
// populated on success, freshly recomputed from storage.
type Result struct {
	Status       bool                     `json:"status"`
	Message      string                   `json:"message"`
	Authors      []Author                 `json:"authors,omitempty"`
	Posts        []post.Post              `json:"posts,omitempty"`
	PostsAuthors map[int64][]post.PostRef `json:"postsAuthors,omitempty"`
}

// Failure builds the Status-false result for a business-rule code.
func Failure(code string) *Result {
	return &Result{Status: false, Message: code}
}
