package author

import (
	"errors"
	"net/http"
)

// Result message codes. Business-rule outcomes are reported through these
// fixed codes rather than errors; see Result in dto.go.
const (
	MsgAuthorAdded     = "author-added"
	MsgAuthorUpdated   = "author-updated"
	MsgAuthorDeleted   = "author-deleted"
	MsgEmptyName       = "author-empty-name"
	MsgDuplicateName   = "author-duplicate-name"
	MsgDuplicateSlug   = "author-duplicate-username"
	MsgProtectedAuthor = "cannot-delete-main-author"
)

// Storage-layer errors. These are fatal for the current operation and
// propagate as errors, never as business results.
var (
	// ErrAuthorNotFound is returned when an update targets an id that no
	// longer exists.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrUniqueViolation means a database unique constraint fired, i.e. a
	// concurrent writer won the race after the advisory uniqueness checks
	// passed. Retrying would fail identically, so callers must not.
	ErrUniqueViolation = errors.New("author name or username already taken")
)

// ToHTTPStatus maps a result message code to an HTTP status for the
// delivery layer.
func ToHTTPStatus(code string) int {
	switch code {
	case MsgAuthorAdded:
		return http.StatusCreated
	case MsgAuthorUpdated, MsgAuthorDeleted:
		return http.StatusOK
	case MsgEmptyName:
		return http.StatusBadRequest
	case MsgDuplicateName, MsgDuplicateSlug:
		return http.StatusConflict
	case MsgProtectedAuthor:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
