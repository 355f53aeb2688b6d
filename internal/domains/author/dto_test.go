package author

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveAuthorRequest_Validate(t *testing.T) {
	assert.NoError(t, SaveAuthorRequest{Name: "Bob"}.Validate())

	// Empty name is a business rule, not a transport error.
	assert.NoError(t, SaveAuthorRequest{Name: ""}.Validate())

	long := strings.Repeat("x", MaxNameLength+1)
	assert.Error(t, SaveAuthorRequest{Name: long}.Validate())
	assert.Error(t, SaveAuthorRequest{Name: "Bob", Username: long}.Validate())
	assert.Error(t, SaveAuthorRequest{ID: -1, Name: "Bob"}.Validate())
}

func TestSaveAuthorRequest_ToEntityTrimsName(t *testing.T) {
	req := &SaveAuthorRequest{ID: 2, Name: "  Jane Doe  ", Username: "jane"}

	a := req.ToEntity()
	assert.Equal(t, "Jane Doe", a.Name)
	assert.Equal(t, int64(2), a.ID)
	assert.Equal(t, "jane", a.Username)
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, 201, ToHTTPStatus(MsgAuthorAdded))
	assert.Equal(t, 200, ToHTTPStatus(MsgAuthorUpdated))
	assert.Equal(t, 200, ToHTTPStatus(MsgAuthorDeleted))
	assert.Equal(t, 400, ToHTTPStatus(MsgEmptyName))
	assert.Equal(t, 409, ToHTTPStatus(MsgDuplicateName))
	assert.Equal(t, 409, ToHTTPStatus(MsgDuplicateSlug))
	assert.Equal(t, 403, ToHTTPStatus(MsgProtectedAuthor))
}
