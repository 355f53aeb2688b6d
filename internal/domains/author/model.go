package author

import "encoding/json"

// ProtectedAuthorID is the primary author. It can never be deleted and is
// the fallback owner for posts whose author is removed.
const ProtectedAuthorID int64 = 1

// Author represents the core Author entity.
// This is the domain model, independent of database/API concerns.
type Author struct {
	// Identity - assigned by storage on insert. Zero means "not yet
	// persisted" and routes Save to the create path.
	ID int64 `json:"id" db:"id"`

	// Display name. Trimmed at construction; unique case-insensitively
	// among all authors.
	Name string `json:"name" db:"name"`

	// URL-safe identifier derived from Name when not supplied.
	// Unique (after slug normalization) among all authors.
	Username string `json:"username" db:"username"`

	// Opaque structured payloads. Persisted and returned verbatim,
	// never validated or interpreted here.
	Config         json.RawMessage `json:"config" db:"config"`
	AdditionalData json.RawMessage `json:"additional_data" db:"additional_data"`
}
