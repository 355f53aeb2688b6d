package author

import "context"

// Repository is the sole owner of SQL access to the authors table and the
// author-reference column on posts.
type Repository interface {
	// FindByNameExcept returns candidate duplicates for name, excluding
	// excludeID. The storage-level filter is deliberately broad
	// (case-insensitive match); callers make the final verdict with an
	// exact comparison.
	FindByNameExcept(ctx context.Context, name string, excludeID int64) ([]Author, error)

	// FindUsernamesExcept returns the stored usernames of every author
	// except excludeID.
	FindUsernamesExcept(ctx context.Context, excludeID int64) ([]string, error)

	// Insert appends a new row and returns the storage-assigned id.
	// The password column is always written empty.
	Insert(ctx context.Context, a *Author) (int64, error)

	// Update fully overwrites the mutable fields of an existing row,
	// resetting the password column to empty. Updating a missing id
	// returns ErrAuthorNotFound.
	Update(ctx context.Context, a *Author) error

	// DeleteAndReassign removes the author row and rewrites every post
	// referencing id to reference toID, as a single transaction.
	DeleteAndReassign(ctx context.Context, id, toID int64) error

	// List returns the full current author listing.
	List(ctx context.Context) ([]Author, error)
}
