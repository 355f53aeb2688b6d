package author

import "context"

// Service orchestrates the author lifecycle: validation, slug derivation,
// uniqueness checks, persistence and response assembly.
//
// Business-rule failures (empty name, duplicates, protected author) come
// back as a Result with Status false and a nil error; they never touch
// storage. A non-nil error always means a storage-layer failure and is
// fatal for the operation.
type Service interface {
	// Save creates the author when req.ID is zero and updates it
	// otherwise. Check order is fixed: empty name short-circuits before
	// any storage access, then name uniqueness, then username uniqueness;
	// only then is a row written.
	Save(ctx context.Context, req *SaveAuthorRequest) (*Result, error)

	// Delete removes the author and reassigns its posts to the protected
	// author. Deleting ProtectedAuthorID fails with
	// cannot-delete-main-author and mutates nothing.
	Delete(ctx context.Context, id int64) (*Result, error)

	// List returns the current author listing.
	List(ctx context.Context) ([]Author, error)
}
