package post

import "context"

// Reader exposes the post listings consumed by the author lifecycle when it
// builds response payloads. It is read-only: post mutation is out of scope
// for this service, except for the author-reassignment performed by the
// author repository on delete.
type Reader interface {
	// Load returns the full current post listing.
	Load(ctx context.Context) ([]Post, error)

	// LoadAuthorsXRef returns a mapping from author id to the posts
	// currently attributed to that author. The mapping is recomputed from
	// the posts table on every call rather than stored redundantly.
	LoadAuthorsXRef(ctx context.Context) (map[int64][]PostRef, error)
}
