package post

import "time"

// Post is the read-only view of a post this service needs. The Authors
// column stores the owning author id as text, a legacy of the original
// schema.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Authors   string    `json:"authors" db:"authors"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PostRef is the lightweight reference used in the author cross-reference
// listing.
type PostRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
