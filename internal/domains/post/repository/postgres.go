package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"cms-backend/internal/domains/post"
)

// postgresReader implements post.Reader against the posts table.
type postgresReader struct {
	db *sql.DB
}

// NewPostgresReader creates the PostgreSQL-backed post reader.
func NewPostgresReader(db *sql.DB) post.Reader {
	return &postgresReader{db: db}
}

// Load returns every post, newest first.
func (r *postgresReader) Load(ctx context.Context) ([]post.Post, error) {
	query := `
        SELECT id, title, authors, status, created_at
        FROM posts
        ORDER BY created_at DESC, id DESC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Authors, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// LoadAuthorsXRef groups post references by the author id stored in the
// posts.authors column. Rows whose reference does not parse as an id are
// skipped rather than failing the whole listing.
func (r *postgresReader) LoadAuthorsXRef(ctx context.Context) (map[int64][]post.PostRef, error) {
	query := `
        SELECT id, title, authors
        FROM posts
        ORDER BY id
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query post author references: %w", err)
	}
	defer rows.Close()

	xref := make(map[int64][]post.PostRef)
	for rows.Next() {
		var (
			ref     post.PostRef
			authors string
		)
		if err := rows.Scan(&ref.ID, &ref.Title, &authors); err != nil {
			return nil, fmt.Errorf("failed to scan post reference: %w", err)
		}

		authorID, err := strconv.ParseInt(authors, 10, 64)
		if err != nil {
			continue
		}
		xref[authorID] = append(xref[authorID], ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post references: %w", err)
	}

	return xref, nil
}
