package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"cms-backend/internal/domains/author"
	"cms-backend/pkg/cache"
	"cms-backend/pkg/database"
)

const (
	authorListCacheKey = "authors:list"
	cacheTTL           = 15 * time.Minute
)

// postgresRepository implements author.Repository. The author listing is
// cached in Redis and invalidated on every write.
type postgresRepository struct {
	db    *sql.DB
	cache cache.Cache
}

// NewPostgresRepository creates the PostgreSQL-backed author repository.
func NewPostgresRepository(db *sql.DB, cache cache.Cache) author.Repository {
	return &postgresRepository{
		db:    db,
		cache: cache,
	}
}

// FindByNameExcept returns every author whose name matches the candidate
// case-insensitively, excluding excludeID. The match is intentionally a
// loose storage-level filter; the uniqueness verdict is an exact comparison
// made by the caller.
func (r *postgresRepository) FindByNameExcept(ctx context.Context, name string, excludeID int64) ([]author.Author, error) {
	query := `
        SELECT id, name, username, config, additional_data
        FROM authors
        WHERE name ILIKE $1 AND id != $2
    `

	rows, err := r.db.QueryContext(ctx, query, name, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors by name: %w", err)
	}
	defer rows.Close()

	return scanAuthors(rows)
}

// FindUsernamesExcept returns the stored usernames of all other authors.
func (r *postgresRepository) FindUsernamesExcept(ctx context.Context, excludeID int64) ([]string, error) {
	query := `SELECT username FROM authors WHERE id != $1`

	rows, err := r.db.QueryContext(ctx, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query usernames: %w", err)
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan username: %w", err)
		}
		usernames = append(usernames, username)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usernames: %w", err)
	}

	return usernames, nil
}

// Insert appends a new author row. The password column is written empty:
// credential management is handled elsewhere and never flows through this
// repository.
func (r *postgresRepository) Insert(ctx context.Context, a *author.Author) (int64, error) {
	query := `
        INSERT INTO authors (name, username, password, config, additional_data)
        VALUES ($1, $2, '', $3, $4)
        RETURNING id
    `

	var id int64
	err := r.db.QueryRowContext(ctx, query, a.Name, a.Username, payloadArg(a.Config), payloadArg(a.AdditionalData)).Scan(&id)
	if err != nil {
		return 0, mapWriteError("failed to insert author", err)
	}

	r.invalidateListCache(ctx)

	return id, nil
}

// Update fully overwrites the mutable fields of an existing row. The
// password column is reset to empty on every update; an update never
// preserves a prior credential.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	query := `
        UPDATE authors
        SET name = $1, username = $2, password = '', config = $3, additional_data = $4
        WHERE id = $5
    `

	result, err := r.db.ExecContext(ctx, query, a.Name, a.Username, payloadArg(a.Config), payloadArg(a.AdditionalData), a.ID)
	if err != nil {
		return mapWriteError("failed to update author", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}
	if affected == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidateListCache(ctx)

	return nil
}

// DeleteAndReassign removes the author row and repoints every post that
// referenced it to toID, inside one transaction so a crash cannot leave
// posts referencing a deleted author.
func (r *postgresRepository) DeleteAndReassign(ctx context.Context, id, toID int64) error {
	err := database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}
		if affected == 0 {
			return author.ErrAuthorNotFound
		}

		// posts.authors stores the author id as text.
		_, err = tx.ExecContext(ctx,
			`UPDATE posts SET authors = $1 WHERE authors = $2`,
			strconv.FormatInt(toID, 10),
			strconv.FormatInt(id, 10),
		)
		if err != nil {
			return fmt.Errorf("failed to reassign posts: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateListCache(ctx)

	return nil
}

// List returns the full author listing, serving from cache when possible.
func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	var cached []author.Author
	if found, err := r.cache.Get(ctx, authorListCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `
        SELECT id, name, username, config, additional_data
        FROM authors
        ORDER BY id
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors, err := scanAuthors(rows)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, authorListCacheKey, authors, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache author listing")
	}

	return authors, nil
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	if err := r.cache.Delete(ctx, authorListCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate author listing cache")
	}
}

func scanAuthors(rows *sql.Rows) ([]author.Author, error) {
	var authors []author.Author
	for rows.Next() {
		var a author.Author
		// Scan through []byte: database/sql cannot scan NULL into a
		// json.RawMessage directly.
		var config, additionalData []byte
		if err := rows.Scan(&a.ID, &a.Name, &a.Username, &config, &additionalData); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		a.Config = config
		a.AdditionalData = additionalData
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// payloadArg binds the opaque JSON payloads as text so the driver maps
// them onto jsonb columns instead of bytea.
func payloadArg(m json.RawMessage) interface{} {
	if len(m) == 0 {
		return nil
	}
	return string(m)
}

// mapWriteError translates a unique-constraint violation into the sentinel
// storage error; anything else is wrapped as-is.
func mapWriteError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s: %w", msg, author.ErrUniqueViolation)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
