package service

import (
	"context"

	"cms-backend/internal/shared/utils"
)

// The uniqueness checks compare the candidate against every *other* author,
// so an author editing itself never collides with its own row. With no
// other authors both checks are trivially unique.

// isNameUnique reports whether no other author carries the same name.
// The repository filter is a loose case-insensitive match; the verdict is
// an exact comparison against the trimmed candidate.
func (s *authorService) isNameUnique(ctx context.Context, name string, excludeID int64) (bool, error) {
	matches, err := s.repo.FindByNameExcept(ctx, name, excludeID)
	if err != nil {
		return false, err
	}

	for _, m := range matches {
		if m.Name == name {
			return false, nil
		}
	}

	return true, nil
}

// isUsernameUnique reports whether no other author's username normalizes to
// the same slug. Both sides go through the slug generator so legacy rows
// with un-normalized usernames still collide correctly.
func (s *authorService) isUsernameUnique(ctx context.Context, slug string, excludeID int64) (bool, error) {
	usernames, err := s.repo.FindUsernamesExcept(ctx, excludeID)
	if err != nil {
		return false, err
	}

	for _, username := range usernames {
		if utils.Slugify(username) == slug {
			return false, nil
		}
	}

	return true, nil
}
