package service

import (
	"context"
	"fmt"
	"strings"

	"cms-backend/internal/domains/author"
	"cms-backend/internal/domains/post"
	"cms-backend/internal/shared/utils"
)

// authorService implements author.Service. It owns the lifecycle ordering:
// normalize, validate, persist, then rebuild the response listings from the
// collaborators. The listings are always recomputed after a mutation,
// never served from state held here.
type authorService struct {
	repo  author.Repository
	posts post.Reader
}

// NewAuthorService creates the author lifecycle service.
func NewAuthorService(repo author.Repository, posts post.Reader) author.Service {
	return &authorService{
		repo:  repo,
		posts: posts,
	}
}

// Save runs the create/update lifecycle. The check order is load-bearing:
// an empty name fails before any storage access, name uniqueness is checked
// before username uniqueness, and nothing is written until both pass.
func (s *authorService) Save(ctx context.Context, req *author.SaveAuthorRequest) (*author.Result, error) {
	a := req.ToEntity()

	// ToEntity already trims, but the rule must hold even if the entity
	// was mutated between construction and this call.
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return author.Failure(author.MsgEmptyName), nil
	}

	// Usernames are stored normalized. One that is empty, or that slugs
	// to nothing, is derived from the name instead.
	a.Username = utils.Slugify(a.Username)
	if a.Username == "" {
		a.Username = utils.Slugify(a.Name)
	}

	unique, err := s.isNameUnique(ctx, a.Name, a.ID)
	if err != nil {
		return nil, fmt.Errorf("name uniqueness check: %w", err)
	}
	if !unique {
		return author.Failure(author.MsgDuplicateName), nil
	}

	unique, err = s.isUsernameUnique(ctx, a.Username, a.ID)
	if err != nil {
		return nil, fmt.Errorf("username uniqueness check: %w", err)
	}
	if !unique {
		return author.Failure(author.MsgDuplicateSlug), nil
	}

	message := author.MsgAuthorAdded
	if a.ID != 0 {
		if err := s.repo.Update(ctx, a); err != nil {
			return nil, err
		}
		message = author.MsgAuthorUpdated
	} else {
		id, err := s.repo.Insert(ctx, a)
		if err != nil {
			return nil, err
		}
		a.ID = id
	}

	xref, err := s.posts.LoadAuthorsXRef(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load post author references: %w", err)
	}

	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load author listing: %w", err)
	}

	return &author.Result{
		Status:       true,
		Message:      message,
		Authors:      authors,
		PostsAuthors: xref,
	}, nil
}

// Delete removes the author and hands its posts to the protected author.
// The row delete and the reassignment are one transaction in the
// repository, so no post can be left referencing a missing author.
func (s *authorService) Delete(ctx context.Context, id int64) (*author.Result, error) {
	if id == author.ProtectedAuthorID {
		return author.Failure(author.MsgProtectedAuthor), nil
	}

	if err := s.repo.DeleteAndReassign(ctx, id, author.ProtectedAuthorID); err != nil {
		return nil, err
	}

	posts, err := s.posts.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load post listing: %w", err)
	}

	xref, err := s.posts.LoadAuthorsXRef(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load post author references: %w", err)
	}

	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load author listing: %w", err)
	}

	return &author.Result{
		Status:       true,
		Message:      author.MsgAuthorDeleted,
		Authors:      authors,
		Posts:        posts,
		PostsAuthors: xref,
	}, nil
}

// List exposes the current author listing to the delivery layer.
func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.List(ctx)
}
