package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-backend/internal/domains/author"
	"cms-backend/internal/domains/post"
)

// memPosts is an in-memory post store shared with memRepo so a delete's
// reassignment is visible through the reader, like the real tables.
type memPosts struct {
	posts   []post.Post
	loadErr error
	xrefErr error
}

func (m *memPosts) Load(_ context.Context) ([]post.Post, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.posts, nil
}

func (m *memPosts) LoadAuthorsXRef(_ context.Context) (map[int64][]post.PostRef, error) {
	if m.xrefErr != nil {
		return nil, m.xrefErr
	}
	xref := make(map[int64][]post.PostRef)
	for _, p := range m.posts {
		id, err := strconv.ParseInt(p.Authors, 10, 64)
		if err != nil {
			continue
		}
		xref[id] = append(xref[id], post.PostRef{ID: p.ID, Title: p.Title})
	}
	return xref, nil
}

// memRepo is an in-memory author.Repository recording which operations ran.
type memRepo struct {
	authors []author.Author
	posts   *memPosts
	nextID  int64
	calls   []string

	insertErr error
	updateErr error
	listErr   error
}

func (m *memRepo) FindByNameExcept(_ context.Context, name string, excludeID int64) ([]author.Author, error) {
	m.calls = append(m.calls, "FindByNameExcept")
	var matches []author.Author
	for _, a := range m.authors {
		if a.ID != excludeID && strings.EqualFold(a.Name, name) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

func (m *memRepo) FindUsernamesExcept(_ context.Context, excludeID int64) ([]string, error) {
	m.calls = append(m.calls, "FindUsernamesExcept")
	var usernames []string
	for _, a := range m.authors {
		if a.ID != excludeID {
			usernames = append(usernames, a.Username)
		}
	}
	return usernames, nil
}

func (m *memRepo) Insert(_ context.Context, a *author.Author) (int64, error) {
	m.calls = append(m.calls, "Insert")
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.nextID++
	stored := *a
	stored.ID = m.nextID
	m.authors = append(m.authors, stored)
	return stored.ID, nil
}

func (m *memRepo) Update(_ context.Context, a *author.Author) error {
	m.calls = append(m.calls, "Update")
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.authors {
		if m.authors[i].ID == a.ID {
			m.authors[i] = *a
			return nil
		}
	}
	return author.ErrAuthorNotFound
}

func (m *memRepo) DeleteAndReassign(_ context.Context, id, toID int64) error {
	m.calls = append(m.calls, "DeleteAndReassign")
	found := false
	for i := range m.authors {
		if m.authors[i].ID == id {
			m.authors = append(m.authors[:i], m.authors[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return author.ErrAuthorNotFound
	}
	from := strconv.FormatInt(id, 10)
	to := strconv.FormatInt(toID, 10)
	for i := range m.posts.posts {
		if m.posts.posts[i].Authors == from {
			m.posts.posts[i].Authors = to
		}
	}
	return nil
}

func (m *memRepo) List(_ context.Context) ([]author.Author, error) {
	m.calls = append(m.calls, "List")
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]author.Author(nil), m.authors...), nil
}

func newTestService(authors ...author.Author) (*authorService, *memRepo, *memPosts) {
	posts := &memPosts{}
	repo := &memRepo{authors: authors, posts: posts}
	for _, a := range authors {
		if a.ID > repo.nextID {
			repo.nextID = a.ID
		}
	}
	return &authorService{repo: repo, posts: posts}, repo, posts
}

func TestSave_WhitespaceNameFailsBeforeStorage(t *testing.T) {
	svc, repo, _ := newTestService()

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{Name: "  "})
	require.NoError(t, err)

	assert.False(t, result.Status)
	assert.Equal(t, author.MsgEmptyName, result.Message)
	assert.Empty(t, repo.calls, "empty name must short-circuit before any storage access")
	assert.Empty(t, repo.authors)
}

func TestSave_DuplicateName(t *testing.T) {
	svc, repo, _ := newTestService(author.Author{ID: 1, Name: "Jane", Username: "jane"})

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{Name: "Jane"})
	require.NoError(t, err)

	assert.False(t, result.Status)
	assert.Equal(t, author.MsgDuplicateName, result.Message)
	assert.Len(t, repo.authors, 1, "row count must be unchanged")
	assert.NotContains(t, repo.calls, "FindUsernamesExcept",
		"name uniqueness must be checked before username uniqueness")
	assert.NotContains(t, repo.calls, "Insert")
}

func TestSave_DerivedUsernameCollides(t *testing.T) {
	svc, repo, _ := newTestService(author.Author{ID: 1, Name: "Someone Else", Username: "jane-doe"})

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{Name: "Jane Doe", Username: ""})
	require.NoError(t, err)

	assert.False(t, result.Status)
	assert.Equal(t, author.MsgDuplicateSlug, result.Message)
	assert.NotContains(t, repo.calls, "Insert")
}

func TestSave_CreateDerivesUsername(t *testing.T) {
	svc, repo, posts := newTestService()
	posts.posts = []post.Post{{ID: 1, Title: "Hello", Authors: "1"}}

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{ID: 0, Name: "Bob", Username: ""})
	require.NoError(t, err)

	assert.True(t, result.Status)
	assert.Equal(t, author.MsgAuthorAdded, result.Message)

	require.Len(t, repo.authors, 1)
	assert.Equal(t, "bob", repo.authors[0].Username)

	require.Len(t, result.Authors, 1)
	assert.Equal(t, "Bob", result.Authors[0].Name)
	assert.Contains(t, result.PostsAuthors, int64(1))
}

func TestSave_UpdateOverwrites(t *testing.T) {
	svc, repo, _ := newTestService(
		author.Author{ID: 1, Name: "Main", Username: "main"},
		author.Author{ID: 2, Name: "Bob", Username: "bob"},
	)

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{ID: 2, Name: "Bob Updated"})
	require.NoError(t, err)

	assert.True(t, result.Status)
	assert.Equal(t, author.MsgAuthorUpdated, result.Message)
	assert.Equal(t, "Bob Updated", repo.authors[1].Name)
	assert.Equal(t, "bob-updated", repo.authors[1].Username)
}

func TestSave_UpdateKeepingOwnNameAndUsername(t *testing.T) {
	svc, _, _ := newTestService(
		author.Author{ID: 1, Name: "Main", Username: "main"},
		author.Author{ID: 2, Name: "Bob", Username: "bob"},
	)

	// An author must never collide with its own row.
	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{ID: 2, Name: "Bob", Username: "bob"})
	require.NoError(t, err)
	assert.True(t, result.Status)
	assert.Equal(t, author.MsgAuthorUpdated, result.Message)
}

func TestSave_UpdateIsIdempotent(t *testing.T) {
	svc, repo, _ := newTestService(author.Author{ID: 2, Name: "Bob", Username: "bob"})

	req := &author.SaveAuthorRequest{ID: 2, Name: "Bob", Username: "bob"}

	_, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	first := append([]author.Author(nil), repo.authors...)

	_, err = svc.Save(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, repo.authors, "saving identical data twice must produce identical stored state")
}

func TestSave_TrimsNameBeforeStoring(t *testing.T) {
	svc, repo, _ := newTestService()

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{Name: "  Bob  "})
	require.NoError(t, err)

	assert.True(t, result.Status)
	assert.Equal(t, "Bob", repo.authors[0].Name)
}

func TestSave_StorageFailureIsFatal(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.insertErr = errors.New("connection lost")

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{Name: "Bob"})
	assert.Nil(t, result, "storage failures must not produce a business result")
	assert.ErrorContains(t, err, "connection lost")
}

func TestDelete_ProtectedAuthor(t *testing.T) {
	svc, repo, _ := newTestService(author.Author{ID: 1, Name: "Main", Username: "main"})

	result, err := svc.Delete(context.Background(), author.ProtectedAuthorID)
	require.NoError(t, err)

	assert.False(t, result.Status)
	assert.Equal(t, author.MsgProtectedAuthor, result.Message)
	assert.Empty(t, repo.calls, "protected author delete must not touch storage")
	assert.Len(t, repo.authors, 1)
}

func TestDelete_ReassignsPostsToProtectedAuthor(t *testing.T) {
	svc, repo, posts := newTestService(
		author.Author{ID: 1, Name: "Main", Username: "main"},
		author.Author{ID: 2, Name: "Bob", Username: "bob"},
	)
	posts.posts = []post.Post{
		{ID: 10, Title: "p1", Authors: "2"},
		{ID: 11, Title: "p2", Authors: "2"},
		{ID: 12, Title: "p3", Authors: "1"},
	}

	result, err := svc.Delete(context.Background(), 2)
	require.NoError(t, err)

	assert.True(t, result.Status)
	assert.Equal(t, author.MsgAuthorDeleted, result.Message)

	// Every post previously owned by author 2 now resolves to author 1.
	assert.Len(t, result.PostsAuthors[author.ProtectedAuthorID], 3)
	assert.NotContains(t, result.PostsAuthors, int64(2))
	for _, p := range result.Posts {
		assert.NotEqual(t, "2", p.Authors)
	}

	require.Len(t, result.Authors, 1)
	assert.Equal(t, int64(1), result.Authors[0].ID)
	assert.Len(t, repo.authors, 1)
}

func TestDelete_MissingAuthorPropagates(t *testing.T) {
	svc, _, _ := newTestService(author.Author{ID: 1, Name: "Main", Username: "main"})

	result, err := svc.Delete(context.Background(), 42)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestSave_ListingFailureAfterWrite(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.listErr = errors.New("connection lost")

	result, err := svc.Save(context.Background(), &author.SaveAuthorRequest{Name: "Bob"})
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to load author listing")
}
