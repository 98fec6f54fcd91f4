package comment

import (
	"testing"

	"social-feed/internal/like"
	"social-feed/internal/shared/apperr"
	"social-feed/internal/shared/db"
	"social-feed/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPosts struct{ existing map[uint64]bool }

func (s stubPosts) Exists(id uint64) (bool, error) { return s.existing[id], nil }

func newTestService(t *testing.T) (Service, like.Repository, *db.Store) {
	t.Helper()
	store, err := db.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, store.DB.AutoMigrate(&user.User{}, &Comment{}, &like.Like{}))

	likeRepo := like.NewRepository(store)
	posts := stubPosts{existing: map[uint64]bool{1: true, 2: true}}
	svc := NewService(NewRepository(store), posts, likeRepo, nil)
	return svc, likeRepo, store
}

func TestCreateCommentRequiresActor(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(0, 1, CreateReq{Content: "hi"})

	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestCreateCommentUnknownPost(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(1, 99, CreateReq{Content: "hi"})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(1, 1, CreateReq{Content: "   "})

	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestCreateCommentUnknownParent(t *testing.T) {
	svc, _, _ := newTestService(t)

	parent := uint64(404)
	_, err := svc.Create(1, 1, CreateReq{Content: "hi", ParentID: &parent})

	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestCreateCommentParentOnAnotherPost(t *testing.T) {
	svc, _, _ := newTestService(t)

	onPost2, err := svc.Create(1, 2, CreateReq{Content: "root on post 2"})
	require.NoError(t, err)

	_, err = svc.Create(1, 1, CreateReq{Content: "reply", ParentID: &onPost2.ID})

	assert.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestCreateCommentThreaded(t *testing.T) {
	svc, _, _ := newTestService(t)

	root, err := svc.Create(1, 1, CreateReq{Content: "root"})
	require.NoError(t, err)
	reply, err := svc.Create(2, 1, CreateReq{Content: "reply", ParentID: &root.ID})
	require.NoError(t, err)

	assert.Equal(t, root.ID, *reply.ParentID)
	assert.Equal(t, uint64(1), reply.PostID)
}

func TestTreeByPostAnnotations(t *testing.T) {
	svc, likeRepo, _ := newTestService(t)

	c1, err := svc.Create(1, 1, CreateReq{Content: "c1"})
	require.NoError(t, err)
	_, err = svc.Create(2, 1, CreateReq{Content: "c2", ParentID: &c1.ID})
	require.NoError(t, err)
	c3, err := svc.Create(3, 1, CreateReq{Content: "c3"})
	require.NoError(t, err)

	// Two likes on c1, one on c3; viewer 2 liked c1 only.
	_, err = likeRepo.Toggle(2, like.CommentTarget(c1.ID))
	require.NoError(t, err)
	_, err = likeRepo.Toggle(3, like.CommentTarget(c1.ID))
	require.NoError(t, err)
	_, err = likeRepo.Toggle(2, like.CommentTarget(c3.ID))
	require.NoError(t, err)

	tree, total, err := svc.TreeByPost(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, tree, 2)

	assert.Equal(t, c1.ID, tree[0].ID)
	assert.Equal(t, int64(2), tree[0].LikesCount)
	assert.True(t, tree[0].IsLiked)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, int64(0), tree[0].Replies[0].LikesCount)
	assert.False(t, tree[0].Replies[0].IsLiked)

	assert.Equal(t, c3.ID, tree[1].ID)
	assert.Equal(t, int64(1), tree[1].LikesCount)
	assert.True(t, tree[1].IsLiked)

	// Anonymous viewer never sees IsLiked.
	tree, _, err = svc.TreeByPost(1, 0)
	require.NoError(t, err)
	assert.False(t, tree[0].IsLiked)
}

func TestTreeByPostEmpty(t *testing.T) {
	svc, _, _ := newTestService(t)

	tree, total, err := svc.TreeByPost(1, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, tree)
}
