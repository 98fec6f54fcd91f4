package karma

import (
	"fmt"
	"testing"

	"social-feed/internal/comment"
	"social-feed/internal/like"
	"social-feed/internal/post"
	"social-feed/internal/shared/db"
	"social-feed/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *db.Store
	repo  Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := db.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, store.DB.AutoMigrate(
		&user.User{}, &post.Post{}, &comment.Comment{}, &like.Like{},
	))
	return &fixture{store: store, repo: NewRepository(store)}
}

func (f *fixture) addUser(t *testing.T, name string) uint64 {
	u := &user.User{Username: name}
	require.NoError(t, f.store.DB.Create(u).Error)
	return u.ID
}

func (f *fixture) addPost(t *testing.T, author uint64) uint64 {
	p := &post.Post{AuthorID: author, Content: "p"}
	require.NoError(t, f.store.DB.Create(p).Error)
	return p.ID
}

func (f *fixture) addComment(t *testing.T, author, postID uint64) uint64 {
	c := &comment.Comment{AuthorID: author, PostID: postID, Content: "c"}
	require.NoError(t, f.store.DB.Create(c).Error)
	return c.ID
}

func (f *fixture) likePost(t *testing.T, by, postID uint64) {
	require.NoError(t, f.store.DB.Create(&like.Like{UserID: by, PostID: &postID}).Error)
}

func (f *fixture) likeComment(t *testing.T, by, commentID uint64) {
	require.NoError(t, f.store.DB.Create(&like.Like{UserID: by, CommentID: &commentID}).Error)
}

func TestKarmaWeights(t *testing.T) {
	f := newFixture(t)

	alice := f.addUser(t, "alice")
	p := f.addPost(t, alice)
	c := f.addComment(t, alice, p)

	// 2 post-likes and 3 comment-likes => 2*5 + 3*1 = 13.
	for by := uint64(10); by < 12; by++ {
		f.likePost(t, by, p)
	}
	for by := uint64(10); by < 13; by++ {
		f.likeComment(t, by, c)
	}

	rows, err := f.repo.TopUsers(5)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, int64(2), rows[0].PostLikes)
	assert.Equal(t, int64(3), rows[0].CommentLikes)
	assert.Equal(t, int64(13), rows[0].Karma)
}

func TestKarmaNoDoubleCountingAcrossJoinPaths(t *testing.T) {
	f := newFixture(t)

	// A user with several posts and several comments: every like row must
	// count once even though the joins multiply the row set.
	bob := f.addUser(t, "bob")
	p1 := f.addPost(t, bob)
	p2 := f.addPost(t, bob)
	c1 := f.addComment(t, bob, p1)
	c2 := f.addComment(t, bob, p2)

	f.likePost(t, 10, p1)
	f.likePost(t, 10, p2)
	f.likeComment(t, 10, c1)
	f.likeComment(t, 10, c2)

	rows, err := f.repo.TopUsers(5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].PostLikes)
	assert.Equal(t, int64(2), rows[0].CommentLikes)
	assert.Equal(t, int64(12), rows[0].Karma)
}

func TestLeaderboardCapAndOrder(t *testing.T) {
	f := newFixture(t)

	// Seven users with increasing post-like counts.
	for i := 0; i < 7; i++ {
		uid := f.addUser(t, fmt.Sprintf("user%02d", i))
		p := f.addPost(t, uid)
		for by := uint64(0); by < uint64(i); by++ {
			f.likePost(t, 100+by, p)
		}
	}

	rows, err := f.repo.TopUsers(5)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "user06", rows[0].Username)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Karma, rows[i].Karma)
	}
}

func TestLeaderboardTieBreakByUsername(t *testing.T) {
	f := newFixture(t)

	// Both zero karma: alphabetical.
	f.addUser(t, "zoe")
	f.addUser(t, "adam")

	rows, err := f.repo.TopUsers(5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "adam", rows[0].Username)
	assert.Equal(t, "zoe", rows[1].Username)
}

func TestLeaderboardUsesCacheWhenPresent(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "alice")

	cache := &memCache{data: map[string]string{}}
	svc := NewService(f.repo, cache)

	first, err := svc.Leaderboard()
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A new user does not show up until the cached payload expires.
	f.addUser(t, "bob")
	second, err := svc.Leaderboard()
	require.NoError(t, err)
	assert.Len(t, second, 1)
}
