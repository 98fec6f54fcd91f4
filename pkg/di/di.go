package di

import (
	"social-feed/internal/comment"
	"social-feed/internal/event"
	"social-feed/internal/karma"
	"social-feed/internal/like"
	"social-feed/internal/post"
	"social-feed/internal/shared/db"
	"social-feed/internal/user"

	"github.com/redis/go-redis/v9"
)

type Container struct {
	Store          *db.Store
	UserService    user.Service
	PostService    post.Service
	CommentService comment.Service
	LikeService    like.Service
	KarmaService   karma.Service
}

// targetChecker adapts the post/comment repositories to the like engine's
// existence checks.
type targetChecker struct {
	posts    post.Repository
	comments comment.Repository
}

func (t targetChecker) PostExists(id uint64) (bool, error)    { return t.posts.Exists(id) }
func (t targetChecker) CommentExists(id uint64) (bool, error) { return t.comments.Exists(id) }

// BuildContainer wires repositories and services. rdb and events may be nil;
// redis-backed caching and event publishing are then disabled.
func BuildContainer(store *db.Store, rdb *redis.Client, events event.Writer) *Container {
	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo)

	postRepo := post.NewRepository(store)
	commentRepo := comment.NewRepository(store)
	likeRepo := like.NewRepository(store)

	likeSvc := like.NewService(likeRepo, targetChecker{posts: postRepo, comments: commentRepo}, events)
	commentSvc := comment.NewService(commentRepo, postRepo, likeRepo, events)
	postSvc := post.NewService(postRepo, commentSvc, likeRepo, events)

	karmaRepo := karma.NewRepository(store)
	var kcache karma.Cache
	if rdb != nil {
		kcache = karma.NewRedisCache(rdb)
	}
	karmaSvc := karma.NewService(karmaRepo, kcache)

	return &Container{
		Store:          store,
		UserService:    userSvc,
		PostService:    postSvc,
		CommentService: commentSvc,
		LikeService:    likeSvc,
		KarmaService:   karmaSvc,
	}
}
