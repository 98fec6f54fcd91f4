package migrate

import (
	"social-feed/internal/comment"
	"social-feed/internal/like"
	"social-feed/internal/post"
	"social-feed/internal/shared/db"
	"social-feed/internal/user"
)

func AutoMigrateAll(store *db.Store) error {
	return store.DB.AutoMigrate(
		&user.User{}, &post.Post{}, &comment.Comment{}, &like.Like{},
	)
}
