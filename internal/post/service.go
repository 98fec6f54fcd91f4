package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"social-feed/internal/comment"
	"social-feed/internal/event"
	"social-feed/internal/like"
	"social-feed/internal/shared/apperr"
)

type Service interface {
	Create(actorID uint64, content string) (*Post, error)
	List(viewerID uint64, limit, offset int) ([]PostWithStats, error)
	// GetDetail is the single-post view: the annotated post plus its full
	// annotated comment tree, in a bounded number of bulk queries.
	GetDetail(postID, viewerID uint64) (*PostDetail, error)
}

type service struct {
	repo     Repository
	comments comment.Service
	likes    like.Repository
	events   event.Writer
}

func NewService(r Repository, cs comment.Service, lr like.Repository, ev event.Writer) Service {
	return &service{repo: r, comments: cs, likes: lr, events: ev}
}

func (s *service) Create(actorID uint64, content string) (*Post, error) {
	if actorID == 0 {
		return nil, apperr.ErrUnauthorized
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.Join(apperr.ErrInvalid, errors.New("content required"))
	}
	p, err := s.repo.Create(&Post{AuthorID: actorID, Content: content})
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		_ = s.events.WriteJSON(context.Background(), event.PostCreated{
			Type: "post.created", PostID: p.ID, AuthorID: p.AuthorID, CreatedAt: time.Now(),
		})
	}
	return p, nil
}

func (s *service) List(viewerID uint64, limit, offset int) ([]PostWithStats, error) {
	posts, err := s.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	likeCounts, err := s.likes.CountByPost(ids)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.LikedPostIDs(viewerID, ids)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.comments.CountByPost(ids)
	if err != nil {
		return nil, err
	}

	out := make([]PostWithStats, len(posts))
	for i := range posts {
		out[i] = PostWithStats{
			Post:          posts[i],
			LikesCount:    likeCounts[posts[i].ID],
			CommentsCount: commentCounts[posts[i].ID],
			IsLiked:       liked[posts[i].ID],
		}
	}
	return out, nil
}

func (s *service) GetDetail(postID, viewerID uint64) (*PostDetail, error) {
	p, err := s.repo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likes.CountByPost([]uint64{postID})
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.LikedPostIDs(viewerID, []uint64{postID})
	if err != nil {
		return nil, err
	}
	tree, total, err := s.comments.TreeByPost(postID, viewerID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		PostWithStats: PostWithStats{
			Post:          *p,
			LikesCount:    likeCounts[postID],
			CommentsCount: int64(total),
			IsLiked:       liked[postID],
		},
		Comments: tree,
	}, nil
}
