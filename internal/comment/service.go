package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"social-feed/internal/event"
	"social-feed/internal/like"
	"social-feed/internal/shared/apperr"
)

// PostChecker breaks the import cycle with the post package; the post
// repository satisfies it.
type PostChecker interface {
	Exists(id uint64) (bool, error)
}

type Service interface {
	Create(actorID, postID uint64, in CreateReq) (*Comment, error)
	// TreeByPost returns the annotated reply forest for the viewer plus the
	// total number of comments on the post.
	TreeByPost(postID, viewerID uint64) ([]*Node, int, error)
	CountByPost(postIDs []uint64) (map[uint64]int64, error)
}

type service struct {
	repo   Repository
	posts  PostChecker
	likes  like.Repository
	events event.Writer
}

func NewService(r Repository, posts PostChecker, likes like.Repository, ev event.Writer) Service {
	return &service{repo: r, posts: posts, likes: likes, events: ev}
}

func (s *service) Create(actorID, postID uint64, in CreateReq) (*Comment, error) {
	if actorID == 0 {
		return nil, apperr.ErrUnauthorized
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, errors.Join(apperr.ErrInvalid, errors.New("content required"))
	}
	ok, err := s.posts.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Join(apperr.ErrNotFound, errors.New("post not found"))
	}
	if in.ParentID != nil {
		parent, perr := s.repo.GetByID(*in.ParentID)
		if errors.Is(perr, apperr.ErrNotFound) {
			return nil, errors.Join(apperr.ErrInvalid, errors.New("unknown parent comment"))
		}
		if perr != nil {
			return nil, perr
		}
		// A reply must stay within its own post or the tree build would
		// silently mis-attach it.
		if parent.PostID != postID {
			return nil, errors.Join(apperr.ErrInvalid, errors.New("parent belongs to another post"))
		}
	}

	c, err := s.repo.Create(&Comment{
		PostID:   postID,
		AuthorID: actorID,
		ParentID: in.ParentID,
		Content:  in.Content,
	})
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		_ = s.events.WriteJSON(context.Background(), event.CommentCreated{
			Type: "comment.created", CommentID: c.ID, PostID: c.PostID,
			AuthorID: c.AuthorID, ParentID: c.ParentID, CreatedAt: time.Now(),
		})
	}
	return c, nil
}

func (s *service) TreeByPost(postID, viewerID uint64) ([]*Node, int, error) {
	comments, err := s.repo.ListByPost(postID)
	if err != nil {
		return nil, 0, err
	}
	ids := make([]uint64, len(comments))
	for i := range comments {
		ids[i] = comments[i].ID
	}
	counts, err := s.likes.CountByComment(ids)
	if err != nil {
		return nil, 0, err
	}
	liked, err := s.likes.LikedCommentIDs(viewerID, ids)
	if err != nil {
		return nil, 0, err
	}

	nodes := make([]*Node, len(comments))
	for i := range comments {
		nodes[i] = &Node{
			Comment:    comments[i],
			LikesCount: counts[comments[i].ID],
			IsLiked:    liked[comments[i].ID],
		}
	}
	return BuildTree(nodes), len(comments), nil
}

func (s *service) CountByPost(postIDs []uint64) (map[uint64]int64, error) {
	return s.repo.CountByPost(postIDs)
}
