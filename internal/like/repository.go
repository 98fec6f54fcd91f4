package like

import (
	"errors"

	"social-feed/internal/shared/db"

	"gorm.io/gorm"
)

type Repository interface {
	Toggle(userID uint64, t Target) (State, error)
	CountByPost(postIDs []uint64) (map[uint64]int64, error)
	CountByComment(commentIDs []uint64) (map[uint64]int64, error)
	LikedPostIDs(userID uint64, postIDs []uint64) (map[uint64]bool, error)
	LikedCommentIDs(userID uint64, commentIDs []uint64) (map[uint64]bool, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.DB}
}

// Toggle flips the like state inside one transaction. The existence check
// and the insert are not atomic across requests; when a concurrent insert
// wins, the unique index rejects ours and the outcome is StateIgnored.
func (r *repo) Toggle(userID uint64, t Target) (State, error) {
	state := StateIgnored
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing Like
		err := tx.Where(t.where(), userID, t.ID).First(&existing).Error
		switch {
		case err == nil:
			// Delete of an already-vanished row is a no-op; still unliked.
			state = StateUnliked
			return tx.Delete(&Like{}, existing.ID).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			if cerr := tx.Create(t.row(userID)).Error; cerr != nil {
				if errors.Is(cerr, gorm.ErrDuplicatedKey) {
					state = StateIgnored
					return nil
				}
				return cerr
			}
			state = StateLiked
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return "", err
	}
	return state, nil
}

type countRow struct {
	ID uint64
	N  int64
}

func (r *repo) CountByPost(postIDs []uint64) (map[uint64]int64, error) {
	return r.countBy("post_id", postIDs)
}

func (r *repo) CountByComment(commentIDs []uint64) (map[uint64]int64, error) {
	return r.countBy("comment_id", commentIDs)
}

func (r *repo) countBy(col string, ids []uint64) (map[uint64]int64, error) {
	out := make(map[uint64]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []countRow
	err := r.db.Model(&Like{}).
		Select(col+" AS id, COUNT(*) AS n").
		Where(col+" IN ?", ids).
		Group(col).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row.N
	}
	return out, nil
}

func (r *repo) LikedPostIDs(userID uint64, postIDs []uint64) (map[uint64]bool, error) {
	return r.likedBy("post_id", userID, postIDs)
}

func (r *repo) LikedCommentIDs(userID uint64, commentIDs []uint64) (map[uint64]bool, error) {
	return r.likedBy("comment_id", userID, commentIDs)
}

func (r *repo) likedBy(col string, userID uint64, ids []uint64) (map[uint64]bool, error) {
	out := make(map[uint64]bool, len(ids))
	if userID == 0 || len(ids) == 0 {
		return out, nil
	}
	var hit []uint64
	err := r.db.Model(&Like{}).
		Where("user_id = ?", userID).
		Where(col+" IN ?", ids).
		Pluck(col, &hit).Error
	if err != nil {
		return nil, err
	}
	for _, id := range hit {
		out[id] = true
	}
	return out, nil
}
