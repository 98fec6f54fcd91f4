package like

type TargetKind string

const (
	KindPost    TargetKind = "post"
	KindComment TargetKind = "comment"
)

// Target is the tagged union naming what a like points at.
type Target struct {
	Kind TargetKind
	ID   uint64
}

func PostTarget(id uint64) Target    { return Target{Kind: KindPost, ID: id} }
func CommentTarget(id uint64) Target { return Target{Kind: KindComment, ID: id} }

func (t Target) where() string {
	if t.Kind == KindPost {
		return "user_id = ? AND post_id = ?"
	}
	return "user_id = ? AND comment_id = ?"
}

func (t Target) row(userID uint64) *Like {
	l := &Like{UserID: userID}
	if t.Kind == KindPost {
		id := t.ID
		l.PostID = &id
	} else {
		id := t.ID
		l.CommentID = &id
	}
	return l
}
