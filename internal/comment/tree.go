package comment

// Node is the read-side view of a comment: the stored row plus the
// per-request annotations and its ordered replies. The base Comment is
// never mutated; annotations live here.
type Node struct {
	Comment
	LikesCount int64   `json:"likes_count"`
	IsLiked    bool    `json:"is_liked"`
	Replies    []*Node `json:"replies"`
}

// BuildTree turns a flat, creation-time-ordered slice of nodes into the
// ordered forest of root comments. Two linear passes: index every node by
// id, then attach each node to its parent's replies, or to the roots when
// it has no parent. A parent id missing from the set (filtered out, or a
// cross-post reference) degrades the node to a root rather than failing.
// Input order is preserved within every list, so each reply list stays in
// creation order.
func BuildTree(nodes []*Node) []*Node {
	index := make(map[uint64]*Node, len(nodes))
	for _, n := range nodes {
		n.Replies = []*Node{}
		index[n.ID] = n
	}

	roots := []*Node{}
	for _, n := range nodes {
		if n.ParentID != nil {
			if parent, ok := index[*n.ParentID]; ok && parent != n {
				parent.Replies = append(parent.Replies, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}
