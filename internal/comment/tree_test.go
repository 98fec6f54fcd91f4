package comment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id uint64, parentID *uint64, likes int64, at time.Time) *Node {
	return &Node{
		Comment: Comment{
			ID:        id,
			PostID:    1,
			AuthorID:  1,
			ParentID:  parentID,
			Content:   "c",
			CreatedAt: at,
		},
		LikesCount: likes,
	}
}

func ptr(v uint64) *uint64 { return &v }

func TestBuildTreeEmpty(t *testing.T) {
	roots := BuildTree(nil)
	assert.Empty(t, roots)

	roots = BuildTree([]*Node{})
	assert.Empty(t, roots)
}

func TestBuildTreeNesting(t *testing.T) {
	t0 := time.Now()
	// C1(root, 2 likes), C2(parent=C1), C3(root, 1 like), created in order.
	c1 := node(1, nil, 2, t0)
	c2 := node(2, ptr(1), 0, t0.Add(time.Second))
	c3 := node(3, nil, 1, t0.Add(2*time.Second))

	roots := BuildTree([]*Node{c1, c2, c3})

	require.Len(t, roots, 2)
	assert.Equal(t, uint64(1), roots[0].ID)
	assert.Equal(t, uint64(3), roots[1].ID)
	require.Len(t, roots[0].Replies, 1)
	assert.Equal(t, uint64(2), roots[0].Replies[0].ID)
	assert.Empty(t, roots[1].Replies)
	assert.Equal(t, int64(2), roots[0].LikesCount)
	assert.Equal(t, int64(1), roots[1].LikesCount)
}

func TestBuildTreeDeepThread(t *testing.T) {
	t0 := time.Now()
	var nodes []*Node
	nodes = append(nodes, node(1, nil, 0, t0))
	for id := uint64(2); id <= 6; id++ {
		parent := id - 1
		nodes = append(nodes, node(id, ptr(parent), 0, t0.Add(time.Duration(id)*time.Second)))
	}

	roots := BuildTree(nodes)

	require.Len(t, roots, 1)
	cur := roots[0]
	for id := uint64(2); id <= 6; id++ {
		require.Len(t, cur.Replies, 1)
		cur = cur.Replies[0]
		assert.Equal(t, id, cur.ID)
	}
	assert.Empty(t, cur.Replies)
}

func TestBuildTreeDanglingParentBecomesRoot(t *testing.T) {
	t0 := time.Now()
	orphan := node(5, ptr(999), 0, t0)
	roots := BuildTree([]*Node{orphan})

	require.Len(t, roots, 1)
	assert.Equal(t, uint64(5), roots[0].ID)
}

func TestBuildTreePreservesInputOrder(t *testing.T) {
	t0 := time.Now()
	nodes := []*Node{
		node(1, nil, 0, t0),
		node(2, ptr(1), 0, t0.Add(1*time.Second)),
		node(3, ptr(1), 0, t0.Add(2*time.Second)),
		node(4, nil, 0, t0.Add(3*time.Second)),
		node(5, ptr(1), 0, t0.Add(4*time.Second)),
	}

	roots := BuildTree(nodes)

	require.Len(t, roots, 2)
	assert.Equal(t, []uint64{1, 4}, []uint64{roots[0].ID, roots[1].ID})
	require.Len(t, roots[0].Replies, 3)
	assert.Equal(t, uint64(2), roots[0].Replies[0].ID)
	assert.Equal(t, uint64(3), roots[0].Replies[1].ID)
	assert.Equal(t, uint64(5), roots[0].Replies[2].ID)
}

func TestBuildTreeLosesNoComment(t *testing.T) {
	t0 := time.Now()
	nodes := []*Node{
		node(1, nil, 0, t0),
		node(2, ptr(1), 0, t0),
		node(3, ptr(2), 0, t0),
		node(4, ptr(42), 0, t0), // dangling
		node(5, nil, 0, t0),
	}

	roots := BuildTree(nodes)

	seen := map[uint64]int{}
	var walk func([]*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			seen[n.ID]++
			walk(n.Replies)
		}
	}
	walk(roots)

	require.Len(t, seen, len(nodes))
	for _, n := range nodes {
		assert.Equal(t, 1, seen[n.ID], "comment %d should appear exactly once", n.ID)
	}
}

func TestBuildTreeIdempotent(t *testing.T) {
	t0 := time.Now()
	mk := func() []*Node {
		return []*Node{
			node(1, nil, 0, t0),
			node(2, ptr(1), 0, t0),
			node(3, nil, 0, t0),
		}
	}

	first := BuildTree(mk())
	second := BuildTree(mk())

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Len(t, second[i].Replies, len(first[i].Replies))
	}
}
