package avlarray

import (
	"strconv"

	tp "github.com/xlab/treeprint"
)

// Dump renders the tree's current shape as an indented text diagram, one
// branch per occupied slot, using format to stringify each element. It
// walks data and height directly in heap-index order rather than through
// the BST iterator, so an unbalanced or otherwise surprising layout shows
// up in the output exactly as stored. Dump is meant for debugging and
// tests; its output format is not a stable API.
func (c *Container[T]) Dump(format func(T) string) string {
	if c.size == 0 {
		return tp.New().String()
	}
	root := tp.New()
	c.dumpNode(root, 0, format)
	return root.String()
}

func (c *Container[T]) dumpNode(branch tp.Tree, i int, format func(T) string) {
	if !c.occupied(i) {
		return
	}
	label := format(c.data[i].value) + " (h=" + strconv.Itoa(int(c.height[i])) + ")"
	sub := branch.AddBranch(label)
	if c.occupied(left(i)) {
		c.dumpNode(sub, left(i), format)
	}
	if c.occupied(right(i)) {
		c.dumpNode(sub, right(i), format)
	}
}
