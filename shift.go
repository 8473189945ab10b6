package avlarray

// shift relocates the subtree rooted at current by the signed offset
// delta: the element at current moves to current+delta, recursively for
// each descendant, with each descendant's delta doubling at each level of
// descent. It is the only mechanism by which nodes physically move within
// the array -- rotations are built entirely out of calls to it.
//
// For delta > 0 (moving toward larger indices) children are relocated
// before the current slot is written, so that a still-live source cell is
// never overwritten by one of its own freshly-moved descendants. For
// delta < 0 children are relocated after, for the same reason mirrored.
func (c *Container[T]) shift(current int, delta int) {
	if current >= len(c.data) || !c.data[current].ok || delta == 0 {
		return
	}

	if delta > 0 {
		c.shift(left(current), delta*2)
		c.shift(right(current), delta*2)
	}

	c.grow(current + delta)
	c.data[current+delta] = c.data[current]
	c.height[current+delta] = c.height[current]
	c.data[current] = slot[T]{}
	c.height[current] = 0

	if delta < 0 {
		c.shift(left(current), delta*2)
		c.shift(right(current), delta*2)
	}
}
