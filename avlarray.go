package avlarray

// LessThan reports whether a sorts strictly before b. Values where
// neither is LessThan the other are considered equal by the container.
type LessThan[T any] func(a, b T) bool

// Container is an ordered collection of T kept in a single contiguous
// array laid out as an implicit binary search tree, AVL-balanced after
// every Insert and Remove. There is no node graph and nothing is
// allocated per element; rebalancing relocates whole subtrees within the
// array instead of relinking pointers.
//
// The zero value is not ready to use; construct one with New.
type Container[T any] struct {
	data   []slot[T]
	height []uint8
	size   int
	less   LessThan[T]
}

// New creates an empty Container ordered by less.
func New[T any](less LessThan[T]) *Container[T] {
	return &Container[T]{less: less}
}

// Size returns the number of elements currently in the container.
func (c *Container[T]) Size() int { return c.size }

// Capacity returns the number of slots the backing arrays can hold
// without reallocating.
func (c *Container[T]) Capacity() int { return len(c.data) }

// Empty reports whether the container holds no elements.
func (c *Container[T]) Empty() bool { return c.size == 0 }

// Clear removes every element from the container. Capacity is unchanged.
func (c *Container[T]) Clear() {
	for i := range c.data {
		c.data[i] = slot[T]{}
		c.height[i] = 0
	}
	c.size = 0
}

// search descends from the root following BST order and returns the
// index holding value and true if found, or the index where the descent
// stopped (an empty slot, or one past the current capacity) and false.
func (c *Container[T]) search(value T) (int, bool) {
	i := 0
	for i < len(c.data) && c.data[i].ok {
		v := c.data[i].value
		switch {
		case c.less(value, v):
			i = left(i)
		case c.less(v, value):
			i = right(i)
		default:
			return i, true
		}
	}
	return i, false
}

// Contains reports whether value is present in the container.
func (c *Container[T]) Contains(value T) bool {
	_, found := c.search(value)
	return found
}

// Insert adds value to the container, descending from the root and
// growing the backing arrays as needed, then walks the ancestor chain
// recomputing heights and rotating wherever the balance factor exceeds
// +-1. Equal values (per less) are routed to the right subtree, so
// duplicates are permitted and insertion always succeeds.
func (c *Container[T]) Insert(value T) {
	index := 0
	for {
		c.grow(index)
		if !c.data[index].ok {
			c.data[index] = slot[T]{value: value, ok: true}
			c.size++
			break
		}
		if c.less(value, c.data[index].value) {
			index = left(index)
		} else {
			index = right(index)
		}
	}
	c.height[index] = 1

	for index > 0 {
		index = parent(index)
		if absDiff(c.heightAt(right(index)), c.heightAt(left(index))) >= 2 {
			c.rebalance(index)
		}
		c.height[index] = maxU8(c.heightAt(left(index)), c.heightAt(right(index))) + 1
	}
}

// Remove deletes value from the container if present and reports whether
// it was found. The node is removed by in-order-successor substitution
// (or, if it has no right subtree, by promoting its left subtree into its
// place), and the ancestor chain from the point of the actual structural
// change up to the root is then rebalanced exactly as Insert does.
func (c *Container[T]) Remove(value T) bool {
	k, found := c.search(value)
	if !found {
		return false
	}

	changed := k
	next := right(k)
	if next >= len(c.data) || !c.data[next].ok {
		if c.occupied(left(k)) {
			c.shift(left(k), k-left(k))
		} else {
			c.data[k] = slot[T]{}
			c.height[k] = 0
		}
	} else {
		for c.occupied(left(next)) {
			next = left(next)
		}
		c.data[k] = c.data[next]
		if c.occupied(right(next)) {
			c.shift(right(next), next-right(next))
		} else {
			c.data[next] = slot[T]{}
			c.height[next] = 0
		}
		changed = next
	}

	for changed > 0 {
		changed = parent(changed)
		if absDiff(c.heightAt(right(changed)), c.heightAt(left(changed))) >= 2 {
			c.rebalance(changed)
		}
		c.height[changed] = maxU8(c.heightAt(left(changed)), c.heightAt(right(changed))) + 1
	}

	c.size--
	return true
}

// Get returns the k-th smallest element (0-indexed) and true, or a zero
// value and false if k >= Size(). Unlike At, this can never panic.
func (c *Container[T]) Get(k int) (v T, ok bool) {
	if k < 0 || k >= c.size {
		return
	}
	it := c.Begin()
	for i := 0; i < k; i++ {
		it.Next()
	}
	return it.Value(), true
}

// At returns the k-th smallest element (0-indexed). It panics if k is out
// of range; use Get if that behavior is undesired.
func (c *Container[T]) At(k int) T {
	if k < 0 || k >= c.size {
		panic("avlarray: index out of range")
	}
	v, _ := c.Get(k)
	return v
}

// Clone returns a deep copy of c. The copy shares no backing storage with
// the original, so mutating one never affects the other.
func (c *Container[T]) Clone() *Container[T] {
	return &Container[T]{
		less:   c.less,
		size:   c.size,
		data:   append([]slot[T](nil), c.data...),
		height: append([]uint8(nil), c.height...),
	}
}
