// Package avlarray provides an ordered container backed by a single
// contiguous array laid out as an implicit (Eytzinger/heap-indexed) binary
// search tree: the element at position i has its children at 2i+1 and
// 2i+2, with no pointers stored anywhere.
//
// The container keeps itself AVL-balanced after every insertion and
// deletion, but because the layout is array-implicit, a rebalancing
// rotation cannot merely relink pointers -- every node below the pivot
// must be physically relocated into its new heap-index position. That
// relocation is performed by the shift primitive; rotations are expressed
// purely as slot swaps plus calls to shift.
package avlarray
