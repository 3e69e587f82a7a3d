package Trees

// A node in the BSTree.
// The zero value is meaningless; nodes are always created fully linked
// by the tree that owns them.
type node[T any] struct {
	v       T
	p, l, r nodePtr[T]
}

// Pointer to a node. A nil pointer is meaningless: a nodePtr is
// considered null when it equals the sentinel of the owning BSTree (or
// an actual nil, the two are interchangeable). The sentinel holds no
// value; its p is the root, its l the minimum and its r the maximum of
// the tree, or itself for all three when the tree is empty. This makes
// the sentinel both the one-past-the-end marker in every traversal
// order and an O(1) cache of the tree's bounds.
type nodePtr[T any] *node[T]

// degree is the number of non-null children of n: 0, 1 or 2.
func (u *bstBase[T]) degree(n nodePtr[T]) int {
	d := 0
	if !u.isNil(n.l) {
		d++
	}
	if !u.isNil(n.r) {
		d++
	}
	return d
}

func (u *bstBase[T]) isLeaf(n nodePtr[T]) bool {
	return u.isNil(n.l) && u.isNil(n.r)
}

// isNil is the single null predicate that all traversal and mutation
// code routes through: the sentinel substitutes for nil in several
// contexts (the parent of the root is the sentinel, not nil).
func (u *bstBase[T]) isNil(n nodePtr[T]) bool {
	return n == nil || n == u.s
}

// leftRotation rewires n and its right child rc: rc's left subtree
// becomes n's right subtree, n becomes rc's left subtree, and n's
// original parent link is retargeted to rc (or to the sentinel's root
// slot if n was root). A no-op when n has no right child.
// The in-order sequence is unchanged, so the sentinel's bound caches
// stay valid. The base tree never calls the rotations itself; they are
// primitives for self-balancing extensions.
// Time: O(1); Space: O(1)
func (u *bstBase[T]) leftRotation(n nodePtr[T]) {
	rc := n.r
	if u.isNil(rc) {
		return
	}
	n.r = rc.l
	if !u.isNil(rc.l) {
		rc.l.p = n
	}
	u.retarget(n, rc)
	rc.l, n.p = n, rc
}

// rightRotation is the mirror of leftRotation on n and its left child.
// Time: O(1); Space: O(1)
func (u *bstBase[T]) rightRotation(n nodePtr[T]) {
	lc := n.l
	if u.isNil(lc) {
		return
	}
	n.l = lc.r
	if !u.isNil(lc.r) {
		lc.r.p = n
	}
	u.retarget(n, lc)
	lc.r, n.p = n, lc
}

// leftRightRotation first rotates n's left child left, then n right.
// A no-op when n has no left child, like the singles; the child must be
// checked here since passing the sentinel to leftRotation would read
// its bound caches as subtree links.
func (u *bstBase[T]) leftRightRotation(n nodePtr[T]) {
	if u.isNil(n.l) {
		return
	}
	u.leftRotation(n.l)
	u.rightRotation(n)
}

// rightLeftRotation first rotates n's right child right, then n left.
// A no-op when n has no right child.
func (u *bstBase[T]) rightLeftRotation(n nodePtr[T]) {
	if u.isNil(n.r) {
		return
	}
	u.rightRotation(n.r)
	u.leftRotation(n)
}

// retarget makes old's parent point at repl instead, handling the root
// case through the sentinel. repl's own parent link is updated unless
// repl is null.
func (u *bstBase[T]) retarget(old, repl nodePtr[T]) {
	if old.p == u.s {
		u.s.p = repl
	} else if old == old.p.l {
		old.p.l = repl
	} else {
		old.p.r = repl
	}
	if !u.isNil(repl) {
		repl.p = old.p
	}
}
