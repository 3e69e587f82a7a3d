package Trees

// bstBase is the link model and traversal engine shared by BSTree and
// anything embedding it. It owns the sentinel, the element count and
// the comparator; all successor/predecessor computation lives here and
// uses no auxiliary storage.
type bstBase[T any] struct {
	s   nodePtr[T] // sentinel: p=root, l=min, r=max; all itself when empty
	sz  uint
	cmp func(a, b T) int // strict weak order, three way
}

func (u *bstBase[T]) init(cmp func(a, b T) int) {
	z := new(node[T])
	z.p, z.l, z.r = z, z, z
	u.s, u.sz, u.cmp = z, 0, cmp
}

func (u *bstBase[T]) root() nodePtr[T] {
	return u.s.p
}

// minOf the subtree rooted at n. n must not be null.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) minOf(n nodePtr[T]) nodePtr[T] {
	for !u.isNil(n.l) {
		n = n.l
	}
	return n
}

// maxOf the subtree rooted at n. n must not be null.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) maxOf(n nodePtr[T]) nodePtr[T] {
	for !u.isNil(n.r) {
		n = n.r
	}
	return n
}

// nextInOrder successor of n: the leftmost node of n's right subtree
// when one exists, otherwise the nearest ancestor reached while n is on
// a right-descendant chain. Returns the sentinel past the maximum.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) nextInOrder(n nodePtr[T]) nodePtr[T] {
	if !u.isNil(n.r) {
		return u.minOf(n.r)
	}
	c, p := n, n.p
	for !u.isNil(p) && c == p.r {
		c, p = p, p.p
	}
	if u.isNil(p) {
		return u.s
	}
	return p
}

// prevInOrder is the mirror of nextInOrder.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) prevInOrder(n nodePtr[T]) nodePtr[T] {
	if !u.isNil(n.l) {
		return u.maxOf(n.l)
	}
	c, p := n, n.p
	for !u.isNil(p) && c == p.l {
		c, p = p, p.p
	}
	if u.isNil(p) {
		return u.s
	}
	return p
}

// nextPreOrder successor of n: left child, else right child, else the
// right child of the nearest ancestor reached through a left-child edge
// that has one; the sentinel when no such ancestor exists.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) nextPreOrder(n nodePtr[T]) nodePtr[T] {
	if !u.isNil(n.l) {
		return n.l
	}
	if !u.isNil(n.r) {
		return n.r
	}
	for c := n; !u.isNil(c.p); c = c.p {
		if c == c.p.l && !u.isNil(c.p.r) {
			return c.p.r
		}
	}
	return u.s
}

// prevPreOrder predecessor of n: the parent, unless n is a right child
// and the parent also has a left subtree, in which case the pre-order
// last node of that subtree. The root has no predecessor.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) prevPreOrder(n nodePtr[T]) nodePtr[T] {
	p := n.p
	if u.isNil(p) {
		return u.s
	}
	if n == p.r && !u.isNil(p.l) {
		return u.lastPreOrderOf(p.l)
	}
	return p
}

// nextPostOrder successor of n: the parent when n is a right child or
// an only child, otherwise the post-order first node of the parent's
// right subtree. The root has no successor.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) nextPostOrder(n nodePtr[T]) nodePtr[T] {
	p := n.p
	if u.isNil(p) {
		return u.s
	}
	if n == p.r || u.isNil(p.r) {
		return p
	}
	return u.firstPostOrderOf(p.r)
}

// prevPostOrder predecessor of n: right child, else left child, else
// the left child of the nearest ancestor reached through a right-child
// edge that has one.
// Time: O(D); Space: O(1)
func (u *bstBase[T]) prevPostOrder(n nodePtr[T]) nodePtr[T] {
	if !u.isNil(n.r) {
		return n.r
	}
	if !u.isNil(n.l) {
		return n.l
	}
	for c := n; !u.isNil(c.p); c = c.p {
		if c == c.p.r && !u.isNil(c.p.l) {
			return c.p.l
		}
	}
	return u.s
}

// firstPostOrderOf descends from n left if present, else right, to the
// structurally deepest leaf that post-order visits first.
func (u *bstBase[T]) firstPostOrderOf(n nodePtr[T]) nodePtr[T] {
	for {
		if !u.isNil(n.l) {
			n = n.l
		} else if !u.isNil(n.r) {
			n = n.r
		} else {
			return n
		}
	}
}

// lastPreOrderOf descends from n right if present, else left, to the
// leaf that pre-order visits last.
func (u *bstBase[T]) lastPreOrderOf(n nodePtr[T]) nodePtr[T] {
	for {
		if !u.isNil(n.r) {
			n = n.r
		} else if !u.isNil(n.l) {
			n = n.l
		} else {
			return n
		}
	}
}

// next node after n in order o. Stepping level-order panics with
// NotImplementedError.
func (u *bstBase[T]) next(n nodePtr[T], o Order) nodePtr[T] {
	if u.isNil(n) {
		return u.firstNodeIn(o)
	}
	switch o {
	case InOrder:
		return u.nextInOrder(n)
	case PreOrder:
		return u.nextPreOrder(n)
	case PostOrder:
		return u.nextPostOrder(n)
	}
	panic(NotImplementedError{"level-order successor"})
}

// prev node before n in order o. prev of the sentinel is the last node
// of the order, which is what stepping back from End relies on.
func (u *bstBase[T]) prev(n nodePtr[T], o Order) nodePtr[T] {
	if u.isNil(n) {
		return u.lastNodeIn(o)
	}
	switch o {
	case InOrder:
		return u.prevInOrder(n)
	case PreOrder:
		return u.prevPreOrder(n)
	case PostOrder:
		return u.prevPostOrder(n)
	}
	panic(NotImplementedError{"level-order predecessor"})
}

// firstNodeIn gives the node a traversal of order o starts at: the
// minimum for in-order, the root for pre-order, the deepest left-else-
// right leaf for post-order. The sentinel on an empty tree in any
// order, level included.
func (u *bstBase[T]) firstNodeIn(o Order) nodePtr[T] {
	if u.isNil(u.root()) {
		return u.s
	}
	switch o {
	case InOrder:
		return u.s.l
	case PreOrder:
		return u.root()
	case PostOrder:
		return u.firstPostOrderOf(u.root())
	}
	panic(NotImplementedError{"level-order traversal"})
}

// lastNodeIn gives the final node of order o, mirroring firstNodeIn.
func (u *bstBase[T]) lastNodeIn(o Order) nodePtr[T] {
	if u.isNil(u.root()) {
		return u.s
	}
	switch o {
	case InOrder:
		return u.s.r
	case PreOrder:
		return u.lastPreOrderOf(u.root())
	case PostOrder:
		return u.root()
	}
	panic(NotImplementedError{"level-order traversal"})
}

// heightOf the subtree rooted at n, counted in nodes: 0 for a null
// subtree, 1 for a leaf. Recursive.
// Time: O(n)
func (u *bstBase[T]) heightOf(n nodePtr[T]) uint {
	if u.isNil(n) {
		return 0
	}
	l, r := u.heightOf(n.l), u.heightOf(n.r)
	if l < r {
		l = r
	}
	return l + 1
}
