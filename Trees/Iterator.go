package Trees

// Iterator is a bidirectional cursor over a BSTree in one traversal
// order. It doesn't own the node it points at; it holds the owning tree
// for sentinel and order context. Two iterators are equal exactly when
// they reference the same node, regardless of order or direction.
// Dereferencing or stepping an iterator positioned at End is undefined
// except where documented (Prev of End yields the last node).
// Mutating the tree invalidates only iterators referencing removed
// nodes: node identity is stable storage, so insertion never
// invalidates existing iterators.
type Iterator[T any] struct {
	t   *BSTree[T]
	n   nodePtr[T]
	ord Order
	rev bool
}

// Get the element at the iterator. Undefined at End.
func (it Iterator[T]) Get() T {
	return it.n.v
}

// Valid reports whether it points at a real element.
func (it Iterator[T]) Valid() bool {
	return it.t != nil && !it.t.isNil(it.n)
}

// Eq compares node identity only.
func (it Iterator[T]) Eq(o Iterator[T]) bool {
	return it.n == o.n
}

// Order this iterator traverses in.
func (it Iterator[T]) Order() Order {
	return it.ord
}

// Next position in traversal order (previous one for a reverse
// iterator). Panics with NotImplementedError in level order.
func (it Iterator[T]) Next() Iterator[T] {
	if it.rev {
		return Iterator[T]{it.t, it.t.prev(it.n, it.ord), it.ord, true}
	}
	return Iterator[T]{it.t, it.t.next(it.n, it.ord), it.ord, false}
}

// Prev position in traversal order. Prev of End yields the last node
// of the order.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.rev {
		return Iterator[T]{it.t, it.t.next(it.n, it.ord), it.ord, true}
	}
	return Iterator[T]{it.t, it.t.prev(it.n, it.ord), it.ord, false}
}

// Begin returns the first position of order o: the minimum in-order,
// the root pre-order, the deepest left-else-right leaf post-order. On
// an empty tree Begin(o)==End(o) for every order; on a non empty tree
// Begin(LevelOrder) panics with NotImplementedError.
func (u *BSTree[T]) Begin(o Order) Iterator[T] {
	return Iterator[T]{u, u.firstNodeIn(o), o, false}
}

// End returns the one-past-the-last position of order o: the sentinel.
func (u *BSTree[T]) End(o Order) Iterator[T] {
	return Iterator[T]{u, u.s, o, false}
}

// RBegin returns a reverse iterator on the last position of order o;
// its Next walks the order backwards.
func (u *BSTree[T]) RBegin(o Order) Iterator[T] {
	return Iterator[T]{u, u.lastNodeIn(o), o, true}
}

// REnd returns the one-before-the-first reverse position of order o:
// the sentinel again, relying on its beginning/end duality.
func (u *BSTree[T]) REnd(o Order) Iterator[T] {
	return Iterator[T]{u, u.s, o, true}
}
