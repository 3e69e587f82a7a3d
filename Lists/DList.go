package Lists

// A node in the DList.
type dNode[T any] struct {
	v          T
	prev, next *dNode[T]
}

// DList is a doubly linked list anchored on a self referential
// sentinel, the same trick the search tree uses: the sentinel's next is
// the head and its prev the tail, and it doubles as the end marker in
// both directions. All push/pop receivers are O(1).
// DList shouldn't be created directly using a struct literal.
type DList[T any] struct {
	s  *dNode[T]
	sz uint
}

func NewDList[T any]() *DList[T] {
	z := new(dNode[T])
	z.prev, z.next = z, z
	return &DList[T]{s: z}
}

func (u *DList[T]) Size() uint {
	return u.sz
}

func (u *DList[T]) Empty() bool {
	return u.sz == 0
}

func (u *DList[T]) link(at *dNode[T], v T) {
	n := &dNode[T]{v, at, at.next}
	at.next.prev = n
	at.next = n
	u.sz++
}

func (u *DList[T]) unlink(n *dNode[T]) T {
	n.prev.next = n.next
	n.next.prev = n.prev
	u.sz--
	return n.v
}

func (u *DList[T]) PushFront(v T) {
	u.link(u.s, v)
}

func (u *DList[T]) PushBack(v T) {
	u.link(u.s.prev, v)
}

func (u *DList[T]) PopFront() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyListError{}
	}
	return u.unlink(u.s.next), nil
}

func (u *DList[T]) PopBack() (T, error) {
	if u.sz == 0 {
		return *new(T), &EmptyListError{}
	}
	return u.unlink(u.s.prev), nil
}

func (u *DList[T]) Front() T {
	return u.s.next.v
}

func (u *DList[T]) Back() T {
	return u.s.prev.v
}

func (u *DList[T]) Clear() {
	u.s.prev, u.s.next, u.sz = u.s, u.s, 0
}

// Iter [List.Iter].
func (u *DList[T]) Iter() func() (T, bool) {
	c := u.s.next
	return func() (v T, ok bool) {
		if c == u.s {
			return
		}
		v, ok = c.v, true
		c = c.next
		return
	}
}

// RIter is Iter back to front.
func (u *DList[T]) RIter() func() (T, bool) {
	c := u.s.prev
	return func() (v T, ok bool) {
		if c == u.s {
			return
		}
		v, ok = c.v, true
		c = c.prev
		return
	}
}
