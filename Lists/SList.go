package Lists

// A node in the SList.
type sNode[T any] struct {
	v    T
	next *sNode[T]
}

// SList is a singly linked list with head and tail access: O(1)
// PushFront, PushBack and PopFront. The zero value is an empty list
// ready to use.
type SList[T any] struct {
	head, tail *sNode[T]
	sz         uint
}

func NewSList[T any]() *SList[T] {
	return new(SList[T])
}

func (u *SList[T]) Size() uint {
	return u.sz
}

func (u *SList[T]) Empty() bool {
	return u.sz == 0
}

func (u *SList[T]) PushFront(v T) {
	u.head = &sNode[T]{v, u.head}
	if u.tail == nil {
		u.tail = u.head
	}
	u.sz++
}

func (u *SList[T]) PushBack(v T) {
	n := &sNode[T]{v: v}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
}

func (u *SList[T]) PopFront() (T, error) {
	if u.head == nil {
		return *new(T), &EmptyListError{}
	}
	n := u.head
	u.head = n.next
	if u.head == nil {
		u.tail = nil
	}
	u.sz--
	return n.v, nil
}

func (u *SList[T]) Front() T {
	return u.head.v
}

func (u *SList[T]) Back() T {
	return u.tail.v
}

func (u *SList[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}

// Reverse the list in place.
// Time: O(n); Space: O(1)
func (u *SList[T]) Reverse() {
	var prev *sNode[T]
	u.tail = u.head
	for c := u.head; c != nil; {
		c.next, prev, c = prev, c, c.next
	}
	u.head = prev
}

// Iter [List.Iter].
func (u *SList[T]) Iter() func() (T, bool) {
	c := u.head
	return func() (v T, ok bool) {
		if c == nil {
			return
		}
		v, ok = c.v, true
		c = c.next
		return
	}
}

// Range calls f on each element front to back until f returns false.
func (u *SList[T]) Range(f func(T) bool) {
	for c := u.head; c != nil; c = c.next {
		if !f(c.v) {
			break
		}
	}
}
