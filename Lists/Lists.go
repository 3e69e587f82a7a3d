package Lists

// List is the shared contract of the linked lists in this package.
// Iter returns a closure acting like an iterator: calling it is like
// calling "Next()", val, valid=f(). val is meaningful only while valid
// is true, and valid can't turn true after it first became false. The
// list must not be modified during the iteration of f.
type List[T any] interface {
	PushFront(v T)
	PopFront() (T, error)
	Front() T
	Size() uint
	Empty() bool
	Clear()
	Iter() func() (T, bool)
}

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty: cannot Pop."
}
