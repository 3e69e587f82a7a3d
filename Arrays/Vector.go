package Arrays

// Vector is a dynamic array with amortized O(1) append. The zero value
// is an empty vector ready to use.
// Indexes aren't bounds checked beyond what the runtime does; passing
// i>=Len() panics.
type Vector[T any] struct {
	content []T
}

// New returns an empty Vector with the given initial capacity.
func New[T any](initCap uint) *Vector[T] {
	return &Vector[T]{make([]T, 0, initCap)}
}

// Of returns a Vector holding the given values.
func Of[T any](values ...T) *Vector[T] {
	v := New[T](uint(len(values)))
	v.content = append(v.content, values...)
	return v
}

func (u *Vector[T]) Len() uint {
	return uint(len(u.content))
}

func (u *Vector[T]) Cap() uint {
	return uint(cap(u.content))
}

func (u *Vector[T]) Empty() bool {
	return len(u.content) == 0
}

func (u *Vector[T]) At(i uint) T {
	return u.content[i]
}

func (u *Vector[T]) Set(i uint, v T) {
	u.content[i] = v
}

func (u *Vector[T]) PushBack(v T) {
	if len(u.content) == cap(u.content) {
		u.grow(uint(len(u.content))*3/2 + 1)
	}
	u.content = append(u.content, v)
}

// PopBack removes and returns the last element, zeroing its slot so no
// reference is retained.
func (u *Vector[T]) PopBack() T {
	i := len(u.content) - 1
	v := u.content[i]
	u.content[i] = *new(T)
	u.content = u.content[:i]
	return v
}

// Back is the last element without removing it.
func (u *Vector[T]) Back() T {
	return u.content[len(u.content)-1]
}

// Insert v before position i, shifting the tail right.
// Time: O(n)
func (u *Vector[T]) Insert(i uint, v T) {
	u.content = append(u.content, *new(T))
	copy(u.content[i+1:], u.content[i:])
	u.content[i] = v
}

// RemoveAt removes the element at i, shifting the tail left.
// Time: O(n)
func (u *Vector[T]) RemoveAt(i uint) T {
	v := u.content[i]
	copy(u.content[i:], u.content[i+1:])
	u.content[len(u.content)-1] = *new(T)
	u.content = u.content[:len(u.content)-1]
	return v
}

// Reserve grows the capacity to at least n. No-op when already large
// enough.
func (u *Vector[T]) Reserve(n uint) {
	if n > uint(cap(u.content)) {
		u.grow(n)
	}
}

// Shrink reallocates so capacity equals length.
func (u *Vector[T]) Shrink() {
	nc := make([]T, len(u.content))
	copy(nc, u.content)
	u.content = nc
}

// Clear empties the vector keeping its capacity. Slots are zeroed.
func (u *Vector[T]) Clear() {
	for i := range u.content {
		u.content[i] = *new(T)
	}
	u.content = u.content[:0]
}

// Range calls f on each element in index order until f returns false.
func (u *Vector[T]) Range(f func(T) bool) {
	for _, v := range u.content {
		if !f(v) {
			break
		}
	}
}

func (u *Vector[T]) grow(n uint) {
	nc := make([]T, len(u.content), n)
	copy(nc, u.content)
	u.content = nc
}
