package Stacks

type sliceStack[T any] struct {
	content []T
}

// MakeArrayStack returns a slice backed Stack adapter growing by 3/2.
func MakeArrayStack[T any](initCap uint) ArrayStack[T] {
	return &sliceStack[T]{make([]T, 0, initCap)}
}

func (this *sliceStack[T]) Empty() bool {
	return len(this.content) == 0
}

func (this *sliceStack[T]) Size() uint {
	return uint(len(this.content))
}

func (this *sliceStack[T]) Push(item T) {
	if len(this.content) == cap(this.content) {
		nc := make([]T, len(this.content), uint(len(this.content))*3/2+1)
		copy(nc, this.content)
		this.content = nc
	}
	this.content = append(this.content, item)
}

func (this *sliceStack[T]) Pop() (T, error) {
	if this.Empty() {
		return *new(T), &EmptyStackError{}
	}
	i := len(this.content) - 1
	t := this.content[i]
	this.content[i] = *new(T)
	this.content = this.content[:i]
	return t, nil
}

func (this *sliceStack[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	}
	return this.content[len(this.content)-1]
}

func (this *sliceStack[T]) Shrink() {
	nc := make([]T, len(this.content))
	copy(nc, this.content)
	this.content = nc
}

func (this *sliceStack[T]) Clear() {
	for i := range this.content {
		this.content[i] = *new(T)
	}
	this.content = this.content[:0]
}
