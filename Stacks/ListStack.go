package Stacks

import (
	"github.com/d-h-phan/go-stl/Lists"
)

type listStack[T any] struct {
	l *Lists.DList[T]
}

// MakeListStack returns a Stack adapter over a doubly linked list; no
// reallocation ever, at the cost of a node per element.
func MakeListStack[T any]() Stack[T] {
	return &listStack[T]{Lists.NewDList[T]()}
}

func (this *listStack[T]) Empty() bool {
	return this.l.Empty()
}

func (this *listStack[T]) Push(item T) {
	this.l.PushBack(item)
}

func (this *listStack[T]) Pop() (T, error) {
	v, err := this.l.PopBack()
	if err != nil {
		return v, &EmptyStackError{}
	}
	return v, nil
}

func (this *listStack[T]) Peek() (item T) {
	if this.l.Empty() {
		return *new(T)
	}
	return this.l.Back()
}
