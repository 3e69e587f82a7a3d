package Sets

import (
	"golang.org/x/exp/constraints"

	"github.com/d-h-phan/go-stl/Trees"
)

// TreeSet is an ordered Set adapter over Trees.BSTree. Range visits
// elements in ascending order and Take removes the minimum. All
// per-element receivers are O(D) on the underlying tree's height.
type TreeSet[E any] struct {
	t *Trees.BSTree[E]
}

// NewTreeSet returns a TreeSet under the natural order of E.
func NewTreeSet[E constraints.Ordered]() *TreeSet[E] {
	return &TreeSet[E]{Trees.New[E]()}
}

// NewTreeSetFunc returns a TreeSet under the given three way comparator.
func NewTreeSetFunc[E any](cmp func(a, b E) int) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewFunc[E](cmp)}
}

// Put [Set.Put]. False when an equivalent element is already present.
func (u *TreeSet[E]) Put(e E) bool {
	_, ok := u.t.Insert(e)
	return ok
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Contains(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take removes and returns the minimum element.
func (u *TreeSet[E]) Take() (E, bool) {
	v, ok := u.t.Minimum()
	if ok {
		u.t.Remove(v)
	}
	return v, ok
}

// Range calls f on each element in ascending order until f returns
// false. The set must not be modified during the iteration.
func (u *TreeSet[E]) Range(f func(E) bool) {
	for it := u.t.Begin(Trees.InOrder); !it.Eq(u.t.End(Trees.InOrder)); it = it.Next() {
		if !f(it.Get()) {
			break
		}
	}
}
