package Trees

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// direction of a child slot relative to a parent, as produced by locate.
type direction int8

const (
	dirNone direction = iota
	dirLeft
	dirRight
)

// Hooks are the rebalancing callbacks a self-balancing extension
// injects into a BSTree. Each is invoked after the structural change
// completes, with the tree and the position of the affected element
// (for AfterRemove, the position following the removed one). The base
// tree performs no balancing of its own; combined with the rotation
// receivers these replace subclass overrides.
type Hooks[T any] struct {
	AfterInsert func(*BSTree[T], Iterator[T])
	AfterRemove func(*BSTree[T], Iterator[T])
}

// BSTree is an unbalanced binary search tree with no repeated values:
// for every node, all values in its left subtree compare less and all
// in its right subtree compare greater under the injected three way
// comparator. T is the type of values it will hold.
// The tree is anchored on a single sentinel node (see nodePtr) whose
// left/right cache the minimum/maximum for O(1) bound access. The worst
// case height D is O(n) for pathological insertion orders since the
// base tree never rebalances; on random input D is O(log n).
// Not safe for concurrent use; external synchronization is the
// caller's responsibility.
type BSTree[T any] struct {
	bstBase[T]
	hooks Hooks[T]
}

// New returns an empty BSTree ordered by the natural < of T.
// BSTree shouldn't be created directly using a struct literal.
func New[T constraints.Ordered]() *BSTree[T] {
	return NewFunc[T](compare[T])
}

// NewFunc returns an empty BSTree ordered by cmp, which must implement
// a strict weak order: negative when a<b, zero when equivalent,
// positive when a>b.
func NewFunc[T any](cmp func(a, b T) int) *BSTree[T] {
	u := new(BSTree[T])
	u.init(cmp)
	return u
}

// NewWithHooks is NewFunc with rebalancing callbacks attached.
func NewWithHooks[T any](cmp func(a, b T) int, h Hooks[T]) *BSTree[T] {
	u := NewFunc[T](cmp)
	u.hooks = h
	return u
}

// From builds a BSTree by inserting each value in order; on duplicates
// the first occurrence wins.
// Time: O(n*D)
func From[T constraints.Ordered](values ...T) *BSTree[T] {
	u := New[T]()
	u.InsertAll(values...)
	return u
}

// Build constructs a balanced BSTree from the given slice recursively.
// This is faster than repeatedly calling Insert. The slice must be
// sorted in ascending order and mustn't contain duplicate elements.
// If safe==true, this function checks the conditions and panics with
// InvalidSliceError when they are broken; otherwise the check is
// skipped and it is up to the caller to ensure them (the tree will be
// corrupt if not).
// Time: O(n)
func Build[T constraints.Ordered](sli []T, safe bool) *BSTree[T] {
	u := New[T]()
	if len(sli) == 0 {
		return u
	}
	var build func([]T, nodePtr[T]) nodePtr[T]
	if safe {
		build = func(s []T, p nodePtr[T]) nodePtr[T] {
			if len(s) == 0 {
				return u.s
			}
			mid := len(s) >> 1
			n := &node[T]{v: s[mid], p: p}
			n.l, n.r = build(s[0:mid], n), build(s[mid+1:], n)
			if (u.isNil(n.l) || n.l.v < s[mid]) && (u.isNil(n.r) || s[mid] < n.r.v) {
				return n
			}
			panic(InvalidSliceError{n.l.v, s[mid], s[mid], n.r.v})
		}
	} else {
		build = func(s []T, p nodePtr[T]) nodePtr[T] {
			if len(s) == 0 {
				return u.s
			}
			mid := len(s) >> 1
			n := &node[T]{v: s[mid], p: p}
			n.l, n.r = build(s[0:mid], n), build(s[mid+1:], n)
			return n
		}
	}
	u.s.p = build(sli, u.s)
	u.s.l, u.s.r = u.minOf(u.root()), u.maxOf(u.root())
	u.sz = uint(len(sli))
	return u
}

func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if b < a {
		return 1
	}
	return 0
}

// Size [Tree.Size].
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// IsEmpty [Tree.IsEmpty].
func (u *BSTree[T]) IsEmpty() bool {
	return u.sz == 0
}

// Clear [Tree.Clear]. The whole tree is discarded at once, no per node
// relink bookkeeping.
// Time: O(1)
func (u *BSTree[T]) Clear() {
	u.s.p, u.s.l, u.s.r = u.s, u.s, u.s
	u.sz = 0
}

// locate descends from the root comparing v at each step. A found
// element is returned with dirNone; otherwise the returned node is the
// parent under which v belongs and the direction names its empty child
// slot. On an empty tree the sentinel is returned with dirNone.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) locate(v T) (nodePtr[T], direction) {
	p, d := u.s, dirNone
	for c := u.root(); !u.isNil(c); {
		if r := u.cmp(v, c.v); r < 0 {
			p, d, c = c, dirLeft, c.l
		} else if r > 0 {
			p, d, c = c, dirRight, c.r
		} else {
			return c, dirNone
		}
	}
	return p, d
}

// linkAt attaches the fresh node n under parent p in direction d,
// updating the sentinel's root/min/max caches.
func (u *BSTree[T]) linkAt(p nodePtr[T], d direction, n nodePtr[T]) {
	n.p, n.l, n.r = p, u.s, u.s
	if p == u.s {
		u.s.p, u.s.l, u.s.r = n, n, n
	} else if d == dirLeft {
		p.l = n
		if p == u.s.l {
			u.s.l = n
		}
	} else {
		p.r = n
		if p == u.s.r {
			u.s.r = n
		}
	}
	u.sz++
	if u.hooks.AfterInsert != nil {
		u.hooks.AfterInsert(u, Iterator[T]{u, n, InOrder, false})
	}
}

// Insert v into the tree. A duplicate is not an error: the position of
// the resident equivalent element is returned with false and the tree
// is unchanged.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) (Iterator[T], bool) {
	n, ok := u.insert(nil, v)
	return Iterator[T]{u, n, InOrder, false}, ok
}

// InsertAt is Insert with a caller supplied position hint. A hint
// adjacent to v's ordered position short-circuits the root lookup:
// only the hint's immediate in-order neighbor on v's side is examined,
// anything further falls back to a full descent. An invalid or
// root hint falls back immediately.
// Time: O(1) for an adjacent hint, O(D) otherwise.
func (u *BSTree[T]) InsertAt(hint Iterator[T], v T) (Iterator[T], bool) {
	var h nodePtr[T]
	if hint.t == u {
		h = hint.n
	}
	n, ok := u.insert(h, v)
	return Iterator[T]{u, n, InOrder, false}, ok
}

// InsertAll inserts each value in order, first occurrence winning on
// duplicates. Returns the position of the last processed value (End
// when called with none) and the number actually inserted.
func (u *BSTree[T]) InsertAll(values ...T) (Iterator[T], uint) {
	last, c := u.s, uint(0)
	for _, v := range values {
		var ok bool
		if last, ok = u.insert(nil, v); ok {
			c++
		}
	}
	return Iterator[T]{u, last, InOrder, false}, c
}

// insert places v with an optional hint node, returning the resident
// node and whether a new one was linked.
func (u *BSTree[T]) insert(h nodePtr[T], v T) (nodePtr[T], bool) {
	if u.isNil(u.root()) {
		n := &node[T]{v: v}
		u.linkAt(u.s, dirNone, n)
		return n, true
	}
	// sentinel-cached bound fast paths
	if r := u.cmp(v, u.s.l.v); r < 0 {
		n := &node[T]{v: v}
		u.linkAt(u.s.l, dirLeft, n)
		return n, true
	} else if r == 0 {
		return u.s.l, false
	}
	if r := u.cmp(v, u.s.r.v); r > 0 {
		n := &node[T]{v: v}
		u.linkAt(u.s.r, dirRight, n)
		return n, true
	} else if r == 0 {
		return u.s.r, false
	}
	if !u.isNil(h) && h != u.root() {
		if n, ok, decided := u.insertNear(h, v); decided {
			return n, ok
		}
	}
	p, d := u.locate(v)
	if d == dirNone {
		return p, false
	}
	n := &node[T]{v: v}
	u.linkAt(p, d, n)
	return n, true
}

// insertNear tries to place v against hint h by examining only h's
// immediate in-order neighbor on v's side. decided==false means the
// hint was not adjacent to v's position and the caller must fall back
// to a full lookup.
func (u *BSTree[T]) insertNear(h nodePtr[T], v T) (n nodePtr[T], ok, decided bool) {
	c := u.cmp(v, h.v)
	if c == 0 {
		return h, false, true
	}
	if c < 0 {
		pr := u.prevInOrder(h)
		if u.isNil(pr) { // h is the minimum; bound fast path already ruled v<min out
			return nil, false, false
		}
		switch pc := u.cmp(v, pr.v); {
		case pc == 0:
			return pr, false, true
		case pc > 0: // pr < v < h: exactly one of the two slots is free
			n = &node[T]{v: v}
			if u.isNil(h.l) {
				u.linkAt(h, dirLeft, n)
			} else {
				u.linkAt(pr, dirRight, n)
			}
			return n, true, true
		}
		return nil, false, false
	}
	sc := u.nextInOrder(h)
	if u.isNil(sc) {
		return nil, false, false
	}
	switch scc := u.cmp(v, sc.v); {
	case scc == 0:
		return sc, false, true
	case scc < 0: // h < v < sc
		n = &node[T]{v: v}
		if u.isNil(h.r) {
			u.linkAt(h, dirRight, n)
		} else {
			u.linkAt(sc, dirLeft, n)
		}
		return n, true, true
	}
	return nil, false, false
}

// Find the position of the element equivalent to v, or End(InOrder)
// when absent.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) Iterator[T] {
	n, d := u.locate(v)
	if d != dirNone || u.isNil(n) {
		n = u.s
	}
	return Iterator[T]{u, n, InOrder, false}
}

// Contains [Tree.Contains].
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Contains(v T) bool {
	n, d := u.locate(v)
	return d == dirNone && !u.isNil(n)
}

// Remove [Tree.Remove].
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	n, d := u.locate(v)
	if d != dirNone || u.isNil(n) {
		return false
	}
	u.removeNode(n)
	if u.hooks.AfterRemove != nil {
		u.hooks.AfterRemove(u, Iterator[T]{u, u.s, InOrder, false})
	}
	return true
}

// RemoveAt removes the node at it and returns the position following
// it in its traversal order, computed before the structural removal so
// the returned iterator is valid afterwards. Removing End is undefined
// behavior: no bounds check is performed.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) RemoveAt(it Iterator[T]) Iterator[T] {
	var next nodePtr[T]
	if it.rev {
		next = u.prev(it.n, it.ord)
	} else {
		next = u.next(it.n, it.ord)
	}
	u.removeNode(it.n)
	r := Iterator[T]{u, next, it.ord, it.rev}
	if u.hooks.AfterRemove != nil {
		u.hooks.AfterRemove(u, r)
	}
	return r
}

// RemoveRange removes [begin, end) in increasing iteration order and
// returns the position following the removed range. Removal of the
// current node never invalidates its precomputed successor, which
// RemoveAt relies on.
func (u *BSTree[T]) RemoveRange(begin, end Iterator[T]) Iterator[T] {
	it := begin
	for !it.Eq(end) {
		it = u.RemoveAt(it)
	}
	return it
}

// removeNode unlinks n by degree, maintaining the sentinel's
// root/min/max caches.
func (u *BSTree[T]) removeNode(n nodePtr[T]) {
	if u.sz == 1 { // sole node
		u.s.p, u.s.l, u.s.r = u.s, u.s, u.s
		u.sz = 0
		return
	}
	switch u.degree(n) {
	case 0: // detach; a removed bound's parent is the new bound
		if n == u.s.l {
			u.s.l = n.p
		}
		if n == u.s.r {
			u.s.r = n.p
		}
		u.retarget(n, u.s)
	case 1: // the child takes n's position
		c := n.l
		if u.isNil(c) {
			c = n.r
		}
		if n == u.s.l {
			u.s.l = u.minOf(c)
		}
		if n == u.s.r {
			u.s.r = u.maxOf(c)
		}
		u.retarget(n, c)
	default: // degree 2: splice the in-order predecessor into n's position
		// The predecessor has no right child, so its own removal is a
		// degree<=1 case; bounds are untouched since a degree 2 node is
		// neither minimum nor maximum.
		pr := u.maxOf(n.l)
		if pr.p != n {
			u.retarget(pr, pr.l)
			pr.l = n.l
			pr.l.p = pr
		}
		u.retarget(n, pr)
		pr.r = n.r
		pr.r.p = pr
	}
	u.sz--
}

// Minimum [Tree.Minimum]. O(1) off the sentinel's bound cache.
func (u *BSTree[T]) Minimum() (T, bool) {
	return u.s.l.v, !u.isNil(u.s.l)
}

// Maximum [Tree.Maximum]. O(1) off the sentinel's bound cache.
func (u *BSTree[T]) Maximum() (T, bool) {
	return u.s.r.v, !u.isNil(u.s.r)
}

// Root position of the tree, or End when empty. The root is a valid
// hint and rotation pivot.
func (u *BSTree[T]) Root() Iterator[T] {
	return Iterator[T]{u, u.root(), InOrder, false}
}

// HeightOf the subtree rooted at it, counted in nodes: 0 for End, 1
// for a leaf. Recursive.
// Time: O(n)
func (u *BSTree[T]) HeightOf(it Iterator[T]) uint {
	return u.heightOf(it.n)
}

// RotateLeft applies a left rotation at the pivot position. See
// leftRotation; never used by BSTree itself.
func (u *BSTree[T]) RotateLeft(at Iterator[T]) {
	u.leftRotation(at.n)
}

// RotateRight applies a right rotation at the pivot position.
func (u *BSTree[T]) RotateRight(at Iterator[T]) {
	u.rightRotation(at.n)
}

// RotateLeftRight applies the left-right double rotation at the pivot.
func (u *BSTree[T]) RotateLeftRight(at Iterator[T]) {
	u.leftRightRotation(at.n)
}

// RotateRightLeft applies the right-left double rotation at the pivot.
func (u *BSTree[T]) RotateRightLeft(at Iterator[T]) {
	u.rightLeftRotation(at.n)
}

// Clone deep-copies u by iterating it in post-order and reinserting
// every element, so the copy has identical contents though not
// necessarily identical shape.
// Time: O(n*D)
func (u *BSTree[T]) Clone() *BSTree[T] {
	c := NewWithHooks[T](u.cmp, u.hooks)
	for it := u.Begin(PostOrder); !it.Eq(u.End(PostOrder)); it = it.Next() {
		c.insert(nil, it.Get())
	}
	return c
}

// Encode writes u as its pre-order traversal: the size then each
// element space separated, newline terminated. Textual, non versioned.
func (u *BSTree[T]) Encode(w io.Writer) error {
	if _, err := fmt.Fprint(w, u.sz); err != nil {
		return err
	}
	for it := u.Begin(PreOrder); !it.Eq(u.End(PreOrder)); it = it.Next() {
		if _, err := fmt.Fprint(w, " ", it.Get()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Decode reads the Encode format, inserting each element read into u
// in turn. Duplicates in the input (against u's existing contents or
// within the stream) are silently absorbed per insertion semantics, so
// the resulting size may be smaller than the encoded one.
func (u *BSTree[T]) Decode(r io.Reader) error {
	var n uint
	if _, err := fmt.Fscan(r, &n); err != nil {
		return err
	}
	for i := uint(0); i < n; i++ {
		var v T
		if _, err := fmt.Fscan(r, &v); err != nil {
			return err
		}
		u.insert(nil, v)
	}
	return nil
}

// Fprint dumps the tree structure to w for debugging, one node per
// line indented by depth.
func (u *BSTree[T]) Fprint(w io.Writer) {
	var dump func(nodePtr[T], int)
	dump = func(n nodePtr[T], d int) {
		if u.isNil(n) {
			return
		}
		fmt.Fprintf(w, "%*snode %v\n", d*2, "", n.v)
		dump(n.l, d+1)
		dump(n.r, d+1)
	}
	dump(u.root(), 0)
}
