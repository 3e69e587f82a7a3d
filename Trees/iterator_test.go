package Trees

import (
	"slices"
	"testing"
)

func TestIterator_Stability(t *testing.T) {
	tree := From(50, 25, 75)
	it := tree.Find(25)
	for i := 0; i < 100; i++ {
		tree.Insert(rg.Intn(1000))
	}
	// insertion never invalidates iterators: node identity is stable
	if !it.Valid() || it.Get() != 25 || !it.Eq(tree.Find(25)) {
		t.Error("iterator invalidated by insertions")
	}
	tree.check(t)
}

func TestIterator_Valid(t *testing.T) {
	tree := From(1, 2)
	if tree.End(InOrder).Valid() {
		t.Error("End is valid")
	}
	if !tree.Begin(InOrder).Valid() {
		t.Error("Begin of non empty tree isn't valid")
	}
	if tree.Find(3).Valid() {
		t.Error("Find of an absent key is valid")
	}
	var zero Iterator[int]
	if zero.Valid() {
		t.Error("zero iterator is valid")
	}
}

func TestIterator_EqAcrossOrders(t *testing.T) {
	tree := From(2, 1, 3)
	// equality compares node identity only, not order or direction
	if !tree.Begin(PreOrder).Eq(tree.Root()) {
		t.Error("pre-order Begin isn't the root")
	}
	if !tree.End(InOrder).Eq(tree.End(PostOrder)) {
		t.Error("End positions differ across orders")
	}
	if !tree.REnd(InOrder).Eq(tree.End(InOrder)) {
		t.Error("REnd isn't the sentinel position")
	}
}

// hinted insertion with adjacent hints must place elements without a
// root descent; exercised here only for correctness of placement.
func TestBSTree_InsertAtAdjacent(t *testing.T) {
	tree := From(10, 20, 30, 40)
	// 25 belongs right of the hint 20 (successor 30 bounds it)
	it, ok := tree.InsertAt(tree.Find(20), 25)
	if !ok || it.Get() != 25 {
		t.Error("hinted insert right of hint failed")
	}
	// 13 belongs left of the hint 20 (predecessor 10 bounds it)
	if _, ok = tree.InsertAt(tree.Find(20), 13); !ok {
		t.Error("hinted insert left of hint failed")
	}
	if got := tree.iterate(InOrder); !slices.Equal(got, []int{10, 13, 20, 25, 30, 40}) {
		t.Errorf("in-order is %v", got)
	}
	tree.check(t)
}

// non-adjacent hints must activate the full-lookup fallback instead of
// silently misplacing the element.
func TestBSTree_InsertAtFarHint(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 50; i++ {
		tree.Insert(i * 10)
	}
	hints := []Iterator[int]{
		tree.Find(480), // far right of every insert below
		tree.Find(0),   // the minimum
		tree.End(InOrder),
		tree.Root(),
	}
	for i, h := range hints {
		v := 15 + i // between 10 and 20, nowhere near the hints
		if _, ok := tree.InsertAt(h, v); !ok {
			t.Errorf("hinted insert of %d with far hint failed", v)
		}
		if !tree.Contains(v) {
			t.Errorf("%d misplaced by far hint", v)
		}
	}
	tree.check(t)
	if got := tree.iterate(InOrder); !slices.IsSorted(got) {
		t.Error("far hints corrupted the ordering")
	}
}

func TestBSTree_InsertAtDuplicate(t *testing.T) {
	tree := From(10, 20, 30)
	sz := tree.Size()
	for _, hint := range []Iterator[int]{tree.Find(20), tree.Find(30), tree.End(InOrder)} {
		it, ok := tree.InsertAt(hint, 20)
		if ok || !it.Eq(tree.Find(20)) {
			t.Error("hinted duplicate insert didn't return the resident node")
		}
	}
	if tree.Size() != sz {
		t.Error("hinted duplicate insert changed the size")
	}
}

// randomized agreement between hinted and plain insertion, with hints
// drawn from arbitrary positions.
func TestBSTree_InsertAtRandom(t *testing.T) {
	hinted, plain := New[int](), New[int]()
	hint := hinted.End(InOrder)
	for i := 0; i < 2000; i++ {
		v := rg.Intn(4000)
		hint, _ = hinted.InsertAt(hint, v)
		plain.Insert(v)
	}
	hinted.check(t)
	if !slices.Equal(hinted.iterate(InOrder), plain.iterate(InOrder)) {
		t.Error("hinted insertion produced different contents than plain")
	}
}

// ascending insertion through the max fast path must stay O(1)-adjacent
// and correct.
func TestBSTree_InsertAscending(t *testing.T) {
	tree := New[int]()
	it := tree.End(InOrder)
	for i := 0; i < 1000; i++ {
		it, _ = tree.InsertAt(it, i)
	}
	if tree.Size() != 1000 {
		t.Errorf("size is %d", tree.Size())
	}
	if mi, _ := tree.Minimum(); mi != 0 {
		t.Errorf("minimum is %v", mi)
	}
	if ma, _ := tree.Maximum(); ma != 999 {
		t.Errorf("maximum is %v", ma)
	}
	tree.check(t)
}

func TestBSTree_Rotations(t *testing.T) {
	//   2            1
	//  1 3  <-->    x 2
	//                  3
	tree := From(2, 1, 3)
	in := tree.iterate(InOrder)
	tree.RotateRight(tree.Root())
	if r := tree.Root(); r.Get() != 1 {
		t.Errorf("root after right rotation is %v", r.Get())
	}
	if !slices.Equal(tree.iterate(InOrder), in) {
		t.Error("right rotation changed the in-order sequence")
	}
	tree.check(t)
	tree.RotateLeft(tree.Root())
	if r := tree.Root(); r.Get() != 2 {
		t.Errorf("root after left rotation is %v", r.Get())
	}
	tree.check(t)
	// rotation with a missing child is a no-op
	tree.RotateLeft(tree.Find(3))
	tree.check(t)
}

func TestBSTree_DoubleRotations(t *testing.T) {
	// left-right: pivot 5 with left 1 carrying right child 3
	tree := From(5, 1, 3, 6)
	tree.RotateLeftRight(tree.Find(5))
	if r := tree.Root(); r.Get() != 3 {
		t.Errorf("root after left-right rotation is %v", r.Get())
	}
	if got := tree.iterate(InOrder); !slices.Equal(got, []int{1, 3, 5, 6}) {
		t.Errorf("in-order is %v", got)
	}
	tree.check(t)

	// right-left: pivot 2 with right 6 carrying left child 4
	tree = From(2, 1, 6, 4)
	tree.RotateRightLeft(tree.Find(2))
	if r := tree.Root(); r.Get() != 4 {
		t.Errorf("root after right-left rotation is %v", r.Get())
	}
	tree.check(t)

	// with the relevant child missing both composites are no-ops, same
	// as the singles; neither may touch the sentinel's links.
	tree = From(5, 8)
	tree.RotateLeftRight(tree.Root())
	if got := tree.iterate(InOrder); !slices.Equal(got, []int{5, 8}) {
		t.Errorf("in-order after no-op left-right is %v", got)
	}
	tree.check(t)
	tree = From(5, 2)
	tree.RotateRightLeft(tree.Root())
	if got := tree.iterate(InOrder); !slices.Equal(got, []int{2, 5}) {
		t.Errorf("in-order after no-op right-left is %v", got)
	}
	tree.check(t)
}

// rotations at a non-root pivot must retarget the pivot's original
// parent link.
func TestBSTree_RotationDeep(t *testing.T) {
	tree := From(50, 20, 10, 30, 80)
	tree.RotateRight(tree.Find(20))
	if r := tree.Root(); r.Get() != 50 {
		t.Error("deep rotation moved the root")
	}
	if got := tree.iterate(InOrder); !slices.Equal(got, []int{10, 20, 30, 50, 80}) {
		t.Errorf("in-order is %v", got)
	}
	tree.check(t)
}

func TestBSTree_HeightOf(t *testing.T) {
	tree := From(5, 3, 8, 1, 4)
	if h := tree.HeightOf(tree.Root()); h != 3 {
		t.Errorf("height of root is %d", h)
	}
	if h := tree.HeightOf(tree.Find(3)); h != 2 {
		t.Errorf("height of 3 is %d", h)
	}
	if h := tree.HeightOf(tree.Find(1)); h != 1 {
		t.Errorf("height of leaf is %d", h)
	}
	if h := tree.HeightOf(tree.End(InOrder)); h != 0 {
		t.Errorf("height of End is %d", h)
	}
}

// removal of the current node doesn't invalidate its precomputed
// successor: walk and remove every other element through the iterator.
func TestBSTree_RemoveAtWhileIterating(t *testing.T) {
	tree := New[int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}
	odd := true
	for it := tree.Begin(InOrder); !it.Eq(tree.End(InOrder)); {
		if odd {
			it = tree.RemoveAt(it)
		} else {
			it = it.Next()
		}
		odd = !odd
	}
	if tree.Size() != 50 {
		t.Errorf("size is %d", tree.Size())
	}
	tree.check(t)
}
