package Trees

// Order selects one of the four classical traversal sequences over a
// binary tree. It parameterizes Begin/End/RBegin/REnd and the movement
// of the Iterators they return.
type Order byte

const (
	//InOrder visits left subtree, node, right subtree. For a search
	//tree this is ascending order under the tree's comparator.
	InOrder Order = iota
	//PreOrder visits node, left subtree, right subtree.
	PreOrder
	//PostOrder visits left subtree, right subtree, node.
	PostOrder
	//LevelOrder is the breadth first sequence. It is not implemented:
	//touching a non empty tree in this order panics with
	//NotImplementedError. Begin(LevelOrder)==End(LevelOrder) still
	//holds on an empty tree.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown order"
}

// Tree represents a tree like structure implemented using nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false). In this case
// the value of x should be undefined and shouldn't be used.
// If an implementation didn't specify anything special, then the
// implemented receivers follow the behaviors defined here.
type Tree[T any] interface {
	//Contains reports whether an element equivalent to v is in the tree.
	Contains(v T) bool
	//Remove v from the Tree. Returning true if an element was removed.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//IsEmpty is equivalent to Size()==0.
	IsEmpty() bool
	//Clear removes all elements.
	Clear()
}

// NotImplementedError is the failure raised by the traversal engine for
// operations the base tree deliberately leaves unimplemented, currently
// only level-order stepping. It is a hard failure, not user error.
type NotImplementedError struct {
	Op string
}

func (e NotImplementedError) Error() string {
	return e.Op + ": not implemented"
}

// InvalidSliceError reports a violation of the sorted-set precondition
// of Build: somewhere in the slice L0<V or V<R1 doesn't hold.
type InvalidSliceError struct {
	L0, V0, V1, R1 any
}

func (e InvalidSliceError) Error() string {
	return "slice isn't a sorted set"
}
