package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares with https://github.com/emirpasic/gods,
// https://github.com/google/btree and https://github.com/petar/GoLLRB.
// The rivals self balance, so expect them to win on sorted insertion
// orders where an unbalanced tree degenerates to a list.

const (
	bAddN = 1 << 15
	iter  = 4
)

func bKeys() []int {
	a := make([]int, bAddN)
	for i := range a {
		a[i] = rg.Int()
	}
	return a
}

func BenchmarkBSTree_Insert(b *testing.B) {
	a := bKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, v := range a {
			tree.Insert(v)
		}
	}
}

func BenchmarkRBTree_Insert(b *testing.B) {
	a := bKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rbt := redblacktree.NewWithIntComparator()
		for _, v := range a {
			rbt.Put(v, nil)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	a := bKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bt := btree.NewOrderedG[int](32)
		for _, v := range a {
			bt.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	a := bKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lt := llrb.New()
		for _, v := range a {
			lt.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkBSTree_Has(b *testing.B) {
	a := bKeys()
	tree := New[int]()
	for _, v := range a {
		tree.Insert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range a[:bAddN/iter] {
			tree.Contains(v)
		}
	}
}

func BenchmarkRBTree_Has(b *testing.B) {
	a := bKeys()
	rbt := redblacktree.NewWithIntComparator()
	for _, v := range a {
		rbt.Put(v, nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range a[:bAddN/iter] {
			rbt.Get(v)
		}
	}
}

func BenchmarkBTree_Has(b *testing.B) {
	a := bKeys()
	bt := btree.NewOrderedG[int](32)
	for _, v := range a {
		bt.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range a[:bAddN/iter] {
			bt.Has(v)
		}
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	a := bKeys()
	lt := llrb.New()
	for _, v := range a {
		lt.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range a[:bAddN/iter] {
			lt.Has(llrb.Int(v))
		}
	}
}

func BenchmarkBSTree_Remove(b *testing.B) {
	a := bKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := New[int]()
		for _, v := range a {
			tree.Insert(v)
		}
		b.StartTimer()
		for _, v := range a {
			tree.Remove(v)
		}
	}
}

func BenchmarkRBTree_Remove(b *testing.B) {
	a := bKeys()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		rbt := redblacktree.NewWithIntComparator()
		for _, v := range a {
			rbt.Put(v, nil)
		}
		b.StartTimer()
		for _, v := range a {
			rbt.Remove(v)
		}
	}
}

func BenchmarkBSTree_Iterate(b *testing.B) {
	a := bKeys()
	tree := New[int]()
	for _, v := range a {
		tree.Insert(v)
	}
	b.ResetTimer()
	var sideEff int
	for i := 0; i < b.N; i++ {
		for it := tree.Begin(InOrder); !it.Eq(tree.End(InOrder)); it = it.Next() {
			sideEff = it.Get()
		}
	}
	_ = sideEff
}

func BenchmarkBTree_Iterate(b *testing.B) {
	a := bKeys()
	bt := btree.NewOrderedG[int](32)
	for _, v := range a {
		bt.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	var sideEff int
	for i := 0; i < b.N; i++ {
		bt.Ascend(func(v int) bool {
			sideEff = v
			return true
		})
	}
	_ = sideEff
}
