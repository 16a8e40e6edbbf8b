package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/bitset"
)

func TestSetInsertRemoveTest(t *testing.T) {
	s := bitset.New(130)
	require.False(t, s.Test(0))
	s.Insert(0)
	s.Insert(63)
	s.Insert(64)
	s.Insert(129)
	require.True(t, s.Test(0))
	require.True(t, s.Test(63))
	require.True(t, s.Test(64))
	require.True(t, s.Test(129))
	require.Equal(t, 4, s.Count())

	s.Remove(64)
	require.False(t, s.Test(64))
	require.Equal(t, 3, s.Count())
}

func TestIntersectCount(t *testing.T) {
	a := bitset.New(10)
	b := bitset.New(10)
	for _, v := range []int{1, 2, 3, 4} {
		a.Insert(v)
	}
	for _, v := range []int{3, 4, 5, 6} {
		b.Insert(v)
	}
	require.Equal(t, 2, a.IntersectCount(b))
}

func TestForEachSliceOrder(t *testing.T) {
	s := bitset.New(200)
	expect := []int{2, 5, 64, 127, 199}
	for _, v := range expect {
		s.Insert(v)
	}
	require.Equal(t, expect, s.Slice())
}

func TestCloneIndependence(t *testing.T) {
	a := bitset.New(5)
	a.Insert(1)
	b := a.Clone()
	b.Insert(2)
	require.False(t, a.Test(2))
	require.True(t, b.Test(2))
}
