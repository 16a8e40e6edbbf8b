package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/sparse"
)

func TestInsertRemoveContains(t *testing.T) {
	s := sparse.New(10)
	require.False(t, s.Contains(3))
	s.Insert(3)
	s.Insert(5)
	require.True(t, s.Contains(3))
	require.True(t, s.Contains(5))
	require.Equal(t, 2, s.Len())

	s.Remove(3)
	require.False(t, s.Contains(3))
	require.True(t, s.Contains(5))
	require.Equal(t, 1, s.Len())
}

func TestInsertIdempotent(t *testing.T) {
	s := sparse.New(4)
	s.Insert(1)
	s.Insert(1)
	require.Equal(t, 1, s.Len())
}

func TestForEachRemovalDuringScan(t *testing.T) {
	s := sparse.New(5)
	for _, v := range []int{0, 1, 2, 3, 4} {
		s.Insert(v)
	}
	seen := map[int]bool{}
	s.ForEach(func(v int) {
		seen[v] = true
		if v%2 == 0 {
			s.Remove(v)
		}
	})
	require.Len(t, seen, 5)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(3))
}

func TestClearAndSlice(t *testing.T) {
	s := sparse.New(3)
	s.Insert(0)
	s.Insert(2)
	require.ElementsMatch(t, []int{0, 2}, s.Slice())
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(0))
}
