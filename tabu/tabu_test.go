package tabu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphsolve/dogscolor/tabu"
)

func TestInsertMakesKeyTabuImmediately(t *testing.T) {
	ten := tabu.New[int](10, 0.6, 1)
	ten.Insert(5, 3)
	require.True(t, ten.Contains(5))
	require.False(t, ten.Contains(6))
}

func TestTabuExpiresAfterThreshold(t *testing.T) {
	ten := tabu.New[int](0, 0, 1) // L=0, lambda=0 => threshold always 0
	ten.Insert(5, 0)
	require.True(t, ten.Contains(5)) // last==iter, still tabu at same iter
	ten.BumpIter()
	require.False(t, ten.Contains(5)) // one iteration later, threshold 0 => expired
}

func TestHigherInfeasibilityWidensWindow(t *testing.T) {
	ten := tabu.New[int](0, 10, 1) // lambda large => long tenure
	ten.Insert(5, 5)
	for i := 0; i < 20; i++ {
		ten.BumpIter()
	}
	require.True(t, ten.Contains(5))
}

func TestDeterministicWithSameSeed(t *testing.T) {
	a := tabu.New[int](10, 0.6, 42)
	b := tabu.New[int](10, 0.6, 42)
	a.Insert(1, 2)
	b.Insert(1, 2)
	require.Equal(t, a.Contains(1), b.Contains(1))
}
