package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 7, 7}, 7))
	require.Equal(t, -1, FindIndex([]string{"a"}, "b"))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestMaximal(t *testing.T) {
	identity := func(v float64) float64 { return v }

	require.Equal(t, []float64{5, 5}, Maximal([]float64{1, 5, 3, 5}, identity))
	require.Empty(t, Maximal(nil, identity))

	t.Run("keeps candidates at negative infinity", func(t *testing.T) {
		forbidden := []string{"North", "South"}
		got := Maximal(forbidden, func(string) float64 { return math.Inf(-1) })
		require.Equal(t, forbidden, got)
	})

	t.Run("NaN never wins", func(t *testing.T) {
		scores := map[string]float64{"North": math.NaN(), "South": 1, "East": math.NaN()}
		got := Maximal([]string{"North", "South", "East"}, func(a string) float64 { return scores[a] })
		require.Equal(t, []string{"South"}, got)

		all := Maximal([]string{"North", "East"}, func(string) float64 { return math.NaN() })
		require.Equal(t, []string{"North", "East"}, all)
	})
}
