package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuartilePairsAdjacentQuartiles(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicyQuartile, freshField(8)))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}, {5, 7}, {6, 8}}, pairList(round),
		"first quartile meets second, third meets fourth")
}

func TestQuartileUnevenQuartiles(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicyQuartile, freshField(10)))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 4}, {2, 5}, {3, 6}, {7, 9}, {8, 10}}, pairList(round),
		"the remainder stays with the upper block")
}

func TestQuartileOddFieldTakesBye(t *testing.T) {
	round, err := GeneratePairings(testParams(PolicyQuartile, freshField(9)))
	require.NoError(t, err)
	require.NotNil(t, round.Bye)
	require.Equal(t, 9, *round.Bye)
	require.Equal(t, [][2]int{{1, 3}, {2, 4}, {5, 7}, {6, 8}}, pairList(round))
}
