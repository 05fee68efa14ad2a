package pairing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManualPassThrough(t *testing.T) {
	params := testParams(PolicyManual, freshField(6))
	params.Manual = [][2]int{{2, 5}, {1, 6}, {3, 4}}
	params.Ledger = NewRematchLedger([]PlayedMatch{{Round: 1, P1: 1, P2: 6}})

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.Nil(t, round.Bye)
	require.Equal(t, [][2]int{{2, 5}, {1, 6}, {3, 4}}, pairList(round),
		"director pairs keep their submitted order")
	require.False(t, round.Matches[0].Rematch)
	require.True(t, round.Matches[1].Rematch)
}

func TestManualOddFieldBye(t *testing.T) {
	params := testParams(PolicyManual, freshField(5))
	params.Manual = [][2]int{{1, 5}, {3, 4}}

	round, err := GeneratePairings(params)
	require.NoError(t, err)
	require.NotNil(t, round.Bye)
	require.Equal(t, 2, *round.Bye, "the competitor left out of the pairs sits out")
}

func TestManualValidation(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]int
	}{
		{name: "too few pairs", pairs: [][2]int{{1, 2}, {3, 4}}},
		{name: "too many pairs", pairs: [][2]int{{1, 2}, {3, 4}, {5, 6}, {1, 3}}},
		{name: "self pair", pairs: [][2]int{{1, 1}, {2, 3}, {4, 5}}},
		{name: "unknown competitor", pairs: [][2]int{{1, 9}, {2, 3}, {4, 5}}},
		{name: "competitor paired twice", pairs: [][2]int{{1, 2}, {2, 3}, {4, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams(PolicyManual, freshField(6))
			params.Manual = tt.pairs

			_, err := GeneratePairings(params)
			require.ErrorIs(t, err, ErrDataIntegrity)
		})
	}
}
