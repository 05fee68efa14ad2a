package pairing

import (
	"fmt"
	"sort"
)

// roundRobinStrategy derives round N of the classic circle schedule: seat one
// is fixed, every other seat rotates one step per round. The schedule depends
// only on the seed order (rating, then id), never on results, so every pair
// meets exactly once across N-1 rounds (N rounds when the field is odd and a
// dummy seat hands out the byes).
type roundRobinStrategy struct{}

func (roundRobinStrategy) Name() string { return "round-robin" }

func (roundRobinStrategy) Version() int { return 1 }

const byeSeat = -1

func (roundRobinStrategy) Pairings(params Params, order []Standing) ([]Match, *int, error) {
	seeds := make([]Standing, len(order))
	copy(seeds, order)
	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].Rating != seeds[j].Rating {
			return seeds[i].Rating > seeds[j].Rating
		}
		return seeds[i].CompetitorID < seeds[j].CompetitorID
	})

	ids := make([]int, 0, len(seeds)+1)
	for _, s := range seeds {
		ids = append(ids, s.CompetitorID)
	}
	if len(ids)%2 == 1 {
		ids = append(ids, byeSeat)
	}

	m := len(ids)
	needed := m - 1
	if params.TotalRounds < needed {
		return nil, nil, fmt.Errorf("%w: %d rounds cannot cover a %d-competitor round robin (need %d)",
			ErrScheduleInfeasible, params.TotalRounds, len(seeds), needed)
	}
	if params.Round > needed {
		return nil, nil, fmt.Errorf("%w: round %d exceeds the %d-round circle schedule",
			ErrScheduleInfeasible, params.Round, needed)
	}

	perm := make([]int, m)
	perm[0] = ids[0]
	for i := 1; i < m; i++ {
		perm[i] = ids[1+((i-1+(params.Round-1))%(m-1))]
	}

	var matches []Match
	var bye *int
	for k := 0; k < m/2; k++ {
		a, b := perm[k], perm[m-1-k]
		if a == byeSeat || b == byeSeat {
			sitter := a
			if a == byeSeat {
				sitter = b
			}
			bye = &sitter
			continue
		}
		matches = append(matches, Match{P1: a, P2: b, Rematch: params.Ledger.HasPlayed(a, b)})
	}

	// present matches in standings order so table one gets the round's
	// highest-ranked competitor
	rankOf := make(map[int]int, len(order))
	for _, s := range order {
		rankOf[s.CompetitorID] = s.Rank
	}
	for i := range matches {
		if rankOf[matches[i].P2] < rankOf[matches[i].P1] {
			matches[i].P1, matches[i].P2 = matches[i].P2, matches[i].P1
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return rankOf[matches[i].P1] < rankOf[matches[j].P1]
	})
	return matches, bye, nil
}
