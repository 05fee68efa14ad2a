package pairing

// swissStrategy pairs adjacent ranks: 1v2, 3v4 and so on, sliding to the
// next available opponent when a rematch would occur and avoidance is on.
type swissStrategy struct{}

func (swissStrategy) Name() string { return "swiss" }

func (swissStrategy) Version() int { return 1 }

func (swissStrategy) Pairings(params Params, order []Standing) ([]Match, *int, error) {
	gib := gibsonSet(params, order)
	order, bye := extractBye(order, params.ByeCounts)
	matches, rest := pairClinched(order, gib, params)
	paired, _ := pairAdjacentPool(rest, params)
	return append(matches, paired...), bye, nil
}

// pairAdjacentPool consumes a rank-ordered pool top-down: the best unpaired
// competitor meets the nearest available rank below. An anchor whose every
// remaining candidate is a rematch tries a swap back into an earlier pair
// before the rematch is accepted. Returns the matches and whatever could not
// be paired (at most one competitor, odd pools only).
func pairAdjacentPool(pool []Standing, params Params) ([]Match, []Standing) {
	matches := make([]Match, 0, len(pool)/2)
	rem := append([]Standing(nil), pool...)
	for len(rem) >= 2 {
		anchor := rem[0]
		candidates := rem[1:]
		j, repeat := chooseOpponent(anchor, candidates, 0, params.Policy, params.Ledger)
		next := Match{P1: anchor.CompetitorID, P2: candidates[j].CompetitorID, Rematch: repeat}
		if repeat && params.Policy.AvoidRematches {
			if fresh, ok := resolveRematchBySwap(matches, anchor.CompetitorID, candidates[j].CompetitorID, params.Ledger); ok {
				next = fresh
			}
		}
		matches = append(matches, next)
		rem = removeIndex(candidates, j)
	}
	return matches, rem
}
