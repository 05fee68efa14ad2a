package pairing

// kingOfHillStrategy pairs the extremes inward: rank 1 vs rank N, 2 vs N-1,
// until the field is consumed. Rematch sliding searches from the far end.
type kingOfHillStrategy struct{}

func (kingOfHillStrategy) Name() string { return "king-of-hill" }

func (kingOfHillStrategy) Version() int { return 1 }

func (kingOfHillStrategy) Pairings(params Params, order []Standing) ([]Match, *int, error) {
	gib := gibsonSet(params, order)
	order, bye := extractBye(order, params.ByeCounts)
	matches, rest := pairClinched(order, gib, params)

	// Swaps stay inside this strategy's own pairs; clinched pairs are kept.
	base := len(matches)
	rem := append([]Standing(nil), rest...)
	for len(rem) >= 2 {
		anchor := rem[0]
		candidates := rem[1:]
		j, repeat := chooseOpponent(anchor, candidates, len(candidates)-1, params.Policy, params.Ledger)
		next := Match{P1: anchor.CompetitorID, P2: candidates[j].CompetitorID, Rematch: repeat}
		if repeat && params.Policy.AvoidRematches {
			if fresh, ok := resolveRematchBySwap(matches[base:], anchor.CompetitorID, candidates[j].CompetitorID, params.Ledger); ok {
				next = fresh
			}
		}
		matches = append(matches, next)
		rem = removeIndex(candidates, j)
	}
	return matches, bye, nil
}
