package pairing

// fonteSwissStrategy partitions the ranked field into groups of identical
// point totals and pairs each group's top half against its bottom half, so
// the group's #1 meets its median. An odd group's last member falls through
// to head the next group down.
type fonteSwissStrategy struct{}

func (fonteSwissStrategy) Name() string { return "fonte-swiss" }

func (fonteSwissStrategy) Version() int { return 1 }

func (fonteSwissStrategy) Pairings(params Params, order []Standing) ([]Match, *int, error) {
	gib := gibsonSet(params, order)
	order, bye := extractBye(order, params.ByeCounts)
	matches, rest := pairClinched(order, gib, params)

	var carry []Standing
	for _, group := range groupByPoints(rest) {
		g := append(carry, group...)
		carry = nil
		if len(g)%2 == 1 {
			carry = []Standing{g[len(g)-1]}
			g = g[:len(g)-1]
		}
		matches = append(matches, pairHalves(g, params)...)
	}
	// the field is even once the bye is out, so nothing is left to carry
	return matches, bye, nil
}

func groupByPoints(order []Standing) [][]Standing {
	var groups [][]Standing
	start := 0
	for i := 1; i <= len(order); i++ {
		if i == len(order) || order[i].Points != order[start].Points {
			groups = append(groups, order[start:i])
			start = i
		}
	}
	return groups
}

// pairHalves pairs an even, rank-ordered slice position against position:
// element i of the top half meets element i of the bottom half. Rematch
// sliding permutes bottom-half assignments locally, nearest position first;
// a rematch the slide cannot clear tries a swap back into an earlier pair
// of the same block.
func pairHalves(g []Standing, params Params) []Match {
	half := len(g) / 2
	top, bottom := g[:half], g[half:]
	used := make([]bool, half)
	matches := make([]Match, 0, half)
	for i, anchor := range top {
		j, repeat := chooseHalfOpponent(anchor, bottom, used, i, params)
		used[j] = true
		next := Match{P1: anchor.CompetitorID, P2: bottom[j].CompetitorID, Rematch: repeat}
		if repeat && params.Policy.AvoidRematches {
			if fresh, ok := resolveRematchBySwap(matches, anchor.CompetitorID, bottom[j].CompetitorID, params.Ledger); ok {
				next = fresh
			}
		}
		matches = append(matches, next)
	}
	return matches
}

func chooseHalfOpponent(anchor Standing, bottom []Standing, used []bool, preferred int, params Params) (int, bool) {
	fallback := -1
	scanned := 0
	for dist := 0; dist < len(bottom); dist++ {
		for ci, k := range [2]int{preferred + dist, preferred - dist} {
			if dist == 0 && ci == 1 {
				continue
			}
			if k < 0 || k >= len(bottom) || used[k] {
				continue
			}
			repeat := params.Ledger.HasPlayed(anchor.CompetitorID, bottom[k].CompetitorID)
			if !repeat {
				return k, false
			}
			if !params.Policy.AvoidRematches {
				return k, true
			}
			if fallback < 0 {
				fallback = k
			}
			scanned++
			if params.Policy.RematchScanLimit > 0 && scanned >= params.Policy.RematchScanLimit {
				return fallback, true
			}
		}
	}
	return fallback, true
}
