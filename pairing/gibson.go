package pairing

// DetectGibsonized flags competitors whose current position (or better) is
// mathematically secure: their points strictly exceed the best achievable
// total of every lower-ranked competitor, assuming those win every one of the
// remaining rounds. Standings must already be sorted. O(n): under the sort,
// only the next line down can own the best lower total.
func DetectGibsonized(standings []Standing, remainingRounds int) map[int]bool {
	out := make(map[int]bool)
	if remainingRounds < 0 {
		remainingRounds = 0
	}
	for i := 0; i+1 < len(standings); i++ {
		if standings[i].Points > standings[i+1].Points+float64(remainingRounds) {
			out[standings[i].CompetitorID] = true
		}
	}
	return out
}

// DetectEliminated is the symmetric flag: competitors who cannot reach the
// current leader's point total even by winning out. Ties stay alive, since
// spread could still decide them.
func DetectEliminated(standings []Standing, remainingRounds int) map[int]bool {
	out := make(map[int]bool)
	if len(standings) == 0 {
		return out
	}
	if remainingRounds < 0 {
		remainingRounds = 0
	}
	top := standings[0].Points
	for _, s := range standings {
		if s.Points+float64(remainingRounds) < top {
			out[s.CompetitorID] = true
		}
	}
	return out
}

// pairClinched peels the Gibsonized competitors off the field and pairs them
// among themselves, adjacent by rank. An odd one out meets the highest-ranked
// competitor already out of contention, provided they have not met before;
// with no such partner the odd one rejoins the normal pool. Advisory only:
// nobody is ever excluded from pairing.
func pairClinched(order []Standing, gib map[int]bool, params Params) ([]Match, []Standing) {
	if len(gib) == 0 {
		return nil, order
	}
	clinched := make([]Standing, 0, len(gib))
	rest := make([]Standing, 0, len(order)-len(gib))
	for _, s := range order {
		if gib[s.CompetitorID] {
			clinched = append(clinched, s)
		} else {
			rest = append(rest, s)
		}
	}
	if len(clinched) == 0 {
		return nil, order
	}

	matches, leftover := pairAdjacentPool(clinched, params)
	if len(leftover) == 1 {
		odd := leftover[0]
		remaining := params.TotalRounds - params.Round + 1
		elim := DetectEliminated(order, remaining)
		partner := -1
		for i, s := range rest {
			if elim[s.CompetitorID] && !params.Ledger.HasPlayed(odd.CompetitorID, s.CompetitorID) {
				partner = i
				break
			}
		}
		if partner >= 0 {
			matches = append(matches, Match{P1: odd.CompetitorID, P2: rest[partner].CompetitorID})
			rest = removeIndex(rest, partner)
		} else {
			rest = insertByRank(rest, odd)
		}
	}
	return matches, rest
}

func insertByRank(pool []Standing, s Standing) []Standing {
	at := len(pool)
	for i := range pool {
		if s.Rank < pool[i].Rank {
			at = i
			break
		}
	}
	out := make([]Standing, 0, len(pool)+1)
	out = append(out, pool[:at]...)
	out = append(out, s)
	return append(out, pool[at:]...)
}
