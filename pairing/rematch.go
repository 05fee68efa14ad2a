package pairing

// PlayedMatch is the committed-pairing view of history: who met whom, who
// opened, and who sat out. It feeds the rematch ledger and the bye and
// first-move tallies; scores live in ScoreRecord.
type PlayedMatch struct {
	Round     int  `json:"round"`
	P1        int  `json:"p1"`
	P2        int  `json:"p2,omitempty"`
	FirstMove int  `json:"first_move,omitempty"`
	Bye       bool `json:"bye,omitempty"`
}

type pairKey struct{ lo, hi int }

func makePairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// RematchLedger answers "have these two met" in O(1) after one O(history)
// pass. Byes never enter the ledger. Read-only once built; a pairing run
// never mutates it.
type RematchLedger struct {
	seen map[pairKey]struct{}
}

func NewRematchLedger(history []PlayedMatch) *RematchLedger {
	l := &RematchLedger{seen: make(map[pairKey]struct{}, len(history))}
	for _, m := range history {
		if m.Bye || m.P1 == m.P2 {
			continue
		}
		l.seen[makePairKey(m.P1, m.P2)] = struct{}{}
	}
	return l
}

func (l *RematchLedger) HasPlayed(a, b int) bool {
	if l == nil {
		return false
	}
	_, ok := l.seen[makePairKey(a, b)]
	return ok
}

// ByeCounts tallies prior byes per competitor.
func ByeCounts(history []PlayedMatch) map[int]int {
	out := make(map[int]int)
	for _, m := range history {
		if m.Bye {
			out[m.P1]++
		}
	}
	return out
}

// chooseOpponent picks the pool index anchor should meet. The preferred
// index is tried first; when that repeats a past match and avoidance is on,
// the search widens to the next-nearest candidates (lower-ranked side first)
// until a fresh opponent turns up or the scan budget runs out, at which point
// the preferred rematch is accepted and reported.
func chooseOpponent(anchor Standing, pool []Standing, preferred int, policy Policy, ledger *RematchLedger) (int, bool) {
	repeat := ledger.HasPlayed(anchor.CompetitorID, pool[preferred].CompetitorID)
	if !repeat || !policy.AvoidRematches {
		return preferred, repeat
	}
	scanned := 0
	for dist := 1; dist < len(pool); dist++ {
		for _, k := range [2]int{preferred + dist, preferred - dist} {
			if k < 0 || k >= len(pool) {
				continue
			}
			if !ledger.HasPlayed(anchor.CompetitorID, pool[k].CompetitorID) {
				return k, false
			}
			scanned++
			if policy.RematchScanLimit > 0 && scanned >= policy.RematchScanLimit {
				return preferred, true
			}
		}
	}
	return preferred, true
}

// resolveRematchBySwap dissolves a forced rematch between anchor and opp by
// exchanging opp with a member of an already-formed match: the earlier pair
// (a,b) and the stuck pair are recut as (a,anchor)+(b,opp) or
// (b,anchor)+(a,opp), whichever leaves both new pairs fresh. Earlier matches
// are probed newest first, so the exchange stays close in rank. The earlier
// match is rewritten in place; the returned match replaces the rematch.
// Reports false when no exchange produces two fresh pairs.
func resolveRematchBySwap(matches []Match, anchor, opp int, ledger *RematchLedger) (Match, bool) {
	for i := len(matches) - 1; i >= 0; i-- {
		a, b := matches[i].P1, matches[i].P2
		if !ledger.HasPlayed(a, anchor) && !ledger.HasPlayed(b, opp) {
			matches[i] = Match{P1: a, P2: anchor}
			return Match{P1: b, P2: opp}, true
		}
		if !ledger.HasPlayed(b, anchor) && !ledger.HasPlayed(a, opp) {
			matches[i] = Match{P1: b, P2: anchor}
			return Match{P1: a, P2: opp}, true
		}
	}
	return Match{}, false
}
