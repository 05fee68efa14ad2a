package pairing

import "fmt"

// HypotheticalScore is a what-if result for one pending match. Scores carry
// the same semantics as recorded ones: higher wins, equal draws.
type HypotheticalScore struct {
	P1     int `json:"p1"`
	P2     int `json:"p2"`
	Score1 int `json:"score1"`
	Score2 int `json:"score2"`
}

// Tag names a notable transition between the live table and a simulated one.
type Tag string

const (
	TagBigJump         Tag = "big_jump"
	TagBigDrop         Tag = "big_drop"
	TagMovesToPodium   Tag = "moves_to_podium"
	TagFallsFromPodium Tag = "falls_from_podium"
	TagTakesLead       Tag = "takes_lead"
	TagLosesLead       Tag = "loses_lead"
	TagClinches        Tag = "clinches_tournament"
	TagEliminated      Tag = "eliminated_from_contention"
)

const (
	bigSwing   = 3
	podiumSize = 3
)

// AnnotatedStanding is a simulated standings line plus where the competitor
// came from. Delta is positive for a climb.
type AnnotatedStanding struct {
	Standing
	PrevRank int   `json:"prev_rank"`
	Delta    int   `json:"delta"`
	Tags     []Tag `json:"tags,omitempty"`
}

// Simulate projects hypothetical scores for some or all of a round's pending
// matches onto a copy of the current standings and reports the reshuffled
// table with movement annotations. The input standings are never modified.
// remainingRounds counts the rounds after the pending one, so the clinch and
// elimination checks before the round use remainingRounds+1.
func Simulate(current []Standing, pending []Match, hypo []HypotheticalScore, remainingRounds int) ([]AnnotatedStanding, error) {
	work := make([]Standing, len(current))
	copy(work, current)

	index := make(map[int]*Standing, len(work))
	prevRank := make(map[int]int, len(work))
	for i := range work {
		index[work[i].CompetitorID] = &work[i]
		prevRank[work[i].CompetitorID] = work[i].Rank
	}

	pendingSet := make(map[pairKey]bool, len(pending))
	for _, m := range pending {
		pendingSet[makePairKey(m.P1, m.P2)] = true
	}

	applied := make(map[pairKey]bool, len(hypo))
	for _, h := range hypo {
		if h.P1 == h.P2 {
			return nil, fmt.Errorf("%w: hypothetical score pairs competitor %d against itself", ErrDataIntegrity, h.P1)
		}
		key := makePairKey(h.P1, h.P2)
		if !pendingSet[key] {
			return nil, fmt.Errorf("%w: no pending match between %d and %d", ErrDataIntegrity, h.P1, h.P2)
		}
		if applied[key] {
			return nil, fmt.Errorf("%w: duplicate hypothetical score for %d vs %d", ErrDataIntegrity, h.P1, h.P2)
		}
		applied[key] = true

		a, ok := index[h.P1]
		if !ok {
			return nil, fmt.Errorf("%w: competitor %d is not in the standings", ErrDataIntegrity, h.P1)
		}
		b, ok := index[h.P2]
		if !ok {
			return nil, fmt.Errorf("%w: competitor %d is not in the standings", ErrDataIntegrity, h.P2)
		}
		a.applyResult(h.Score1, h.Score2)
		b.applyResult(h.Score2, h.Score1)
	}

	prevGib := DetectGibsonized(current, remainingRounds+1)
	prevElim := DetectEliminated(current, remainingRounds+1)

	sortStandings(work)
	gib := DetectGibsonized(work, remainingRounds)
	elim := DetectEliminated(work, remainingRounds)

	out := make([]AnnotatedStanding, 0, len(work))
	for _, s := range work {
		id := s.CompetitorID
		prev := prevRank[id]
		ann := AnnotatedStanding{Standing: s, PrevRank: prev, Delta: prev - s.Rank}

		switch {
		case ann.Delta >= bigSwing:
			ann.Tags = append(ann.Tags, TagBigJump)
		case ann.Delta <= -bigSwing:
			ann.Tags = append(ann.Tags, TagBigDrop)
		}
		switch {
		case prev > podiumSize && s.Rank <= podiumSize:
			ann.Tags = append(ann.Tags, TagMovesToPodium)
		case prev <= podiumSize && s.Rank > podiumSize:
			ann.Tags = append(ann.Tags, TagFallsFromPodium)
		}
		switch {
		case s.Rank == 1 && prev != 1:
			ann.Tags = append(ann.Tags, TagTakesLead)
		case prev == 1 && s.Rank != 1:
			ann.Tags = append(ann.Tags, TagLosesLead)
		}
		if s.Rank == 1 && gib[id] && !(prev == 1 && prevGib[id]) {
			ann.Tags = append(ann.Tags, TagClinches)
		}
		if elim[id] && !prevElim[id] {
			ann.Tags = append(ann.Tags, TagEliminated)
		}
		out = append(out, ann)
	}
	return out, nil
}
