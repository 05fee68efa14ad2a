package pairing

// AssignFirstMove picks the opener of a freshly formed match: the side with
// fewer prior starts, ties going to the better rank. Called once per match
// after pairing is final.
func AssignFirstMove(a, b Standing) int {
	if a.Starts != b.Starts {
		if a.Starts < b.Starts {
			return a.CompetitorID
		}
		return b.CompetitorID
	}
	if a.Rank <= b.Rank {
		return a.CompetitorID
	}
	return b.CompetitorID
}

// StartCounts tallies prior first-move assignments per competitor.
func StartCounts(history []PlayedMatch) map[int]int {
	out := make(map[int]int)
	for _, m := range history {
		if m.Bye || m.FirstMove == 0 {
			continue
		}
		out[m.FirstMove]++
	}
	return out
}
