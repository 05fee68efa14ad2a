package pairing

import "fmt"

// manualStrategy passes director-supplied pairs through after checking that
// together they cover the field: every competitor exactly once, nobody
// against themselves, nobody unknown. With an odd field the one competitor
// left out of the pairs takes the bye.
type manualStrategy struct{}

func (manualStrategy) Name() string { return "manual" }

func (manualStrategy) Version() int { return 1 }

func (manualStrategy) Pairings(params Params, order []Standing) ([]Match, *int, error) {
	if want := len(order) / 2; len(params.Manual) != want {
		return nil, nil, fmt.Errorf("%w: manual pairing needs %d pairs for %d competitors, got %d",
			ErrDataIntegrity, want, len(order), len(params.Manual))
	}

	known := make(map[int]bool, len(order))
	for _, s := range order {
		known[s.CompetitorID] = true
	}

	seen := make(map[int]bool, len(order))
	matches := make([]Match, 0, len(params.Manual))
	for _, pair := range params.Manual {
		a, b := pair[0], pair[1]
		if a == b {
			return nil, nil, fmt.Errorf("%w: competitor %d paired against themselves", ErrDataIntegrity, a)
		}
		for _, id := range [2]int{a, b} {
			if !known[id] {
				return nil, nil, fmt.Errorf("%w: competitor %d is not in the field", ErrDataIntegrity, id)
			}
			if seen[id] {
				return nil, nil, fmt.Errorf("%w: competitor %d appears in more than one pair", ErrDataIntegrity, id)
			}
			seen[id] = true
		}
		matches = append(matches, Match{P1: a, P2: b, Rematch: params.Ledger.HasPlayed(a, b)})
	}

	var bye *int
	for _, s := range order {
		if !seen[s.CompetitorID] {
			id := s.CompetitorID
			bye = &id
			break
		}
	}
	return matches, bye, nil
}
