// Package pairing implements the tournament core: standings computation,
// Gibsonization detection, rematch bookkeeping, first-move balancing, the
// multi-strategy pairing engine and the what-if impact simulator. Everything
// in this package is a pure function over immutable inputs; persistence and
// transport live in the service layer.
package pairing

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrDataIntegrity           = errors.New("data integrity violation")
	ErrInsufficientCompetitors = errors.New("not enough competitors to pair")
	ErrScheduleInfeasible      = errors.New("round schedule infeasible")
	ErrUnknownPolicy           = errors.New("unknown pairing policy")
)

// PolicyKind is the stable identifier a compiled strategy is registered
// under. Strategies are never loaded from stored text; the registry below is
// the only dispatch mechanism.
type PolicyKind string

const (
	PolicySwiss      PolicyKind = "swiss"
	PolicyFonteSwiss PolicyKind = "fonte-swiss"
	PolicyKingOfHill PolicyKind = "king-of-hill"
	PolicyRoundRobin PolicyKind = "round-robin"
	PolicyQuartile   PolicyKind = "quartile"
	PolicyManual     PolicyKind = "manual"
)

// Policy selects a pairing strategy and its two orthogonal switches.
type Policy struct {
	Kind           PolicyKind `json:"kind"`
	AvoidRematches bool       `json:"avoid_rematches"`
	Gibsonization  bool       `json:"gibsonization"`

	// RematchScanLimit caps how many substitute candidates a single rematch
	// search may examine before the rematch is accepted. Zero means the
	// whole field may be scanned.
	RematchScanLimit int `json:"rematch_scan_limit,omitempty"`
}

func (p Policy) Validate() error {
	if _, err := StrategyFor(p.Kind); err != nil {
		return err
	}
	if p.RematchScanLimit < 0 {
		return fmt.Errorf("%w: rematch scan limit must not be negative", ErrDataIntegrity)
	}
	return nil
}

// Match is one proposed pairing of one round. Rematch is the degraded-outcome
// flag: the pair has met before and no better assignment was available (or
// avoidance was off). It is a warning for the caller, never an error.
type Match struct {
	Round      int  `json:"round"`
	Table      int  `json:"table"`
	P1         int  `json:"p1"`
	P2         int  `json:"p2"`
	FirstMove  int  `json:"first_move"`
	P1Clinched bool `json:"p1_clinched,omitempty"`
	P2Clinched bool `json:"p2_clinched,omitempty"`
	Rematch    bool `json:"rematch,omitempty"`
}

// Round is one complete pairing run. Bye holds the competitor sitting out,
// excluded from Matches but still part of the round's record.
type Round struct {
	Number  int     `json:"number"`
	Matches []Match `json:"matches"`
	Bye     *int    `json:"bye,omitempty"`
}

// Params carries one pairing invocation. Standings must cover every eligible
// competitor; the engine re-sorts a copy and never mutates the input. Ledger
// and the count maps come from the committed pairing history (see
// NewRematchLedger, ByeCounts and StartCounts). Manual is consulted only by
// the manual policy.
type Params struct {
	Standings   []Standing
	Policy      Policy
	Ledger      *RematchLedger
	ByeCounts   map[int]int
	Round       int
	TotalRounds int
	Manual      [][2]int
}

// Strategy is a compiled pairing implementation. Pairings receives the
// ranked field (best first) and returns the proposed matches plus the bye,
// if the strategy assigns one itself. Name and Version identify the
// implementation for audit.
type Strategy interface {
	Pairings(params Params, order []Standing) ([]Match, *int, error)
	Name() string
	Version() int
}

var registry = map[PolicyKind]Strategy{
	PolicySwiss:      swissStrategy{},
	PolicyFonteSwiss: fonteSwissStrategy{},
	PolicyKingOfHill: kingOfHillStrategy{},
	PolicyRoundRobin: roundRobinStrategy{},
	PolicyQuartile:   quartileStrategy{},
	PolicyManual:     manualStrategy{},
}

// StrategyFor resolves a policy kind against the compiled registry.
func StrategyFor(kind PolicyKind) (Strategy, error) {
	s, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, kind)
	}
	return s, nil
}

// PolicyKinds lists every registered policy identifier in stable order.
func PolicyKinds() []PolicyKind {
	kinds := make([]PolicyKind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// GeneratePairings produces the next round's match list. The remaining-round
// arithmetic counts the round being paired, so Gibsonization while pairing
// round N of T uses T-N+1 rounds still to be played.
func GeneratePairings(params Params) (*Round, error) {
	if len(params.Standings) < 2 {
		return nil, fmt.Errorf("%w: have %d, need at least 2", ErrInsufficientCompetitors, len(params.Standings))
	}
	if params.Round < 1 {
		return nil, fmt.Errorf("%w: round number %d", ErrDataIntegrity, params.Round)
	}
	strat, err := StrategyFor(params.Policy.Kind)
	if err != nil {
		return nil, err
	}

	order := append([]Standing(nil), params.Standings...)
	sortStandings(order)

	matches, bye, err := strat.Pairings(params, order)
	if err != nil {
		return nil, err
	}

	gib := gibsonSet(params, order)
	byID := make(map[int]Standing, len(order))
	for _, s := range order {
		byID[s.CompetitorID] = s
	}
	for i := range matches {
		m := &matches[i]
		m.Round = params.Round
		m.Table = i + 1
		m.FirstMove = AssignFirstMove(byID[m.P1], byID[m.P2])
		m.P1Clinched = gib[m.P1]
		m.P2Clinched = gib[m.P2]
	}
	return &Round{Number: params.Round, Matches: matches, Bye: bye}, nil
}

func gibsonSet(params Params, order []Standing) map[int]bool {
	if !params.Policy.Gibsonization {
		return nil
	}
	return DetectGibsonized(order, params.TotalRounds-params.Round+1)
}

// extractBye removes the bye recipient from an odd field: the lowest-ranked
// competitor among those with the fewest prior byes.
func extractBye(order []Standing, byeCounts map[int]int) ([]Standing, *int) {
	if len(order)%2 == 0 {
		return order, nil
	}
	best := len(order) - 1
	bestCount := byeCounts[order[best].CompetitorID]
	for i := len(order) - 2; i >= 0; i-- {
		if c := byeCounts[order[i].CompetitorID]; c < bestCount {
			best, bestCount = i, c
		}
	}
	id := order[best].CompetitorID
	return removeIndex(order, best), &id
}

func removeIndex(s []Standing, i int) []Standing {
	out := make([]Standing, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
