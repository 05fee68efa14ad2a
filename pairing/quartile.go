package pairing

// quartileStrategy splits the ranked field into four quartiles and pairs the
// first against the second and the third against the fourth, position by
// position. Early rounds stay competitive near the top without the volatility
// of a full top-vs-bottom fold.
type quartileStrategy struct{}

func (quartileStrategy) Name() string { return "quartile" }

func (quartileStrategy) Version() int { return 1 }

func (quartileStrategy) Pairings(params Params, order []Standing) ([]Match, *int, error) {
	gib := gibsonSet(params, order)
	order, bye := extractBye(order, params.ByeCounts)
	matches, rest := pairClinched(order, gib, params)

	// Q1 and Q2 absorb the remainder so both blocks stay even.
	q := len(rest) / 4
	upper := 2*q + len(rest)%4
	matches = append(matches, pairHalves(rest[:upper], params)...)
	matches = append(matches, pairHalves(rest[upper:], params)...)
	return matches, bye, nil
}
