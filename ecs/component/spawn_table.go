package component

// Band is one slice of the unit interval: draws below Upper (and at or above
// the previous band's Upper) select Kind.
type Band struct {
	Upper float64
	Kind  Kind
}

// SpawnTable is an ordered cumulative-probability table.
type SpawnTable []Band

// Lookup maps a draw in [0,1) to a kind. Draws past the last bound resolve
// to the last band.
func (t SpawnTable) Lookup(r float64) (Kind, bool) {
	if len(t) == 0 {
		return 0, false
	}
	for _, b := range t {
		if r < b.Upper {
			return b.Kind, true
		}
	}
	return t[len(t)-1].Kind, true
}

// Probability returns the share of the unit interval owned by kind.
func (t SpawnTable) Probability(kind Kind) float64 {
	lower := 0.0
	total := 0.0
	for _, b := range t {
		if b.Kind == kind {
			total += b.Upper - lower
		}
		lower = b.Upper
	}
	return total
}
