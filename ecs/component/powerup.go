package component

type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpMultiplier
	PowerUpAttractor
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpMultiplier:
		return "multiplier"
	case PowerUpAttractor:
		return "attractor"
	default:
		return "none"
	}
}

// PowerUp is the single timed modifier of a run. Remaining is positive
// exactly when Kind is not PowerUpNone.
type PowerUp struct {
	Kind      PowerUpKind
	Remaining int
}

// Activate replaces whatever is active with a fresh full duration.
func (p *PowerUp) Activate(kind PowerUpKind, duration int) {
	if kind == PowerUpNone || duration <= 0 {
		p.Clear()
		return
	}
	p.Kind = kind
	p.Remaining = duration
}

// Tick consumes one step and reports whether the modifier expired on it.
func (p *PowerUp) Tick() bool {
	if p.Kind == PowerUpNone {
		return false
	}
	p.Remaining--
	if p.Remaining > 0 {
		return false
	}
	p.Clear()
	return true
}

func (p *PowerUp) Clear() {
	p.Kind = PowerUpNone
	p.Remaining = 0
}

func (p PowerUp) Active(kind PowerUpKind) bool {
	return kind != PowerUpNone && p.Kind == kind
}
