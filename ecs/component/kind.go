package component

import "image/color"

// Kind is the closed set of things the spawner can put in the field.
type Kind int

const (
	KindInfo Kind = iota
	KindPeptide
	KindProtein
	KindMassSpec
	KindContaminant
	KindNoise
	KindBoost
	KindLockOn

	kindCount // must stay last
)

var kindNames = [kindCount]string{
	KindInfo:        "info",
	KindPeptide:     "peptide",
	KindProtein:     "protein",
	KindMassSpec:    "mass_spec",
	KindContaminant: "contaminant",
	KindNoise:       "noise",
	KindBoost:       "power_boost",
	KindLockOn:      "power_lockon",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Class groups kinds by how a collision with them is resolved.
type Class int

const (
	ClassInfo Class = iota
	ClassGood
	ClassHazard
	ClassPowerUp
)

func (c Class) String() string {
	switch c {
	case ClassInfo:
		return "info"
	case ClassGood:
		return "good"
	case ClassHazard:
		return "hazard"
	case ClassPowerUp:
		return "power_up"
	default:
		return "unknown"
	}
}

func (k Kind) Class() Class {
	switch k {
	case KindPeptide, KindProtein, KindMassSpec:
		return ClassGood
	case KindContaminant, KindNoise:
		return ClassHazard
	case KindBoost, KindLockOn:
		return ClassPowerUp
	default:
		return ClassInfo
	}
}

// PowerUp maps a power-up kind to the modifier it grants.
func (k Kind) PowerUp() PowerUpKind {
	switch k {
	case KindBoost:
		return PowerUpMultiplier
	case KindLockOn:
		return PowerUpAttractor
	default:
		return PowerUpNone
	}
}

// Placement decides the vertical spawn position of a kind.
type Placement int

const (
	PlacementAirborne Placement = iota
	PlacementGround
	PlacementElevated
)

func ParsePlacement(s string) (Placement, bool) {
	switch s {
	case "airborne":
		return PlacementAirborne, true
	case "ground":
		return PlacementGround, true
	case "elevated":
		return PlacementElevated, true
	default:
		return 0, false
	}
}

func (p Placement) String() string {
	switch p {
	case PlacementAirborne:
		return "airborne"
	case PlacementGround:
		return "ground"
	case PlacementElevated:
		return "elevated"
	default:
		return "unknown"
	}
}

// KindSpec holds the fixed per-kind attributes.
type KindSpec struct {
	Width     float64
	Height    float64
	Points    int
	Color     color.NRGBA
	Placement Placement
}
