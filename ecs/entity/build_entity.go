package entity

import (
	"fmt"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
)

// Build creates a field entity of the given kind at the leading edge of the
// world. Airborne kinds draw their height from rng.
func Build(kind component.Kind, cfg ecs.Config, rng ecs.Rand) (component.Entity, error) {
	spec, ok := cfg.Kinds[kind]
	if !ok {
		return component.Entity{}, fmt.Errorf("entity: kind %s: %w", kind, ecs.ErrKindSpec)
	}

	return component.Entity{
		Kind:   kind,
		X:      cfg.WorldWidth,
		Y:      spawnY(spec, cfg, rng),
		Width:  spec.Width,
		Height: spec.Height,
		Color:  spec.Color,
		Points: spec.Points,
	}, nil
}

func spawnY(spec component.KindSpec, cfg ecs.Config, rng ecs.Rand) float64 {
	switch spec.Placement {
	case component.PlacementGround:
		return cfg.Floor - spec.Height
	case component.PlacementElevated:
		return cfg.Floor - cfg.ElevatedHeight
	default:
		r := 0.0
		if rng != nil {
			r = rng.Float64()
		}
		return cfg.Floor - cfg.AirborneBase - r*cfg.AirborneRange
	}
}
