package entity

import (
	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
)

// NewPlayer places the runner at its configured spot, clamped onto the
// floor when it would start below it.
func NewPlayer(cfg ecs.Config) *component.PlayerBody {
	body := component.NewPlayerBody(cfg.PlayerX, cfg.PlayerY, cfg.PlayerWidth, cfg.PlayerHeight)
	if cfg.PlayerY+cfg.PlayerHeight >= cfg.Floor {
		body.Land(cfg.Floor)
	}
	return body
}
