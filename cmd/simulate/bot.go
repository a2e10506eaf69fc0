package main

import (
	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
)

// reach is how far ahead of the runner the bot looks, in world units.
const reach = 60

// shouldJump is a naive policy: hop over any hazard about to arrive.
func shouldJump(v ecs.View) bool {
	if !v.Grounded {
		return false
	}
	front := v.Player.Right()
	for _, e := range v.Entities {
		if e.Class != component.ClassHazard {
			continue
		}
		if e.Rect.X >= front && e.Rect.X-front < reach {
			return true
		}
	}
	return false
}
