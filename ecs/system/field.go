package system

import (
	"github.com/milk9111/proteinrun/common"
	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
)

// FieldSystem moves every entity, applies the magnet, resolves collisions
// with the runner and culls what left the world. It walks the field from
// the end so removals never skip a neighbor.
type FieldSystem struct{}

func NewFieldSystem() *FieldSystem {
	return &FieldSystem{}
}

func (s *FieldSystem) Update(w *ecs.World) {
	if w == nil || w.Player == nil {
		return
	}

	cfg := w.Config
	player := w.Player.Rect()
	magnet := w.PowerUp.Active(component.PowerUpAttractor)

	for i := len(w.Entities) - 1; i >= 0; i-- {
		e := &w.Entities[i]
		e.X -= w.Speed

		if magnet && e.Kind.Class() == component.ClassGood &&
			e.X > player.X && e.X < player.X+cfg.MagnetWindow {
			e.Y = common.Lerp(e.Y, player.Y, cfg.MagnetPull)
			e.X -= cfg.MagnetExtraSpeed
		}

		if player.Intersects(e.Rect()) {
			if resolve(w, e) {
				w.RemoveEntity(i)
			}
			continue
		}

		if e.Gone() {
			w.RemoveEntity(i)
		}
	}
}

// resolve applies a collision and reports whether the entity is consumed.
func resolve(w *ecs.World, e *component.Entity) bool {
	evt := ecs.Event{Kind: e.Kind, X: e.X + e.Width/2, Y: e.Y + e.Height/2}

	switch e.Kind.Class() {
	case component.ClassInfo:
		msgs := w.Config.InfoMessages
		if len(msgs) == 0 {
			return false
		}
		msg := msgs[w.Rand.IntN(len(msgs))]
		if !w.EnterInfo(msg) {
			return false
		}
		evt.Type = ecs.EventInfo
		evt.Text = msg.Title
	case component.ClassHazard:
		w.Score += e.Points
		evt.Type = ecs.EventHazard
		evt.Points = e.Points
	case component.ClassPowerUp:
		kind := e.Kind.PowerUp()
		duration := w.Config.MultiplierSteps
		if kind == component.PowerUpAttractor {
			duration = w.Config.AttractorSteps
		}
		w.PowerUp.Activate(kind, duration)
		evt.Type = ecs.EventPowerUp
		evt.Text = kind.String()
	case component.ClassGood:
		points := e.Points * w.Multiplier()
		w.Score += points
		w.Collected++
		evt.Type = ecs.EventCollected
		evt.Points = points
	default:
		return false
	}

	w.Emit(evt)
	return true
}
