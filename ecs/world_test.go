package ecs

import (
	"testing"

	"github.com/milk9111/proteinrun/ecs/component"
)

func newTestWorld() *World {
	cfg := DefaultConfig()
	player := component.NewPlayerBody(cfg.PlayerX, cfg.Floor-cfg.PlayerHeight, cfg.PlayerWidth, cfg.PlayerHeight)
	player.Land(cfg.Floor)
	return NewWorld(cfg, player, NewRand(7), NewTimers(newFakeClock()))
}

func TestWorldRemoveEntityKeepsOrder(t *testing.T) {
	w := newTestWorld()
	for _, kind := range []component.Kind{component.KindPeptide, component.KindNoise, component.KindInfo} {
		w.Spawn(component.Entity{Kind: kind})
	}

	w.RemoveEntity(1)
	w.RemoveEntity(5)

	if len(w.Entities) != 2 || w.Entities[0].Kind != component.KindPeptide || w.Entities[1].Kind != component.KindInfo {
		t.Fatalf("entities = %+v", w.Entities)
	}
}

func TestWorldMultiplier(t *testing.T) {
	w := newTestWorld()
	if w.Multiplier() != 1 {
		t.Fatalf("idle multiplier = %d", w.Multiplier())
	}
	w.PowerUp.Activate(component.PowerUpAttractor, 10)
	if w.Multiplier() != 1 {
		t.Fatalf("attractor changed multiplier")
	}
	w.PowerUp.Activate(component.PowerUpMultiplier, 10)
	if w.Multiplier() != 2 {
		t.Fatalf("multiplier = %d; want 2", w.Multiplier())
	}
}

func TestWorldViewIsSnapshot(t *testing.T) {
	w := newTestWorld()
	w.Spawn(component.Entity{Kind: component.KindProtein, X: 100, Y: 300, Width: 20, Height: 20})
	w.EnterInfo(component.InfoMessage{Title: "t", Body: "b"})

	v := w.View()
	if !v.Paused || v.Info.Title != "t" {
		t.Fatalf("view pause = %v %+v", v.Paused, v.Info)
	}
	if len(v.Entities) != 1 || v.Entities[0].Class != component.ClassGood {
		t.Fatalf("view entities = %+v", v.Entities)
	}
	if !v.Grounded || v.Player.Y != w.Config.Floor-w.Config.PlayerHeight {
		t.Fatalf("view player = %+v grounded=%v", v.Player, v.Grounded)
	}

	w.Entities[0].X = 0
	if v.Entities[0].Rect.X != 100 {
		t.Fatalf("view shares entity memory")
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := newTestWorld()
	w.Step = 4
	w.Emit(Event{Type: EventHazard, Points: -5})
	w.Emit(Event{Type: EventCollected, Points: 3})

	events := w.Events().Drain()
	if len(events) != 2 || events[0].Step != 4 || events[1].Type != EventCollected {
		t.Fatalf("events = %+v", events)
	}
	if w.Events().Len() != 0 || w.Events().Drain() != nil {
		t.Fatalf("queue not empty after drain")
	}
}
