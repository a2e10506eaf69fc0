package system

import (
	"testing"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
	"pgregory.net/rapid"
)

// atPlayer returns an entity of kind that still overlaps the runner after
// moving one step.
func atPlayer(w *ecs.World, kind component.Kind) component.Entity {
	spec := w.Config.Kinds[kind]
	p := w.Player.Rect()
	return component.Entity{
		Kind:   kind,
		X:      p.X + w.Speed,
		Y:      p.Bottom() - spec.Height,
		Width:  spec.Width,
		Height: spec.Height,
		Points: spec.Points,
	}
}

func TestFieldResolution(t *testing.T) {
	tests := []struct {
		name      string
		kind      component.Kind
		score     int
		collected int
		power     component.PowerUpKind
		paused    bool
	}{
		{"peptide", component.KindPeptide, 3, 1, component.PowerUpNone, false},
		{"protein", component.KindProtein, 5, 1, component.PowerUpNone, false},
		{"mass spec", component.KindMassSpec, 10, 1, component.PowerUpNone, false},
		{"contaminant", component.KindContaminant, -3, 0, component.PowerUpNone, false},
		{"noise", component.KindNoise, -5, 0, component.PowerUpNone, false},
		{"boost", component.KindBoost, 0, 0, component.PowerUpMultiplier, false},
		{"lock-on", component.KindLockOn, 0, 0, component.PowerUpAttractor, false},
		{"info", component.KindInfo, 0, 0, component.PowerUpNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := groundedWorld()
			w.Spawn(atPlayer(w, tt.kind))

			NewFieldSystem().Update(w)

			if len(w.Entities) != 0 {
				t.Fatalf("entity left in field: %+v", w.Entities)
			}
			if w.Score != tt.score || w.Collected != tt.collected {
				t.Fatalf("score=%d collected=%d; want %d/%d", w.Score, w.Collected, tt.score, tt.collected)
			}
			if w.PowerUp.Kind != tt.power {
				t.Fatalf("power-up = %v; want %v", w.PowerUp.Kind, tt.power)
			}
			if w.Paused() != tt.paused {
				t.Fatalf("paused = %v; want %v", w.Paused(), tt.paused)
			}
			if events := w.Events().Drain(); len(events) != 1 {
				t.Fatalf("events = %+v", events)
			}
		})
	}
}

func TestFieldHazardUnderStationaryPlayer(t *testing.T) {
	w, _ := groundedWorld()
	w.Spawn(component.Entity{Kind: component.KindNoise, X: 50, Y: 470, Width: 25, Height: 25, Points: -5})

	NewFieldSystem().Update(w)

	if w.Score != -5 {
		t.Fatalf("score = %d; want -5", w.Score)
	}
	if len(w.Entities) != 0 {
		t.Fatalf("hazard still in field")
	}
}

func TestFieldMultiplierDoublesGood(t *testing.T) {
	w, _ := groundedWorld()
	w.PowerUp.Activate(component.PowerUpMultiplier, w.Config.MultiplierSteps)
	w.Spawn(atPlayer(w, component.KindProtein))

	NewFieldSystem().Update(w)

	if w.Score != 10 || w.Collected != 1 {
		t.Fatalf("score=%d collected=%d; want 10/1", w.Score, w.Collected)
	}
}

func TestFieldTouchingEdgesDoNotCollide(t *testing.T) {
	w, _ := groundedWorld()
	p := w.Player.Rect()
	// after moving, the left edge sits exactly on the runner's right edge
	w.Spawn(component.Entity{Kind: component.KindNoise, X: p.Right() + w.Speed, Y: p.Y, Width: 25, Height: 25, Points: -5})

	NewFieldSystem().Update(w)

	if w.Score != 0 || len(w.Entities) != 1 {
		t.Fatalf("touching edges collided: score=%d entities=%d", w.Score, len(w.Entities))
	}
}

func TestFieldSecondInfoWhilePausedStays(t *testing.T) {
	w, _ := groundedWorld()
	w.Spawn(atPlayer(w, component.KindInfo))
	w.Spawn(atPlayer(w, component.KindInfo))

	NewFieldSystem().Update(w)

	if !w.Paused() {
		t.Fatalf("not paused")
	}
	if len(w.Entities) != 1 {
		t.Fatalf("entities = %d; want the second info point to stay", len(w.Entities))
	}
}

func TestFieldCullsMissed(t *testing.T) {
	w, _ := groundedWorld()
	w.Spawn(component.Entity{Kind: component.KindPeptide, X: -20, Y: 100, Width: 24, Height: 24, Points: 3})
	w.Spawn(component.Entity{Kind: component.KindPeptide, X: 700, Y: 100, Width: 24, Height: 24, Points: 3})

	NewFieldSystem().Update(w)

	if len(w.Entities) != 1 || w.Entities[0].X != 700-w.Speed {
		t.Fatalf("entities = %+v", w.Entities)
	}
	if w.Score != 0 || w.Collected != 0 {
		t.Fatalf("missed entity scored")
	}
}

func TestFieldMagnet(t *testing.T) {
	w, _ := groundedWorld()
	w.PowerUp.Activate(component.PowerUpAttractor, w.Config.AttractorSteps)
	w.Spawn(component.Entity{Kind: component.KindProtein, X: 200, Y: 300, Width: 20, Height: 20, Points: 5})
	w.Spawn(component.Entity{Kind: component.KindNoise, X: 200, Y: 300, Width: 25, Height: 25, Points: -5})
	w.Spawn(component.Entity{Kind: component.KindProtein, X: 700, Y: 300, Width: 20, Height: 20, Points: 5})

	NewFieldSystem().Update(w)

	good := w.Entities[0]
	wantY := 300 + (w.Player.Y()-300)*w.Config.MagnetPull
	if good.X != 200-w.Speed-w.Config.MagnetExtraSpeed || good.Y != wantY {
		t.Fatalf("pulled entity at %v,%v; want %v,%v", good.X, good.Y, 200-w.Speed-w.Config.MagnetExtraSpeed, wantY)
	}
	if hazard := w.Entities[1]; hazard.X != 200-w.Speed || hazard.Y != 300 {
		t.Fatalf("hazard was pulled: %+v", hazard)
	}
	if far := w.Entities[2]; far.X != 700-w.Speed || far.Y != 300 {
		t.Fatalf("entity outside the window was pulled: %+v", far)
	}
}

func TestAttractorExpiresBeforeFieldMoves(t *testing.T) {
	w, _ := groundedWorld()
	w.PowerUp.Activate(component.PowerUpAttractor, 1)
	w.Spawn(component.Entity{Kind: component.KindProtein, X: 200, Y: 300, Width: 20, Height: 20, Points: 5})

	w.Step++
	ecs.NewScheduler(NewPowerUpSystem(), NewFieldSystem()).Update(w)

	if w.PowerUp.Active(component.PowerUpAttractor) {
		t.Fatalf("attractor still active: %+v", w.PowerUp)
	}
	if good := w.Entities[0]; good.X != 200-w.Speed || good.Y != 300 {
		t.Fatalf("entity pulled on the expiry step: %+v", good)
	}
	expired := false
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventPowerUpExpired {
			expired = true
		}
	}
	if !expired {
		t.Fatalf("no expiry event")
	}
}

func TestFieldScoreOnlyChangesOnScoringKinds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w, _ := groundedWorld()
		kinds := rapid.SliceOfN(rapid.SampledFrom(component.Kinds()), 1, 20).Draw(t, "kinds")
		for _, kind := range kinds {
			w.Spawn(atPlayer(w, kind))
		}

		wantScore, wantCollected := 0, 0
		for i := len(kinds) - 1; i >= 0; i-- {
			kind := kinds[i]
			switch kind.Class() {
			case component.ClassHazard:
				wantScore += w.Config.Kinds[kind].Points
			case component.ClassGood:
				wantScore += w.Config.Kinds[kind].Points * w.Multiplier()
				wantCollected++
			case component.ClassPowerUp:
				w.PowerUp.Activate(kind.PowerUp(), 100)
			}
		}
		w.PowerUp.Clear()

		NewFieldSystem().Update(w)

		if w.Score != wantScore || w.Collected != wantCollected {
			t.Fatalf("score=%d collected=%d; want %d/%d", w.Score, w.Collected, wantScore, wantCollected)
		}
	})
}
