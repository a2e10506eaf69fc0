package ecs

import (
	"github.com/milk9111/proteinrun/ecs/component"
)

// World is the single authoritative state of one run. Systems mutate it
// during a step; everything else reads a View.
type World struct {
	Config Config

	Step      int
	Score     int
	Collected int
	Speed     float64
	Toast     string
	Done      bool

	Player   *component.PlayerBody
	Entities []component.Entity
	PowerUp  component.PowerUp
	Pause    component.Pause

	Rand       Rand
	Timers     *Timers
	ToastTimer TimerID

	events EventQueue
}

func NewWorld(cfg Config, player *component.PlayerBody, rng Rand, timers *Timers) *World {
	if rng == nil {
		rng = NewRand(1)
	}
	if timers == nil {
		timers = NewTimers(nil)
	}
	return &World{
		Config: cfg,
		Speed:  cfg.InitialSpeed,
		Player: player,
		Rand:   rng,
		Timers: timers,
	}
}

// Emit queues an event stamped with the current step.
func (w *World) Emit(evt Event) {
	evt.Step = w.Step
	w.events.Push(evt)
}

func (w *World) Events() *EventQueue {
	return &w.events
}

// Multiplier is the factor applied to good collectibles right now.
func (w *World) Multiplier() int {
	if w.PowerUp.Active(component.PowerUpMultiplier) {
		return w.Config.Multiplier
	}
	return 1
}

func (w *World) SpawnInterval() int {
	return w.Config.SpawnInterval(w.Speed)
}

// Spawn appends an entity to the field.
func (w *World) Spawn(e component.Entity) {
	w.Entities = append(w.Entities, e)
}

// RemoveEntity drops the entity at index i, keeping the order of the rest.
func (w *World) RemoveEntity(i int) {
	if i < 0 || i >= len(w.Entities) {
		return
	}
	w.Entities = append(w.Entities[:i], w.Entities[i+1:]...)
}

// EnterInfo pauses the world on msg. It fails when already paused.
func (w *World) EnterInfo(msg component.InfoMessage) bool {
	return w.Pause.Enter(msg)
}

func (w *World) Paused() bool {
	return w.Pause.Paused()
}
