package system

import (
	"time"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/entity"
)

// fixedRand returns the same draws forever.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// groundedWorld builds a world whose runner rests on the floor.
func groundedWorld() (*ecs.World, *fakeClock) {
	cfg := ecs.DefaultConfig()
	cfg.PlayerY = cfg.Floor - cfg.PlayerHeight
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return ecs.NewWorld(cfg, entity.NewPlayer(cfg), fixedRand{f: 0.5}, ecs.NewTimers(clock)), clock
}
