// Package sim drives one run of the game: it owns the world, steps the
// systems once per host frame and reports the result when time is up.
package sim

import (
	"fmt"
	"time"

	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
	"github.com/milk9111/proteinrun/ecs/entity"
	"github.com/milk9111/proteinrun/ecs/system"
)

// Result is what a finished run reports.
type Result struct {
	Score     int
	Collected int
}

type Run struct {
	world      *ecs.World
	scheduler  *ecs.Scheduler
	onComplete func(Result)
	closed     bool
}

// New validates cfg and builds a run ready to tick.
func New(cfg ecs.Config, opts ...Option) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rand == nil {
		o.rand = ecs.NewRand(uint64(time.Now().UnixNano()))
	}

	curve := o.curve
	if curve == nil {
		var err error
		curve, err = curveFor(cfg)
		if err != nil {
			return nil, err
		}
	}
	initial, err := curve.Speed(0)
	if err != nil {
		return nil, fmt.Errorf("sim: speed at step 0: %v: %w", err, ecs.ErrSpeedCurve)
	}
	if initial <= 0 {
		return nil, fmt.Errorf("sim: speed at step 0 is %g: %w", initial, ecs.ErrSpeedCurve)
	}

	w := ecs.NewWorld(cfg, entity.NewPlayer(cfg), o.rand, ecs.NewTimers(o.clock))
	w.Speed = initial

	return &Run{
		world: w,
		scheduler: ecs.NewScheduler(
			system.NewToastSystem(),
			system.NewPowerUpSystem(),
			system.NewSpeedSystem(curve),
			system.NewPhysicsSystem(),
			system.NewSpawnSystem(),
			system.NewFieldSystem(),
		),
		onComplete: o.onComplete,
	}, nil
}

func curveFor(cfg ecs.Config) (system.SpeedCurve, error) {
	if cfg.SpeedScript == "" {
		return system.NewRampCurve(cfg), nil
	}
	curve, err := system.LoadScriptCurve(cfg.SpeedScript)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return curve, nil
}

// Tick services timers and, unless paused or finished, advances one step.
func (r *Run) Tick() {
	if r == nil || r.closed || r.world.Done {
		return
	}

	w := r.world
	w.Timers.Poll()
	if w.Paused() {
		return
	}

	w.Step++
	r.scheduler.Update(w)

	if w.Step >= w.Config.RunSteps {
		r.finish()
	}
}

func (r *Run) finish() {
	w := r.world
	w.Done = true
	// the run is over; a pause from the final step has nothing to resume
	w.Pause.Clear()
	res := Result{Score: w.Score, Collected: w.Collected}
	w.Emit(ecs.Event{Type: ecs.EventComplete, Points: res.Score})
	w.Timers.Close()
	if r.onComplete != nil {
		r.onComplete(res)
	}
}

// Jump launches the runner when it is grounded and the run is live.
func (r *Run) Jump() bool {
	if r == nil || r.closed || r.world.Done || r.world.Paused() {
		return false
	}
	return r.world.Player.Jump(r.world.Config.JumpVelocity)
}

// Resume ends an info pause. It does nothing while running.
func (r *Run) Resume() bool {
	if r == nil || r.closed || !r.world.Pause.Clear() {
		return false
	}
	r.world.Emit(ecs.Event{Type: ecs.EventResumed})
	return true
}

// Close stops the run for good. Pending timers are dropped and the
// completion callback will never fire.
func (r *Run) Close() {
	if r == nil || r.closed {
		return
	}
	r.closed = true
	r.world.Timers.Close()
	r.world.ToastTimer = 0
}

func (r *Run) View() ecs.View {
	return r.world.View()
}

func (r *Run) DrainEvents() []ecs.Event {
	return r.world.Events().Drain()
}

func (r *Run) Done() bool {
	return r.world.Done
}

// Info returns the message of the current pause.
func (r *Run) Info() (component.InfoMessage, bool) {
	return r.world.Pause.Info()
}

// World exposes the live state for tests and debug tooling.
func (r *Run) World() *ecs.World {
	return r.world
}
