package sim

import (
	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/system"
)

type Option func(*options)

type options struct {
	rand       ecs.Rand
	clock      ecs.Clock
	curve      system.SpeedCurve
	onComplete func(Result)
}

// WithRand replaces the default time-seeded source.
func WithRand(r ecs.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithClock replaces the wall clock that drives timers.
func WithClock(c ecs.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithSpeedCurve replaces the curve otherwise built from the config.
func WithSpeedCurve(c system.SpeedCurve) Option {
	return func(o *options) { o.curve = c }
}

// OnComplete registers the callback that receives the final result.
func OnComplete(fn func(Result)) Option {
	return func(o *options) { o.onComplete = fn }
}
