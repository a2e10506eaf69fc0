package system

import (
	"fmt"
	"math"

	"github.com/milk9111/proteinrun/ecs"
)

// SpeedCurve derives the game speed from the step counter.
type SpeedCurve interface {
	Speed(step int) (float64, error)
}

// RampCurve raises the speed by Step every Every steps.
type RampCurve struct {
	Initial float64
	Every   int
	Step    float64
}

func NewRampCurve(cfg ecs.Config) RampCurve {
	return RampCurve{Initial: cfg.InitialSpeed, Every: cfg.RampEvery, Step: cfg.RampStep}
}

func (c RampCurve) Speed(step int) (float64, error) {
	if c.Every <= 0 {
		return c.Initial, nil
	}
	return c.Initial + c.Step*math.Floor(float64(step)/float64(c.Every)), nil
}

// SpeedSystem recomputes World.Speed each step from the steps already
// completed, so a ramp at step N first applies on step N+1. When the curve
// fails the previous speed is kept and the failure is reported once.
type SpeedSystem struct {
	curve  SpeedCurve
	warned bool
}

func NewSpeedSystem(curve SpeedCurve) *SpeedSystem {
	return &SpeedSystem{curve: curve}
}

func (s *SpeedSystem) Update(w *ecs.World) {
	if w == nil || s.curve == nil {
		return
	}

	step := max(0, w.Step-1)
	speed, err := s.curve.Speed(step)
	if err == nil && (speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0)) {
		err = fmt.Errorf("non-positive speed %g: %w", speed, ecs.ErrSpeedCurve)
	}
	if err != nil {
		if !s.warned {
			fmt.Printf("speed: step=%d keeping %g: %v\n", step, w.Speed, err)
			s.warned = true
		}
		return
	}
	w.Speed = speed
}
