package system

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/prefabs"
)

// ScriptCurve evaluates a tengo script that reads `step` and assigns
// `speed`. The script is compiled once.
type ScriptCurve struct {
	name     string
	compiled *tengo.Compiled
	last     float64
}

// LoadScriptCurve compiles the named script from prefabs/scripts.
func LoadScriptCurve(name string) (*ScriptCurve, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("speed script %s: %w", name, err)
	}
	return NewScriptCurve(name, src)
}

// NewScriptCurve compiles src and evaluates it at step 0. Both failures are
// configuration errors.
func NewScriptCurve(name string, src []byte) (*ScriptCurve, error) {
	script := tengo.NewScript(src)
	_ = script.Add("step", 0)
	_ = script.Add("speed", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("speed script %s: compile: %v: %w", name, err, ecs.ErrSpeedCurve)
	}

	c := &ScriptCurve{name: name, compiled: compiled}
	speed, err := c.eval(0)
	if err != nil {
		return nil, fmt.Errorf("speed script %s: step 0: %v: %w", name, err, ecs.ErrSpeedCurve)
	}
	c.last = speed
	return c, nil
}

// Speed returns the scripted speed, or the last good value with the error.
func (c *ScriptCurve) Speed(step int) (float64, error) {
	speed, err := c.eval(step)
	if err != nil {
		return c.last, err
	}
	c.last = speed
	return speed, nil
}

func (c *ScriptCurve) eval(step int) (float64, error) {
	if err := c.compiled.Set("step", step); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}
	speed := c.compiled.Get("speed").Float()
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return 0, fmt.Errorf("%s: step %d: speed %g", c.name, step, speed)
	}
	return speed, nil
}
