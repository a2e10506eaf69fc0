package ecs

import (
	"image/color"

	"github.com/milk9111/proteinrun/common"
	"github.com/milk9111/proteinrun/ecs/component"
)

type EntityView struct {
	Kind  component.Kind
	Class component.Class
	Rect  common.Rect
	Color color.NRGBA
}

// View is a read-only snapshot of a world. It shares no memory with it.
type View struct {
	Step      int
	RunSteps  int
	TPS       int
	Score     int
	Collected int
	Speed     float64
	Toast     string
	Done      bool

	PowerUp          component.PowerUpKind
	PowerUpRemaining int

	Paused bool
	Info   component.InfoMessage

	WorldWidth  float64
	WorldHeight float64
	Floor       float64

	Player      common.Rect
	PlayerColor color.NRGBA
	Grounded    bool
	Entities    []EntityView
}

// Remaining is the number of active steps left in the run.
func (v View) Remaining() int {
	return max(0, v.RunSteps-v.Step)
}

func (w *World) View() View {
	v := View{
		Step:             w.Step,
		RunSteps:         w.Config.RunSteps,
		TPS:              w.Config.NominalTPS,
		Score:            w.Score,
		Collected:        w.Collected,
		Speed:            w.Speed,
		Toast:            w.Toast,
		Done:             w.Done,
		PowerUp:          w.PowerUp.Kind,
		PowerUpRemaining: w.PowerUp.Remaining,
		WorldWidth:       w.Config.WorldWidth,
		WorldHeight:      w.Config.WorldHeight,
		Floor:            w.Config.Floor,
		PlayerColor:      w.Config.PlayerColor,
	}
	if info, ok := w.Pause.Info(); ok {
		v.Paused = true
		v.Info = info
	}
	if w.Player != nil {
		v.Player = w.Player.Rect()
		v.Grounded = w.Player.Grounded
	}
	if len(w.Entities) > 0 {
		v.Entities = make([]EntityView, len(w.Entities))
		for i := range w.Entities {
			e := &w.Entities[i]
			v.Entities[i] = EntityView{Kind: e.Kind, Class: e.Kind.Class(), Rect: e.Rect(), Color: e.Color}
		}
	}
	return v
}
