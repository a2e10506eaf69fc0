package component

import (
	"image/color"

	"github.com/milk9111/proteinrun/common"
)

// Entity is one live item in the field. Position is the top-left corner in
// world units.
type Entity struct {
	Kind   Kind
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  color.NRGBA
	Points int
}

func (e *Entity) Rect() common.Rect {
	return common.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Gone reports whether the entity's trailing edge has passed the world
// origin.
func (e *Entity) Gone() bool {
	return e.X+e.Width < 0
}
