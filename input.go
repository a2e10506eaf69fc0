package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input collects the one-shot triggers the screens react to.
type Input struct {
	touches []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{}
}

// Jump fires on Space, a left click or a new touch.
func (in *Input) Jump() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	return len(in.touches) > 0
}

// Confirm fires on Enter or Space.
func (in *Input) Confirm() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (in *Input) Copy() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC) &&
		(ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta))
}
