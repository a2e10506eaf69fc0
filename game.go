package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/proteinrun/common"
	"github.com/milk9111/proteinrun/lead"
)

// screen is one step of the loading → start → playing → results → bonus
// sequence.
type screen interface {
	Update(g *Game) error
	Draw(dst *ebiten.Image)
}

// closer is implemented by screens holding resources that must be released
// when the game moves on.
type closer interface {
	Close()
}

type Game struct {
	frames int
	debug  bool
	seed   uint64

	input  *Input
	tuning *tuning
	sink   lead.Sink
	screen screen
}

type gameOptions struct {
	debug  bool
	seed   uint64
	tuning string
	sink   lead.Sink
}

func NewGame(opts gameOptions) (*Game, error) {
	t, err := loadTuning(opts.tuning)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		t.watch()
	}
	if opts.sink == nil {
		opts.sink = lead.LogSink
	}

	g := &Game{
		debug:  opts.debug,
		seed:   opts.seed,
		input:  NewInput(),
		tuning: t,
		sink:   opts.sink,
	}
	g.screen = newLoadingScreen()
	return g, nil
}

// switchTo replaces the current screen, releasing the old one.
func (g *Game) switchTo(next screen) {
	if c, ok := g.screen.(closer); ok {
		c.Close()
	}
	g.screen = next
}

func (g *Game) Update() error {
	g.frames++
	g.tuning.poll()
	return g.screen.Update(g)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, common.BaseHeight-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if c, ok := g.screen.(closer); ok {
		c.Close()
	}
	g.tuning.close()
}
