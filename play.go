package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/render"
	"github.com/milk9111/proteinrun/sim"
)

// playScreen hosts one run. It only forwards input and draws views; all
// state lives in the run.
type playScreen struct {
	run      *sim.Run
	renderer *render.Renderer
	info     *infoUI
	debug    bool
	result   *sim.Result
}

func newPlayScreen(g *Game) (*playScreen, error) {
	s := &playScreen{renderer: render.NewRenderer(), debug: g.debug}

	opts := []sim.Option{
		sim.OnComplete(func(res sim.Result) { s.result = &res }),
	}
	if g.seed != 0 {
		opts = append(opts, sim.WithRand(ecs.NewRand(g.seed)))
	}
	run, err := sim.New(g.tuning.cfg, opts...)
	if err != nil {
		return nil, err
	}
	s.run = run
	s.info = newInfoUI(func() { s.run.Resume() })
	return s, nil
}

func (s *playScreen) Update(g *Game) error {
	if info, ok := s.run.Info(); ok {
		s.info.show(info)
		s.info.ui.Update()
		if g.input.Confirm() {
			s.run.Resume()
		}
	} else if g.input.Jump() {
		s.run.Jump()
	}

	s.run.Tick()

	events := s.run.DrainEvents()
	if s.debug {
		for _, evt := range events {
			log.Printf("run: step=%d %s kind=%s points=%d %s", evt.Step, evt.Type, evt.Kind, evt.Points, evt.Text)
		}
	}
	s.renderer.Effects(events)
	s.renderer.Update()

	if s.result != nil {
		g.switchTo(newResultsScreen(g, *s.result))
	}
	return nil
}

func (s *playScreen) Draw(dst *ebiten.Image) {
	v := s.run.View()
	s.renderer.Draw(dst, v)
	if v.Paused {
		s.info.ui.Draw(dst)
	}
}

// Close tears the run down when the screen is left.
func (s *playScreen) Close() {
	s.run.Close()
	s.renderer.Reset()
}
