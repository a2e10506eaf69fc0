package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/proteinrun/common"
)

// Screen lengths in frames at 60 TPS.
const (
	loadingFrames    = 180
	bonusIntroFrames = 120
	bonusScanFrames  = 240
)

type loadingScreen struct {
	frames int
}

func newLoadingScreen() *loadingScreen {
	return &loadingScreen{}
}

func (s *loadingScreen) Update(g *Game) error {
	s.frames++
	if s.frames >= loadingFrames {
		g.switchTo(newStartScreen(g))
	}
	return nil
}

func (s *loadingScreen) Draw(dst *ebiten.Image) {
	dst.Fill(colorBg)
	cx, cy := float32(common.BaseWidth/2), float32(common.BaseHeight/2-20)

	// spinner: a ring with a rotating gap
	angle := float64(s.frames) / 60 * 2 * math.Pi
	for i := 0; i < 12; i++ {
		a := angle + float64(i)*math.Pi/6
		c := colorPrimary
		c.A = uint8(255 * (i + 1) / 12)
		x := cx + float32(math.Cos(a))*26
		y := cy + float32(math.Sin(a))*26
		vector.DrawFilledCircle(dst, x, y, 3, c, true)
	}
	drawCentered(dst, "INITIALIZING MASS SPEC...", float64(cy)+50, colorText)
}

type startScreen struct {
	ui      *ebitenui.UI
	started bool
	detail  *infoUI
	showing bool
}

func newStartScreen(g *Game) *startScreen {
	s := &startScreen{}
	s.detail = newInfoUI(func() { s.showing = false })

	panel := newPanel(common.BaseWidth*2/3, common.BaseHeight*2/3)
	panel.AddChild(newLabel("PROTEIN RUN", colorPrimary, 0))
	panel.AddChild(newLabel("Run through the proteomics pipeline & collect proteins.", colorText, 0))
	panel.AddChild(newLabel("SPACE / CLICK / TAP to jump. Avoid contaminants.", colorText, 0))
	panel.AddChild(newButton("START GAME", func() { s.started = true }))
	panel.AddChild(newLabel("EXPLORE OUR SERVICES", colorAccent, 0))
	for _, info := range g.tuning.cfg.InfoMessages {
		panel.AddChild(newButton(info.Title, func() {
			s.detail.show(info)
			s.showing = true
		}))
	}
	s.ui = newUI(panel)
	return s
}

func (s *startScreen) Update(g *Game) error {
	if s.showing {
		s.detail.ui.Update()
		return nil
	}
	s.ui.Update()
	if g.input.Confirm() {
		s.started = true
	}
	if s.started {
		play, err := newPlayScreen(g)
		if err != nil {
			return fmt.Errorf("start run: %w", err)
		}
		g.switchTo(play)
	}
	return nil
}

func (s *startScreen) Draw(dst *ebiten.Image) {
	dst.Fill(colorBg)
	if s.showing {
		s.detail.ui.Draw(dst)
		return
	}
	s.ui.Draw(dst)
}

type bonusStage int

const (
	bonusIntro bonusStage = iota
	bonusScanning
	bonusDone
)

// bonusScreen is the short slideshow after a lead is submitted.
type bonusScreen struct {
	frames int
	stage  bonusStage
	bars   [10]float64
	hues   [10]color.NRGBA
	ui     *ebitenui.UI
	again  bool
}

func newBonusScreen() *bonusScreen {
	s := &bonusScreen{}
	for i := range s.bars {
		s.bars[i] = 0.2 + rand.Float64()*0.8
		s.hues[i] = color.NRGBA{R: uint8(rand.IntN(128)), G: uint8(rand.IntN(64)), B: 0xff, A: 0xff}
	}

	panel := newPanel(common.BaseWidth/2, common.BaseHeight/3)
	panel.AddChild(newLabel("ANALYSIS COMPLETE", colorPrimary, 0))
	panel.AddChild(newLabel("Thanks for playing! We have received your details and will reach out with exclusive pilot opportunities.", colorText, common.BaseWidth/2-60))
	panel.AddChild(newButton("PLAY AGAIN", func() { s.again = true }))
	s.ui = newUI(panel)
	return s
}

func (s *bonusScreen) Update(g *Game) error {
	s.frames++
	switch s.stage {
	case bonusIntro:
		if s.frames >= bonusIntroFrames {
			s.stage, s.frames = bonusScanning, 0
		}
	case bonusScanning:
		if s.frames >= bonusScanFrames {
			s.stage, s.frames = bonusDone, 0
		}
	case bonusDone:
		s.ui.Update()
		if s.again || g.input.Confirm() {
			g.switchTo(newStartScreen(g))
		}
	}
	return nil
}

func (s *bonusScreen) Draw(dst *ebiten.Image) {
	dst.Fill(color.NRGBA{R: 0x1a, G: 0x0b, B: 0x2e, A: 0xff})
	switch s.stage {
	case bonusIntro:
		drawCentered(dst, "BONUS LEVEL UNLOCKED", common.BaseHeight/2-20, color.NRGBA{G: 0xff, A: 0xff})
		drawCentered(dst, "Inside the Mass Spec...", common.BaseHeight/2+10, colorText)
	case bonusScanning:
		drawCentered(dst, "Acquiring High-Res Spectra...", common.BaseHeight/2-90, colorText)
		base := float32(common.BaseHeight/2 + 60)
		left := float32(common.BaseWidth/2 - 145)
		for i, h := range s.bars {
			// each bar bounces between 20% and its full height
			phase := math.Sin(float64(s.frames)/10 + float64(i)*0.6)
			height := float32(100 * (0.2 + (h-0.2)*(phase+1)/2))
			vector.DrawFilledRect(dst, left+float32(i)*30, base-height, 20, height, s.hues[i], false)
		}
	case bonusDone:
		s.ui.Draw(dst)
	}
}
