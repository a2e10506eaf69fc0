package main

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/proteinrun/common"
	"github.com/milk9111/proteinrun/lead"
	"github.com/milk9111/proteinrun/sim"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copyText puts s on the system clipboard. An unavailable clipboard is
// reported, never fatal.
func copyText(s string) error {
	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		return clipboardErr
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

// resultsScreen shows the final score and captures the lead.
type resultsScreen struct {
	result sim.Result
	ui     *ebitenui.UI

	email    *widget.TextInput
	name     *widget.TextInput
	interest string

	interestLabel *widget.Text
	serviceTitle  *widget.Text
	serviceBody   *widget.Text
	status        *widget.Text

	submitted *lead.Lead
}

func newResultsScreen(g *Game, res sim.Result) *resultsScreen {
	s := &resultsScreen{result: res, interest: lead.DefaultInterest}

	s.email = newTextInput("researcher@lab.com")
	s.name = newTextInput("Name (optional)")
	s.interestLabel = newLabel("", colorPrimary, 0)
	s.serviceTitle = newLabel("", colorAccent, 0)
	s.serviceBody = newLabel("", colorText, common.BaseWidth*2/3-60)
	s.status = newLabel("Ctrl+C copies your score.", colorText, 0)

	panel := newPanel(common.BaseWidth*2/3, common.BaseHeight*3/4)
	panel.AddChild(newLabel("RUN COMPLETE", colorPrimary, 0))
	panel.AddChild(newLabel(fmt.Sprintf("SCORE: %d   PROTEINS COLLECTED: %d", res.Score, res.Collected), colorText, 0))
	panel.AddChild(newLabel("Email Address", colorText, 0))
	panel.AddChild(s.email)
	panel.AddChild(s.name)
	panel.AddChild(newLabel("Select your interest:", colorText, 0))
	panel.AddChild(s.interestLabel)
	panel.AddChild(newButton("CHANGE INTEREST", func() { s.setInterest(g, lead.NextInterest(s.interest)) }))
	panel.AddChild(s.serviceTitle)
	panel.AddChild(s.serviceBody)
	panel.AddChild(newButton("CLAIM PILOT PROJECT", func() { s.submit(g) }))
	panel.AddChild(s.status)
	s.ui = newUI(panel)

	s.setInterest(g, s.interest)
	return s
}

func (s *resultsScreen) setInterest(g *Game, interest string) {
	s.interest = interest
	s.interestLabel.Label = interest
	if svc, _ := g.tuning.catalog.Service(interest); svc.Title != "" {
		s.serviceTitle.Label = svc.Title
		s.serviceBody.Label = svc.Body
	}
}

func (s *resultsScreen) submit(g *Game) {
	l := lead.Lead{
		Email:     s.email.GetText(),
		Name:      s.name.GetText(),
		Interest:  s.interest,
		Score:     s.result.Score,
		Collected: s.result.Collected,
	}
	if err := l.Validate(); err != nil {
		if errors.Is(err, lead.ErrEmail) {
			s.status.Label = "Please enter a valid email address."
		} else {
			s.status.Label = err.Error()
		}
		return
	}
	s.submitted = &l
}

func (s *resultsScreen) Update(g *Game) error {
	s.ui.Update()

	if g.input.Copy() {
		if err := copyText(lead.ShareLine(s.result.Score, s.result.Collected)); err != nil {
			log.Printf("clipboard: %v", err)
			s.status.Label = "Clipboard unavailable."
		} else {
			s.status.Label = "Copied!"
		}
	}

	if s.submitted != nil {
		g.sink(*s.submitted)
		g.switchTo(newBonusScreen())
	}
	return nil
}

func (s *resultsScreen) Draw(dst *ebiten.Image) {
	dst.Fill(colorBg)
	s.ui.Draw(dst)
}
