package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/proteinrun/common"
	"github.com/milk9111/proteinrun/ecs/component"
)

// infoUI is the modal shown while an info point pauses the run.
type infoUI struct {
	ui    *ebitenui.UI
	title *widget.Text
	body  *widget.Text
}

func newInfoUI(onResume func()) *infoUI {
	title := newLabel("", colorAccent, 0)
	body := newLabel("", colorText, common.BaseWidth/2)
	resume := newButton("RESUME", onResume)

	panel := newPanel(common.BaseWidth/2, common.BaseHeight/3)
	panel.AddChild(newLabel("DID YOU KNOW?", colorPrimary, 0))
	panel.AddChild(title)
	panel.AddChild(body)
	panel.AddChild(resume)

	return &infoUI{ui: newUI(panel), title: title, body: body}
}

func (u *infoUI) show(msg component.InfoMessage) {
	u.title.Label = msg.Title
	u.body.Label = msg.Body
}
