package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	uiFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	colorText    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorPrimary = color.NRGBA{R: 0x00, G: 0xf0, B: 0xff, A: 0xff}
	colorAccent  = color.NRGBA{R: 0xff, G: 0x00, B: 0x99, A: 0xff}
	colorBg      = color.NRGBA{R: 0x0a, G: 0x0e, B: 0x17, A: 0xff}
)

func newLabel(s string, c color.Color, maxWidth float64) *widget.Text {
	opts := []widget.TextOpt{
		widget.TextOpts.Text(s, &uiFace, c),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	}
	if maxWidth > 0 {
		opts = append(opts, widget.TextOpts.MaxWidth(maxWidth))
	}
	return widget.NewText(opts...)
}

func newButton(label string, onClick func()) *widget.Button {
	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x50, B: 0x60, A: 0xff})
	pressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0xa0, B: 0xb0, A: 0xff})
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: pressed, Pressed: pressed}),
		widget.ButtonOpts.Text(label, &uiFace, &widget.ButtonTextColor{Idle: colorText}),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newTextInput(placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 0x1a, G: 0x20, B: 0x30, A: 0xff}),
			Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{Idle: colorText, Disabled: color.Gray{Y: 120}, Caret: colorPrimary}),
		widget.TextInputOpts.Padding(&widget.Insets{Left: 8, Right: 8, Top: 6, Bottom: 6}),
		widget.TextInputOpts.Face(&uiFace),
		widget.TextInputOpts.Placeholder(placeholder),
	)
}

// newPanel is a centered vertical container on a translucent background.
func newPanel(minWidth, minHeight int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minWidth, minHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

func newUI(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func drawCentered(dst *ebiten.Image, s string, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(dst.Bounds().Dx())/2, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = ebtext.AlignCenter
	ebtext.Draw(dst, s, uiFace, op)
}
