package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cityfolio/common"
	"github.com/milk9111/cityfolio/prefabs"
)

// CardUI is the centered portfolio card shown while the rider is stopped.
type CardUI struct {
	ui *ebitenui.UI
}

// NewCardUI builds a card panel. The finish card swaps Continue for Restart.
// onCopyLink is nil when the clipboard is unavailable; the button is hidden.
func NewCardUI(card prefabs.CardSpec, finish bool, onContinue func(), onCopyLink func(link string)) *CardUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x14, B: 0x18, A: 235})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x3b, B: 0x44, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x5a, G: 0x86, B: 0xa8, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{
		Idle:    color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
		Pressed: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	title := widget.NewText(
		widget.TextOpts.Text(card.Title, &face, color.NRGBA{R: 0xff, G: 0xd7, B: 0x8a, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	panel.AddChild(title)

	for _, line := range card.BodyLines() {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		))
	}

	buttonRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	if card.Link != "" && onCopyLink != nil {
		link := card.Link
		buttonRow.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text("Copy link", &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 36)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onCopyLink(link)
			}),
		))
	}

	continueLabel := "Continue"
	if finish {
		continueLabel = "Restart"
	}
	buttonRow.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text(continueLabel, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 36)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onContinue != nil {
				onContinue()
			}
		}),
	))

	panel.AddChild(buttonRow)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &CardUI{ui: &ebitenui.UI{Container: root}}
}

func (c *CardUI) Update() {
	if c == nil {
		return
	}
	c.ui.Update()
}

func (c *CardUI) Draw(screen *ebiten.Image) {
	if c == nil {
		return
	}
	c.ui.Draw(screen)
}
