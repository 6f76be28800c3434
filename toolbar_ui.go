package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/cityfolio/ecs/component"
)

// toolbarHeight is the strip at the top of the screen the toolbar owns.
// Clicks inside it never reach the grid.
const toolbarHeight = 56

// ToolBar is the build-tool strip across the top of the screen.
type ToolBar struct {
	ui      *ebitenui.UI
	group   *widget.RadioGroup
	buttons []*widget.Button
}

// NewToolBarUI builds one toggle button per tool in a radio group, so exactly
// one tool is active at a time.
func NewToolBarUI(onToolSelected func(tool component.Tool)) *ToolBar {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x1c, G: 0x22, B: 0x28, A: 230})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x3b, B: 0x44, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x5a, G: 0x86, B: 0xa8, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{
		Idle:    color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
		Pressed: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, toolbarHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	var buttons []*widget.Button
	for tool := component.Tool(0); tool < component.ToolCount; tool++ {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(tool.String(), &face, btnTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(72, 40),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
		)
		buttons = append(buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil {
				return
			}
			for idx, b := range buttons {
				if args.Active == b {
					onToolSelected(component.Tool(idx))
					return
				}
			}
		}),
	)
	group.SetActive(buttons[component.ToolInspect])

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(toolbar)

	return &ToolBar{
		ui:      &ebitenui.UI{Container: root},
		group:   group,
		buttons: buttons,
	}
}

func (t *ToolBar) Update() {
	if t == nil {
		return
	}
	t.ui.Update()
}

func (t *ToolBar) Draw(screen *ebiten.Image) {
	if t == nil {
		return
	}
	t.ui.Draw(screen)
}
