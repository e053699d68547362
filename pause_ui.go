package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	uiTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	uiMutedColor = color.NRGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	uiPanelColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	uiButtonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	uiButtonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func newTitle(face *ebtext.Face, s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, uiTextColor),
		widget.TextOpts.WidgetOpts(rowCenter),
	)
}

var rowCenter = widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

func newButton(face *ebtext.Face, label string, textColor color.Color, onClick func(), opts ...widget.WidgetOpt) *widget.Button {
	opts = append([]widget.WidgetOpt{widget.WidgetOpts.MinSize(140, 28)}, opts...)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(uiButtonIdle),
			Pressed: imageui.NewNineSliceColor(uiButtonDown),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(opts...),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// newPanel returns a centered vertical panel inside an anchor-layout root.
func newPanel(minW, minH int) (*widget.Container, *widget.Container) {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(uiPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return root, panel
}

// NewPauseUI builds the pause menu: Resume, or Quit back to the main menu.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	root, panel := newPanel(int(g.width/3), int(g.height/3))

	panel.AddChild(newTitle(face, "Paused"))
	panel.AddChild(newButton(face, "Resume", uiTextColor, func() {
		g.paused = false
	}, rowCenter))
	panel.AddChild(newButton(face, "Quit", uiTextColor, func() {
		g.showMainMenu()
	}, rowCenter))

	return &ebitenui.UI{Container: root}
}
