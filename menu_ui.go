package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// NewMainMenuUI offers Play, Level select and Quit.
func NewMainMenuUI(g *Game) *ebitenui.UI {
	face := uiFace()
	root, panel := newPanel(int(g.width/3), int(g.height/2))

	panel.AddChild(newTitle(face, "Echo Knight"))
	panel.AddChild(newButton(face, "Play", uiTextColor, func() {
		g.startLevel(g.startAt)
	}, rowCenter))
	panel.AddChild(newButton(face, "Level select", uiTextColor, func() {
		g.showLevelSelect()
	}, rowCenter))
	panel.AddChild(newButton(face, "Quit", uiTextColor, func() {
		g.quit = true
	}, rowCenter))

	return &ebitenui.UI{Container: root}
}

// NewLevelSelectUI lists every level in a grid. Locked levels are greyed out
// and ignore clicks.
func NewLevelSelectUI(g *Game) *ebitenui.UI {
	face := uiFace()
	root, panel := newPanel(int(g.width*2/3), int(g.height*2/3))
	panel.AddChild(newTitle(face, "Select level"))

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(5),
			widget.GridLayoutOpts.Spacing(8, 8),
		)),
		widget.ContainerOpts.WidgetOpts(rowCenter),
	)

	unlocked := g.session.Unlocked()
	for i := 0; i < g.session.LevelCount(); i++ {
		index := i
		label := fmt.Sprintf("%d", index+1)
		textColor := uiTextColor
		if index > unlocked {
			label += " (locked)"
			textColor = uiMutedColor
		}
		grid.AddChild(newButton(face, label, textColor, func() {
			if index > g.session.Unlocked() {
				return
			}
			g.startLevel(index)
		}))
	}
	panel.AddChild(grid)
	panel.AddChild(newButton(face, "Back", uiTextColor, func() {
		g.showMainMenu()
	}, rowCenter))

	return &ebitenui.UI{Container: root}
}

// NewWonUI is shown once the last level's door is reached.
func NewWonUI(g *Game) *ebitenui.UI {
	face := uiFace()
	root, panel := newPanel(int(g.width/3), int(g.height/3))

	panel.AddChild(newTitle(face, "You won!"))
	panel.AddChild(newButton(face, "Main menu", uiTextColor, func() {
		g.showMainMenu()
	}, rowCenter))
	panel.AddChild(newButton(face, "Quit", uiTextColor, func() {
		g.quit = true
	}, rowCenter))

	return &ebitenui.UI{Container: root}
}
