package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/echoknight/prefabs"
	"github.com/milk9111/echoknight/session"
)

type screenState int

const (
	screenMainMenu screenState = iota
	screenLevelSelect
	screenPlaying
	screenWon
)

type Game struct {
	session *session.Session
	sounds  *Sounds
	watcher *prefabs.Watcher

	width  float64
	height float64

	state   screenState
	paused  bool
	quit    bool
	debug   bool
	startAt int

	mainMenu    *ebitenui.UI
	levelSelect *ebitenui.UI
	pauseUI     *ebitenui.UI
	wonUI       *ebitenui.UI
}

// NewGame opens on the main menu. startLevel is what Play loads.
func NewGame(sess *session.Session, sounds *Sounds, watcher *prefabs.Watcher, startLevel int, debug bool) *Game {
	spec := sess.Spec()
	g := &Game{
		session: sess,
		sounds:  sounds,
		watcher: watcher,
		width:   spec.Playfield.Width,
		height:  spec.Playfield.Height,
		debug:   debug,
		startAt: startLevel,
	}
	g.mainMenu = NewMainMenuUI(g)
	g.pauseUI = NewPauseUI(g)
	g.wonUI = NewWonUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadTuning()

	switch g.state {
	case screenMainMenu:
		g.mainMenu.Update()
	case screenLevelSelect:
		g.levelSelect.Update()
	case screenWon:
		g.wonUI.Update()
	case screenPlaying:
		g.updatePlaying()
	}
	return nil
}

func (g *Game) updatePlaying() {
	in := pollInput()
	if in.Pause {
		g.paused = !g.paused
		return
	}
	if g.paused {
		g.pauseUI.Update()
		return
	}

	res := g.session.Step(in)
	g.sounds.Play(res.Events)
	if res.Won {
		g.state = screenWon
	}
}

// startLevel begins a fresh attempt at index and switches to play.
func (g *Game) startLevel(index int) {
	if err := g.session.Load(index); err != nil {
		log.Printf("game: load level %d: %v", index+1, err)
		return
	}
	g.paused = false
	g.state = screenPlaying
}

func (g *Game) showMainMenu() {
	g.paused = false
	g.state = screenMainMenu
}

func (g *Game) showLevelSelect() {
	// Rebuilt each time so newly unlocked levels show up.
	g.levelSelect = NewLevelSelectUI(g)
	g.state = screenLevelSelect
}

func (g *Game) reloadTuning() {
	changes := g.watcher.Poll()
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		log.Printf("game: %s changed", c.Path)
	}
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("game: reload tuning: %v", err)
		return
	}
	g.session.ApplySpec(spec)
	log.Printf("game: tuning reloaded; applies from the next level load")
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case screenMainMenu:
		screen.Fill(colorBackground)
		g.mainMenu.Draw(screen)
	case screenLevelSelect:
		screen.Fill(colorBackground)
		g.levelSelect.Draw(screen)
	case screenPlaying, screenWon:
		drawWorld(screen, g.session.Views(), g.debug)
		drawHUD(screen, g.session.HUD())
		if g.state == screenWon {
			g.wonUI.Draw(screen)
		} else if g.paused {
			g.pauseUI.Draw(screen)
		}
	}

	if g.debug {
		drawText(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), g.width-170, 10)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
