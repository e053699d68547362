package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/echoknight/ecs/component"
	"github.com/milk9111/echoknight/session"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorWall       = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	colorAmplify    = color.NRGBA{R: 0x30, G: 0x90, B: 0xff, A: 0xff}
	colorAbsorb     = color.NRGBA{R: 0x40, G: 0x20, B: 0x50, A: 0xff}
	colorEnemy      = color.NRGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	colorStrong     = color.NRGBA{R: 0x90, G: 0x10, B: 0x10, A: 0xff}
	colorBullet     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorWave       = color.NRGBA{R: 0x60, G: 0xf0, B: 0xf0, A: 0xff}
	colorKey        = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	colorDoor       = color.NRGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	colorHealth     = color.NRGBA{R: 0x30, G: 0xd0, B: 0x50, A: 0xff}
	colorBonus      = color.NRGBA{R: 0xff, G: 0x80, B: 0xff, A: 0xff}
	colorPlayer     = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xf0, A: 0xff}
	colorText       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorDebug      = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawWorld(screen *ebiten.Image, views []session.View, debug bool) {
	screen.Fill(colorBackground)
	for _, v := range views {
		x, y := float32(v.Rect.X), float32(v.Rect.Y)
		w, h := float32(v.Rect.Width), float32(v.Rect.Height)

		switch v.Kind {
		case session.KindWall:
			vector.FillRect(screen, x, y, w, h, wallColor(v.Surface), false)
			vector.StrokeRect(screen, x, y, w, h, 1, colorBackground, false)
		case session.KindDoor:
			vector.FillRect(screen, x+4, y, w-8, h, colorDoor, false)
		case session.KindKey:
			vector.FillCircle(screen, x+w/2, y+h/3, w/6, colorKey, true)
			vector.FillRect(screen, x+w/2-2, y+h/3, 4, h/2, colorKey, false)
		case session.KindHealthPack:
			vector.FillRect(screen, x+w/2-4, y+8, 8, h-16, colorHealth, false)
			vector.FillRect(screen, x+8, y+h/2-4, w-16, 8, colorHealth, false)
		case session.KindBonus:
			vector.FillCircle(screen, x+w/2, y+h/2, w/4, colorBonus, true)
		case session.KindEnemy:
			c := colorEnemy
			if v.EnemyKind == component.EnemyStrong {
				c = colorStrong
			}
			vector.FillRect(screen, x, y, w, h, c, false)
			if v.MaxHealth > 1 {
				frac := float32(v.Health) / float32(v.MaxHealth)
				vector.FillRect(screen, x, y-5, w*frac, 3, colorHealth, false)
			}
		case session.KindBullet:
			vector.FillRect(screen, x, y, w, h, colorBullet, false)
		case session.KindWave:
			vector.StrokeCircle(screen, x+w/2, y+h/2, w/2, 2, colorWave, true)
		case session.KindPlayer:
			drawPlayer(screen, v)
		}

		if debug {
			vector.StrokeRect(screen, x, y, w, h, 1, colorDebug, false)
		}
	}
}

func wallColor(s component.Surface) color.Color {
	switch s {
	case component.SurfaceAmplifying:
		return colorAmplify
	case component.SurfaceAbsorbing:
		return colorAbsorb
	default:
		return colorWall
	}
}

// drawPlayer draws a body with a visor on the facing side. The walk frame
// bobs the body by a pixel.
func drawPlayer(screen *ebiten.Image, v session.View) {
	x, y := float32(v.Rect.X), float32(v.Rect.Y)
	w, h := float32(v.Rect.Width), float32(v.Rect.Height)
	bob := float32(v.Frame % 2)
	vector.FillRect(screen, x, y+bob, w, h-bob, colorPlayer, false)

	const visor = 6
	switch v.Facing {
	case component.FacingLeft:
		vector.FillRect(screen, x, y+h/4+bob, visor, h/4, colorWave, false)
	case component.FacingRight:
		vector.FillRect(screen, x+w-visor, y+h/4+bob, visor, h/4, colorWave, false)
	case component.FacingUp:
		vector.FillRect(screen, x+w/4, y+bob, w/2, visor, colorWave, false)
	default:
		vector.FillRect(screen, x+w/4, y+h/4+bob, w/2, visor, colorWave, false)
	}
}

func drawHUD(screen *ebiten.Image, hud session.HUD) {
	key := ""
	if hud.HasKey {
		key = "  [key]"
	}
	lines := []string{
		fmt.Sprintf("Health: %d", hud.Health),
		fmt.Sprintf("Score: %d", hud.Score),
		fmt.Sprintf("Waves: %d/%d", hud.WavesLeft, hud.WaveBudget),
		fmt.Sprintf("Level %d/%d%s", hud.Level+1, hud.LevelCount, key),
	}
	for i, line := range lines {
		drawText(screen, line, 10, 10+float64(i)*16)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	ebtext.Draw(screen, s, hudFace, op)
}
