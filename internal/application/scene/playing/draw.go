package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/avaskine/knightfall/internal/application/state"
	"github.com/avaskine/knightfall/internal/domain/entity"
	"github.com/avaskine/knightfall/internal/domain/geom"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlatform = color.RGBA{80, 80, 100, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorHurt     = color.RGBA{255, 255, 255, 200}
	colorGround   = color.RGBA{200, 100, 100, 255}
	colorFlying   = color.RGBA{170, 100, 200, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorAttack   = color.RGBA{200, 200, 100, 128}
	colorHealth   = color.RGBA{200, 60, 60, 255}
)

// Draw renders the game screen (implements scene.Scene).
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX := p.camera.Pos.X
	camY := p.camera.Pos.Y

	for _, platform := range p.level.Platforms {
		drawRect(screen, platform, camX, camY, colorPlatform)
	}

	for i := range p.coins {
		if p.coins[i].Collected {
			continue
		}
		drawRect(screen, p.coins[i].Body, camX, camY, colorCoin)
	}

	for i := range p.enemies {
		e := &p.enemies[i]
		if !e.Alive {
			continue
		}

		c := colorGround
		if e.Kind == entity.KindFlying {
			c = colorFlying
		}
		if e.DamageFlash(p.config.Combat.FlashThreshold) {
			c = colorHurt
		}
		drawRect(screen, e.Body, camX, camY, c)
	}

	p.drawPlayer(screen, camX, camY)
	p.drawHUD(screen)

	if p.mode != state.ModePlaying {
		p.drawFadeOverlay(screen)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	c := colorPlayer
	if p.player.DamageFlash(p.config.Combat.FlashThreshold) {
		c = colorHurt
	}
	drawRect(screen, p.player.Body, camX, camY, c)

	if p.player.IsAttacking() {
		drawRect(screen, p.player.AttackHitbox, camX, camY, colorAttack)
	}
}

// drawHUD renders one square per remaining health point, plus the coin
// count.
func (p *Playing) drawHUD(screen *ebiten.Image) {
	const size, pad = 20, 6
	for i := 0; i < p.player.Health; i++ {
		x := float64(pad + i*(size+pad))
		ebitenutil.DrawRect(screen, x, pad, size, size, colorHealth)
	}

	collected := 0
	for i := range p.coins {
		if p.coins[i].Collected {
			collected++
		}
	}
	ebitenutil.DebugPrintAt(
		screen,
		fmt.Sprintf("coins %d/%d", collected, len(p.coins)),
		pad, pad*2+size,
	)
}

// drawFadeOverlay covers the screen with the transition color: white
// for a win, black for a death. Alpha is premultiplied.
func (p *Playing) drawFadeOverlay(screen *ebiten.Image) {
	a := uint8(p.fadeAlpha)
	c := color.RGBA{0, 0, 0, a}
	if p.winning {
		c = color.RGBA{a, a, a, a}
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.camera.ViewW), float64(p.camera.ViewH), c)
}

func drawRect(screen *ebiten.Image, r geom.Rect, camX, camY float64, c color.Color) {
	ebitenutil.DrawRect(
		screen,
		float64(r.X)-camX,
		float64(r.Y)-camY,
		float64(r.W),
		float64(r.H),
		c,
	)
}
