package playing

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/spaceboy/internal/application/state"
	"github.com/younwookim/spaceboy/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{14, 12, 32, 255}
	colorWall    = color.RGBA{80, 80, 110, 255}
	colorDecor   = color.RGBA{40, 40, 70, 255}
	colorGoal    = color.RGBA{120, 220, 255, 255}
	colorCoin    = color.RGBA{255, 215, 0, 255}
	colorEnemy   = color.RGBA{200, 90, 90, 255}
	colorAlert   = color.RGBA{255, 60, 60, 255}
	colorText    = color.RGBA{230, 230, 240, 255}
	colorDim     = color.RGBA{0, 0, 0, 140}
	colorLost    = color.RGBA{100, 0, 0, 180}
	colorWon     = color.RGBA{0, 60, 100, 180}
	playerShades = [...]color.RGBA{
		{100, 200, 100, 255},
		{120, 220, 120, 255},
		{140, 235, 140, 255},
		{120, 220, 120, 255},
	}
)

type fonts struct {
	title  *text.GoTextFace
	normal *text.GoTextFace
	small  *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &fonts{
		title:  &text.GoTextFace{Source: src, Size: 24},
		normal: &text.GoTextFace{Source: src, Size: 12},
		small:  &text.GoTextFace{Source: src, Size: 9},
	}, nil
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	switch p.world.State() {
	case state.StateMenu:
		p.drawMenu(screen)
		return
	case state.StateManual:
		p.drawManual(screen)
		return
	}

	p.drawTiles(screen)
	p.drawEntities(screen)
	p.drawHUD(screen)
	if p.banner != nil {
		p.drawBanner(screen)
	}

	switch p.world.State() {
	case state.StatePaused:
		p.drawOverlay(screen, colorDim, "PAUSED", "Space: resume   Esc: menu")
	case state.StateGameOver:
		p.drawOverlay(screen, colorLost, "GAME OVER", fmt.Sprintf("Coins: %d   Space: menu", p.world.Score()))
	case state.StateWin:
		p.drawOverlay(screen, colorWon, "YOU WIN", fmt.Sprintf("Coins: %d   Space: menu", p.world.Score()))
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	grid := p.world.Grid()
	ts := grid.TileSize
	halfW := float64(p.screenW) / 2 / p.ppu
	halfH := float64(p.screenH) / 2 / p.ppu

	col0 := int(math.Floor((p.camera.X - halfW) / ts))
	col1 := int(math.Floor((p.camera.X + halfW) / ts))
	row0 := int(math.Floor(-(p.camera.Y + halfH) / ts))
	row1 := int(math.Floor(-(p.camera.Y - halfH) / ts))

	size := float32(ts * p.ppu)
	for row := max(row0, 0); row <= row1 && row < grid.Height; row++ {
		for col := max(col0, 0); col <= col1 && col < grid.Width; col++ {
			id := grid.At(col, row)
			if id == 0 {
				continue
			}
			c := colorDecor
			if grid.IsSolid(id) {
				c = colorWall
			}
			x, y := p.camera.ToScreen(entity.Vec2{X: grid.ColLeft(col), Y: grid.RowTop(row)}, p.ppu, p.screenW, p.screenH)
			vector.FillRect(screen, float32(x), float32(y), size, size, c, false)
		}
	}
}

func (p *Playing) drawEntities(screen *ebiten.Image) {
	enemyFrame := p.world.EnemyFrame()
	p.world.Each(func(_ entity.EntityID, e *entity.Entity) {
		if !e.Active {
			return
		}

		var c color.Color
		w, h := e.Width, e.Height
		switch e.Kind {
		case entity.KindPlayer:
			c = playerShades[p.world.PlayerFrame()%len(playerShades)]
		case entity.KindEnemy:
			c = colorEnemy
			if e.Alert {
				c = colorAlert
			}
			// squash on alternate frames
			if enemyFrame%2 == 1 {
				h *= 0.9
			}
		case entity.KindGoal:
			c = colorGoal
		case entity.KindCollectible:
			c = colorCoin
			w, h = w*0.6, h*0.6
		default:
			return
		}

		topLeft := entity.Vec2{X: e.Transform.X - w/2, Y: e.Transform.Y - e.Height/2 + h}
		x, y := p.camera.ToScreen(topLeft, p.ppu, p.screenW, p.screenH)
		vector.FillRect(screen, float32(x), float32(y), float32(w*p.ppu), float32(h*p.ppu), c, false)
	})
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("Level %d/%d   Coins %d", p.world.LevelIndex()+1, p.world.LevelCount(), p.world.Score())
	p.drawText(screen, hud, p.fonts.small, 6, 4, colorText)
}

// drawBanner slides the level title in from the left
func (p *Playing) drawBanner(screen *ebiten.Image) {
	title := p.levelTitle(p.levelIndex())
	w, _ := text.Measure(title, p.fonts.title, 0)
	target := (float64(p.screenW) - w) / 2
	x := -w + (target+w)*float64(p.bannerValue)
	p.drawText(screen, title, p.fonts.title, x, float64(p.screenH)/3, colorText)
}

func (p *Playing) drawMenu(screen *ebiten.Image) {
	p.drawCentered(screen, p.config.Physics.Display.Title, p.fonts.title, float64(p.screenH)/3)
	p.drawCentered(screen, "Space: start", p.fonts.normal, float64(p.screenH)/2+10)
	p.drawCentered(screen, "I: instructions   Esc: quit", p.fonts.small, float64(p.screenH)/2+30)
}

var manualLines = []string{
	"A / Left: move left",
	"D / Right: move right",
	"W / Up: jump",
	"Collect coins, avoid the aliens,",
	"reach the beacon at the end.",
	"Esc: pause",
}

func (p *Playing) drawManual(screen *ebiten.Image) {
	p.drawCentered(screen, "HOW TO PLAY", p.fonts.title, 30)
	y := 80.0
	for _, line := range manualLines {
		p.drawCentered(screen, line, p.fonts.normal, y)
		y += 18
	}
	p.drawCentered(screen, "Space: back", p.fonts.small, float64(p.screenH)-24)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, bg color.Color, title, sub string) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), bg, false)
	p.drawCentered(screen, title, p.fonts.title, float64(p.screenH)/2-24)
	p.drawCentered(screen, sub, p.fonts.normal, float64(p.screenH)/2+12)
}

func (p *Playing) drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, y float64) {
	w, _ := text.Measure(s, face, 0)
	p.drawText(screen, s, face, (float64(p.screenW)-w)/2, y, colorText)
}

func (p *Playing) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
