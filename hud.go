package pullrefresh

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 180x64 is enough for four lines of debug text.
const (
	hudWidth  = 180
	hudHeight = 64
)

// hudText formats the overlay: refresh state, offset, and frame rates.
func hudText(l *Layout, fps, tps float64) string {
	return fmt.Sprintf("state: %s\noffset: %d/%d\nrefreshing: %t\nFPS: %.1f TPS: %.1f",
		l.State(), l.Offset(), l.MaxDragDistance(), l.IsRefreshing(), fps, tps)
}

// drawHUD draws the overlay in the bottom-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	if g.hud == nil {
		g.hud = ebiten.NewImage(hudWidth, hudHeight)
	}
	g.hud.Clear()
	// Semi-transparent background for readability
	g.hud.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.hud, hudText(g.layout, ebiten.ActualFPS(), ebiten.ActualTPS()))

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(0, float64(screen.Bounds().Dy()-hudHeight))
	screen.DrawImage(g.hud, &op)
}
