package glimmer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawDebugOverlay prints live effect stats in the top-left corner.
// Enabled via SetDebugMode.
func (e *Effect) drawDebugOverlay(dst *ebiten.Image) {
	ebitenutil.DebugPrint(dst, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\ntrails: %d  points: %d\nverts: %d  draws: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		e.registry.Len(), e.registry.PointCount(),
		e.renderer.vertsSubmitted, e.renderer.drawCalls,
	))
}
