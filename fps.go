package imagedit

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the status overlay text is redrawn, in seconds.
const hudRefresh = 0.5

// statusHUD is the overlay Run draws when RunConfig.ShowFPS is set: FPS,
// TPS, zoom scale and the active drawing mode.
type statusHUD struct {
	img     *ebiten.Image
	elapsed float64
}

func newStatusHUD() *statusHUD {
	// 160x48 fits four lines of debug text
	return &statusHUD{img: ebiten.NewImage(160, 48), elapsed: hudRefresh}
}

// update redraws the overlay about every hudRefresh seconds.
func (h *statusHUD) update(dt float64, s *Session) {
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0

	mode := s.Modes().Current()
	if mode == "" {
		mode = "-"
	}
	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nZoom: %.2fx\nMode: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.Viewport().CurrentValue(), mode))
}

func (h *statusHUD) draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(8, 8)
	screen.DrawImage(h.img, &op)
}
