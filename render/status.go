package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/vellum"
)

// statusRefresh is the number of seconds between redraws of the overlay text.
const statusRefresh = 0.5

// Status is a small debug overlay showing frame rates and the transform of
// one graphic. The text is redrawn onto a private image about twice a
// second, so Draw is cheap every frame.
type Status struct {
	Target vellum.Graphic

	img     *ebiten.Image
	elapsed float64
	text    string
}

// Update advances the refresh timer by dt seconds and rebuilds the text when
// it expires.
func (s *Status) Update(dt float64) {
	s.elapsed += dt
	if s.text != "" && s.elapsed < statusRefresh {
		return
	}
	s.elapsed = 0
	s.text = statusText(ebiten.ActualFPS(), ebiten.ActualTPS(), s.Target)
	if s.img == nil {
		// 160x64 fits four short lines of the debug font.
		s.img = ebiten.NewImage(160, 64)
	}
	s.img.Clear()
	// Semi-transparent background for readability
	s.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(s.img, s.text)
}

// Draw paints the overlay at the top-left corner of dst.
func (s *Status) Draw(dst *ebiten.Image) {
	if s.img == nil {
		return
	}
	dst.DrawImage(s.img, nil)
}

// statusText formats the overlay lines.
func statusText(fps, tps float64, g vellum.Graphic) string {
	txt := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if g == nil {
		return txt
	}
	t := g.Base().Transform()
	return txt + fmt.Sprintf("\nzoom: %.3f\nrot: %.0f flip: %s", t.CumulativeScale(), t.Rotation(), flipLabel(t))
}

func flipLabel(t *vellum.SpatialTransform) string {
	switch {
	case t.FlipX() && t.FlipY():
		return "both"
	case t.FlipX():
		return "v"
	case t.FlipY():
		return "h"
	}
	return "-"
}
