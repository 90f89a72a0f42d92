package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/tutorials/geom"
)

// Palette.
var (
	backgroundColor = colornames.Black
	worldColor      = color.RGBA{8, 30, 60, 255}
	gridColor       = colornames.Slategray
	playerColor     = colornames.Crimson
	hitColor        = colornames.Red
	missColor       = colornames.Green
	hudColor        = colornames.White
	hudShade        = color.RGBA{0, 0, 0, 160}
)

const (
	hudLineHeight = 16
	hudPadding    = 8
	gridSpacing   = 100
)

var (
	hudFace    *text.GoXFace
	whitePixel *ebiten.Image
)

func ensureHUDFace() *text.GoXFace {
	if hudFace == nil {
		hudFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return hudFace
}

// ensureWhitePixel returns a lazily created 1x1 white image used to draw
// solid quads through an arbitrary GeoM.
func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// rectGeoM maps the unit square onto r and then through view.
func rectGeoM(r geom.Rect, view ebiten.GeoM) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(r.Width, r.Height)
	g.Translate(r.X, r.Y)
	g.Concat(view)
	return g
}

// fillRect draws the world-space rect r through view. Rotation is honored.
func fillRect(dst *ebiten.Image, r geom.Rect, view ebiten.GeoM, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = rectGeoM(r, view)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(ensureWhitePixel(), op)
}

// drawHUD prints lines in the top-left corner on a shaded panel.
func drawHUD(dst *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := ensureHUDFace()
	width := 0.0
	for _, l := range lines {
		if w, _ := text.Measure(l, face, hudLineHeight); w > width {
			width = w
		}
	}
	panel := geom.Rect{
		X:      hudPadding / 2,
		Y:      hudPadding / 2,
		Width:  width + hudPadding,
		Height: float64(len(lines)*hudLineHeight) + hudPadding,
	}
	fillRect(dst, panel, ebiten.GeoM{}, hudShade)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudPadding, float64(hudPadding+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(hudColor)
		text.Draw(dst, l, face, op)
	}
}

// drawFPS prints the current FPS and TPS in the top-right corner.
func drawFPS(dst *ebiten.Image) {
	w := dst.Bounds().Dx()
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(dst, msg, w-90, 0)
}

func formatVec(v geom.Vec2) string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
}
