//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding    = 8
	overlayLineHeight = 16
	overlayCharWidth  = 7
)

// Overlay draws the generation counter and the controls help on top of the
// board.
type Overlay struct {
	showStatus   bool
	showControls bool
	panel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance with both sections visible.
func NewOverlay() *Overlay {
	return &Overlay{showStatus: true, showControls: true}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		o.showStatus = !o.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showControls = !o.showControls
	}
}

// Draw renders the enabled sections in a translucent panel at the top left.
func (o *Overlay) Draw(screen *ebiten.Image, st Status) {
	lines := st.Lines(o.showStatus, o.showControls)
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l)*overlayCharWidth)
	}
	pw := width + 2*overlayPadding
	ph := len(lines)*overlayLineHeight + 2*overlayPadding
	if o.panel == nil || o.panel.Bounds().Dx() != pw || o.panel.Bounds().Dy() != ph {
		o.panel = ebiten.NewImage(pw, ph)
		o.panel.Fill(color.RGBA{A: 160})
	}
	screen.DrawImage(o.panel, &ebiten.DrawImageOptions{})

	for i, l := range lines {
		y := overlayPadding + (i+1)*overlayLineHeight - 4
		text.Draw(screen, l, basicfont.Face7x13, overlayPadding, y, color.White)
	}
}
