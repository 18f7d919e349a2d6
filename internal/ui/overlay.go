//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"cells/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay prints the current board settings in the corner of the view.
type Overlay struct {
	sim     core.Sim
	visible bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update handles the overlay toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the status line and the parameter readout on top of the
// simulation view. Text carries a one-pixel shadow so it stays legible
// on both live and dead cells.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	y := 14
	drawLine := func(s string) {
		text.Draw(screen, s, face, 7, y+1, color.Black)
		text.Draw(screen, s, face, 6, y, color.White)
		y += 14
	}

	if status != "" {
		drawLine(status)
	}
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	for _, group := range provider.Parameters().Groups {
		parts := make([]string, 0, len(group.Params))
		for _, p := range group.Params {
			parts = append(parts, fmt.Sprintf("%s=%s", p.Key, p.Value))
		}
		drawLine(group.Name + "  " + strings.Join(parts, " "))
	}
}
