//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"cells/internal/core"
	"cells/internal/render"
	"cells/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cycler is implemented by sims that fill a finite frame and can be
// re-armed with another rule once done.
type cycler interface {
	Full() bool
	NextRule() int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	cycle      bool
	cycleDelay time.Duration
	fullSince  time.Time
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
		// Live cells are drawn dark on a light background.
		onColor:    color.Black,
		offColor:   color.White,
		scale:      opts.Scale,
		seed:       opts.Seed,
		cycle:      opts.Cycle,
		cycleDelay: opts.CycleDelay,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.fullSince = time.Time{}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if c, ok := g.sim.(cycler); ok && c.Full() {
		g.handleFull(c)
		return nil
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// handleFull waits out the cycle delay on a finished board, then
// re-arms it with the next rule and a fresh seed.
func (g *Game) handleFull(c cycler) {
	if !g.cycle {
		return
	}
	now := time.Now()
	if g.fullSince.IsZero() {
		g.fullSince = now
		return
	}
	if now.Sub(g.fullSince) < g.cycleDelay {
		return
	}
	c.NextRule()
	g.Reset(now.UnixNano())
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.status())
	}
}

func (g *Game) status() string {
	if g.paused {
		return "paused"
	}
	if c, ok := g.sim.(cycler); ok && c.Full() {
		if g.cycle {
			return "cycling..."
		}
		return "done"
	}
	return ""
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens the window and drives the game loop until the user quits.
func Run(sim core.Sim, opts Options) error {
	game := New(sim, opts)
	size := sim.Size()

	title := "cells — " + sim.Name()
	if r, ok := sim.(interface{ Rule() int }); ok {
		title = fmt.Sprintf("%s — rule %d", title, r.Rule())
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
