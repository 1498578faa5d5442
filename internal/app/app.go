//go:build ebiten

package app

import (
	"image/color"
	"log"
	"os"

	"life-rle/internal/core"
	"life-rle/internal/render"
	"life-rle/internal/ui"
	"life-rle/pkg/rle"
	"life-rle/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life kernel to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	sim     *life.Life
	painter *render.GridPainter
	overlay *ui.Overlay
	ticker  *core.FixedStep
	logger  *log.Logger

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided kernel.
func New(sim *life.Life, cfg *Config, logger *log.Logger) *Game {
	size := sim.Size()
	return &Game{
		cfg:      cfg,
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		ticker:   core.NewFixedStep(cfg.GPS),
		logger:   logger,
		onColor:  color.White,
		offColor: color.Gray{Y: 50},
		scale:    max(cfg.Scale, 1),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sim.Reset(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.export()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.load()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleUnderCursor()
	}
	g.overlay.Update()

	steps := g.ticker.Due()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = max(steps, 1)
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	return nil
}

func (g *Game) toggleUnderCursor() {
	x, y := ebiten.CursorPosition()
	row, col := y/g.scale, x/g.scale
	alive, err := g.sim.Cell(row, col)
	if err != nil {
		return
	}
	if err := g.sim.SetCell(row, col, !alive); err != nil {
		g.logger.Printf("life: toggle cell: %v", err)
	}
}

func (g *Game) export() {
	if err := writePattern(g.cfg.Out, rle.Encode(g.sim.Snapshot()), os.Stdout); err != nil {
		g.logger.Printf("life: export: %v", err)
		return
	}
	g.logger.Printf("life: exported generation %d", g.sim.Generation())
}

func (g *Game) load() {
	if err := reloadable(g.cfg.In); err != nil {
		g.logger.Printf("life: %v", err)
		return
	}
	b, err := readPattern(g.cfg.In, nil)
	if err != nil {
		g.logger.Printf("life: import: %v", err)
		return
	}
	g.sim.Load(b)
	g.logger.Printf("life: imported %dx%d pattern from %s", b.Rows(), b.Cols(), g.cfg.In)
}

// Draw renders the current board and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, ui.Status{
		Generation: g.sim.Generation(),
		Population: g.sim.Population(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
