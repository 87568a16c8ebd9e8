//go:build ebiten

package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Vlad-Shcherbina/halite/internal/render"
	"github.com/Vlad-Shcherbina/halite/internal/trace"
)

// Game adapts a trace Player to the ebiten.Game interface.
type Game struct {
	trace   *trace.Trace
	player  *Player
	painter *render.GridPainter
	scale   int
}

// New constructs a Game showing t.
func New(t *trace.Trace, scale, fps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		trace:   t,
		player:  NewPlayer(t, fps),
		painter: render.NewGridPainter(t.Width, t.Height),
		scale:   scale,
	}
}

// Update handles input and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.player.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.player.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.player.Rewind()
	}
	g.player.Tick()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if frame := g.player.Current(); frame != nil {
		g.painter.Blit(screen, frame, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.trace.Width * g.scale, g.trace.Height * g.scale
}
