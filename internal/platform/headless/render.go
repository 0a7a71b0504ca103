package headless

import (
	"fmt"
	"io"

	"github.com/vovakirdan/spikelane/internal/core"
	"github.com/vovakirdan/spikelane/internal/games/spikes"
	"github.com/vovakirdan/spikelane/internal/lane"
)

// clearSequence homes the cursor and clears an ANSI terminal.
const clearSequence = "\033[H\033[2J"

// TextRenderer writes every snapshot as a plain-text frame.
type TextRenderer struct {
	w      io.Writer
	title  string
	clear  bool
	screen *core.Screen
}

// NewTextRenderer creates a renderer writing frames to w. When clear is set,
// each frame starts with an ANSI clear sequence so frames replace each other.
func NewTextRenderer(w io.Writer, title string, clear bool) *TextRenderer {
	return &TextRenderer{w: w, title: title, clear: clear}
}

// Render implements lane.Renderer.
func (r *TextRenderer) Render(snap lane.Snapshot) error {
	bw, bh := spikes.BoardSize(snap.Rows(), snap.Columns())
	width := core.Max(bw, len([]rune(spikes.HUD(r.title, snap))))
	if r.screen == nil {
		r.screen = core.NewScreen(width, bh+1)
	} else {
		r.screen.Resize(width, bh+1)
		r.screen.Clear()
	}
	spikes.DrawSnapshot(r.screen, r.title, snap)

	if r.clear {
		if _, err := io.WriteString(r.w, clearSequence); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.w, r.screen.String()); err != nil {
		return err
	}
	if snap.GameOver {
		_, err := fmt.Fprintf(r.w, "GAME OVER at tick %d, score %d, dodged %d\n", snap.Tick, snap.Score, snap.Dodged)
		return err
	}
	return nil
}

// Tee fans each snapshot out to every renderer, stopping at the first error.
func Tee(renderers ...lane.Renderer) lane.Renderer {
	return lane.RenderFunc(func(snap lane.Snapshot) error {
		for _, r := range renderers {
			if err := r.Render(snap); err != nil {
				return err
			}
		}
		return nil
	})
}
