package pokedex

import (
	"time"

	"github.com/Sternrassler/pokedex-client/pkg/logging"
	"github.com/rs/zerolog"
)

// View consumes Commands, applies them to the Store, and pushes the
// resulting state to the Renderer. Query changes are debounced; everything
// else renders immediately.
type View struct {
	store    *Store
	renderer Renderer
	debounce *Debouncer
	logger   zerolog.Logger
}

// NewView wires a store and renderer together. A non-positive debounce
// falls back to DefaultDebounce.
func NewView(store *Store, renderer Renderer, debounce time.Duration) *View {
	return &View{
		store:    store,
		renderer: renderer,
		debounce: NewDebouncer(debounce),
		logger:   logging.NewLogger("pokedex-view"),
	}
}

// Reset installs the acquired collection and renders the initial grid and
// tag control.
func (v *View) Reset(records []Record) {
	v.store.SetRecords(records)
	v.renderer.RenderTypes(v.store.Types())
	v.renderer.RenderGrid(v.store.Filtered())
}

// Handle applies one command.
func (v *View) Handle(cmd Command) {
	switch c := cmd.(type) {
	case SetQuery:
		v.store.SetQuery(c.Query)
		v.debounce.Trigger(func() {
			v.renderer.RenderGrid(v.store.Filtered())
		})

	case SetTagFilter:
		v.store.SetTag(c.Tag)
		v.renderer.RenderGrid(v.store.Filtered())

	case SelectRecord:
		r, ok := v.store.Select(c.ID)
		if !ok {
			v.logger.Warn().Int("id", c.ID).Msg("Select for unknown identifier")
			return
		}
		v.renderer.RenderDetail(r)

	case Dismiss:
		v.store.Dismiss()
		v.renderer.RenderGrid(v.store.Filtered())
	}
}

// Flush forces any pending debounced render. Deterministic teardown for
// tests and shutdown paths.
func (v *View) Flush() {
	v.debounce.Flush()
}

// Close drops pending debounced work.
func (v *View) Close() {
	v.debounce.Stop()
}
