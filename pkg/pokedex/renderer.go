package pokedex

// Renderer is the rendering surface contract. Markup, styling, and event
// wiring live behind it; the core only hands over data.
type Renderer interface {
	// Progress reports acquisition progress (completed/total attempted).
	Progress(completed, total int)

	// RenderGrid displays the filtered record subset.
	RenderGrid(records []Record)

	// RenderDetail displays a single record's detail view.
	RenderDetail(record Record)

	// RenderTypes populates the tag filter control.
	RenderTypes(types []string)

	// RenderError shows the static terminal error state after a
	// catastrophic acquisition failure.
	RenderError(err error)
}

// NopRenderer discards every call. Useful for tests and headless runs.
type NopRenderer struct{}

func (NopRenderer) Progress(completed, total int) {}
func (NopRenderer) RenderGrid(records []Record)   {}
func (NopRenderer) RenderDetail(record Record)    {}
func (NopRenderer) RenderTypes(types []string)    {}
func (NopRenderer) RenderError(err error)         {}
