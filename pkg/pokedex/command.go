package pokedex

// Command is an explicit intent produced by user-facing controls. The
// filter/query core consumes commands without knowing anything about the
// UI runtime that generated them.
type Command interface {
	isCommand()
}

// SetQuery updates the live text query. Applied through the debouncer so
// the filter does not run on every keystroke.
type SetQuery struct {
	Query string
}

// SetTagFilter updates the tag filter. Applied immediately.
type SetTagFilter struct {
	Tag string
}

// SelectRecord requests the detail view for one identifier.
type SelectRecord struct {
	ID int
}

// Dismiss closes the detail view.
type Dismiss struct{}

func (SetQuery) isCommand()     {}
func (SetTagFilter) isCommand() {}
func (SelectRecord) isCommand() {}
func (Dismiss) isCommand()      {}
