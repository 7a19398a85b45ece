// Package view holds the renderable page types the browser navigates
// between. The set is closed: a fetched resource is either a Menu or a
// Document, mirroring what the protocol can deliver.
package view

import (
	"burrow/gopher"
	"burrow/input"
	"burrow/render"
	"burrow/theme"
)

// ActionKind enumerates what a view asks the browser to do in
// response to a key.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpen
	ActionBack
	ActionForward
	ActionSource
	ActionQuit
)

// Action is a view's response to one key event. Target is set for
// ActionOpen only.
type Action struct {
	Kind   ActionKind
	Target gopher.Locator
}

// View is one navigable page. Views are created by the fetch engine
// and owned by the navigation stack for the rest of the session.
type View interface {
	// Respond turns one key event into an Action, updating internal
	// cursor/filter state as a side effect.
	Respond(k input.Key) Action
	// Draw paints the page onto the canvas, leaving the bottom row
	// for the status line. Content past the row budget is dropped.
	Draw(c *render.Canvas, th *theme.Theme)
	// Locator identifies the resource this view was fetched from.
	Locator() gopher.Locator
	// Source returns the raw, unparsed response body.
	Source() string
	// Resize records new terminal dimensions for the next Draw.
	Resize(width, height int)
}

// rowBudget returns how many rows of content fit, given the view's
// last known height and the canvas. One row is reserved for status.
func rowBudget(height int, c *render.Canvas) int {
	rows := height
	if rows <= 0 || rows > c.Height() {
		rows = c.Height()
	}
	return rows - 1
}
