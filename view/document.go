package view

import (
	"strings"

	"burrow/gopher"
	"burrow/input"
	"burrow/render"
	"burrow/theme"
)

// Document is a plain-lines page. Text and rich-text bodies are both
// rendered verbatim; there is no internal cursor, wrapping or
// scrolling.
type Document struct {
	loc    gopher.Locator
	body   string
	width  int
	height int
}

// NewDocument wraps a raw response body in a view.
func NewDocument(loc gopher.Locator, body string) *Document {
	return &Document{loc: loc, body: body}
}

func (d *Document) Locator() gopher.Locator { return d.loc }
func (d *Document) Source() string          { return d.body }

func (d *Document) Resize(width, height int) {
	d.width, d.height = width, height
}

func (d *Document) Respond(k input.Key) Action {
	switch k.Kind {
	case input.KindCtrl:
		switch k.Ch {
		case 'q', 'c':
			return Action{Kind: ActionQuit}
		case 'r':
			return Action{Kind: ActionSource}
		}
		return Action{}
	case input.KindLeft, input.KindBackspace:
		return Action{Kind: ActionBack}
	case input.KindRight:
		return Action{Kind: ActionForward}
	}
	return Action{}
}

func (d *Document) Draw(c *render.Canvas, th *theme.Theme) {
	rows := rowBudget(d.height, c)
	for y, line := range strings.Split(d.body, "\n") {
		if y >= rows {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		c.WriteString(0, y, line, render.Style{})
	}
}
