package view

import (
	"fmt"
	"strconv"
	"strings"

	"burrow/gopher"
	"burrow/input"
	"burrow/render"
	"burrow/theme"
)

// Menu is a directory page: an ordered list of typed links with a
// selection cursor and an incremental filter buffer. Link ordinals are
// 1-based and count link-bearing lines only.
type Menu struct {
	loc    gopher.Locator
	body   string
	links  []gopher.Link
	sel    int    // selected ordinal, 0 = none
	filter string
	width  int
	height int
}

// NewMenu parses a menu body into a view. The first link starts out
// selected if any exist.
func NewMenu(loc gopher.Locator, body string) *Menu {
	m := &Menu{loc: loc, body: body, links: gopher.ParseMenu(body)}
	if len(m.links) > 0 {
		m.sel = 1
	}
	return m
}

func (m *Menu) Locator() gopher.Locator { return m.loc }
func (m *Menu) Source() string          { return m.body }

// Links returns the parsed links in ordinal order.
func (m *Menu) Links() []gopher.Link { return m.links }

// Selected returns the selected ordinal, 0 when nothing is selected.
func (m *Menu) Selected() int { return m.sel }

// Filter returns the incremental filter buffer as typed so far.
func (m *Menu) Filter() string { return m.filter }

func (m *Menu) Resize(width, height int) {
	m.width, m.height = width, height
}

func (m *Menu) Respond(k input.Key) Action {
	switch k.Kind {
	case input.KindCtrl:
		switch k.Ch {
		case 'q':
			return Action{Kind: ActionQuit}
		case 'c':
			if m.filter != "" {
				m.filter = ""
				return Action{}
			}
			return Action{Kind: ActionQuit}
		case 'p':
			m.cursorUp()
		case 'n':
			m.cursorDown()
		case 'r':
			return Action{Kind: ActionSource}
		}
		return Action{}

	case input.KindUp:
		m.cursorUp()
		return Action{}

	case input.KindDown:
		m.cursorDown()
		return Action{}

	case input.KindEnter:
		if m.sel >= 1 && m.sel <= len(m.links) {
			return Action{Kind: ActionOpen, Target: m.links[m.sel-1].Locator()}
		}
		return Action{}

	case input.KindLeft:
		return Action{Kind: ActionBack}

	case input.KindRight:
		return Action{Kind: ActionForward}

	case input.KindBackspace:
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			return Action{}
		}
		return Action{Kind: ActionBack}

	case input.KindDelete:
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
		}
		return Action{}

	case input.KindChar:
		m.filter += string(k.Ch)
		m.applyFilter()
		return Action{}
	}

	return Action{}
}

// applyFilter moves the selection to the link the filter buffer now
// addresses. An exact decimal ordinal wins over any name prefix; a
// buffer matching neither leaves selection and buffer untouched.
func (m *Menu) applyFilter() {
	if n, err := strconv.Atoi(m.filter); err == nil && n >= 1 && n <= len(m.links) && m.filter == strconv.Itoa(n) {
		m.sel = n
		return
	}
	want := strings.ToLower(m.filter)
	for i, link := range m.links {
		if strings.HasPrefix(strings.ToLower(link.Name), want) {
			m.sel = i + 1
			return
		}
	}
}

func (m *Menu) cursorUp() {
	if m.sel > 1 {
		m.sel--
	}
}

func (m *Menu) cursorDown() {
	if m.sel < len(m.links)+1 {
		m.sel++
	}
}

func (m *Menu) Draw(c *render.Canvas, th *theme.Theme) {
	rows := rowBudget(m.height, c)
	y := 0
	ordinal := 0

	for _, line := range strings.Split(m.body, "\n") {
		if y >= rows {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		if line == "." {
			break
		}
		if line == "" {
			y++
			continue
		}

		t := gopher.ParseType(line[0])
		name := line[1:]
		if i := strings.IndexByte(name, '\t'); i >= 0 {
			name = name[:i]
		}

		switch {
		case t.IsLink():
			ordinal++
			if ordinal == m.sel {
				c.Set(0, y, '*', th.Cursor)
			}
			x := 2
			x += c.WriteString(x, y, fmt.Sprintf("%2d. ", ordinal), th.Ordinal)
			c.WriteString(x, y, name, m.linkStyle(t, th))
		case t == gopher.TypeInfo:
			c.WriteString(6, y, name, th.Info)
		default:
			// Unsupported line: consumes a row, renders nothing.
		}
		y++
	}
}

func (m *Menu) linkStyle(t gopher.ItemType, th *theme.Theme) render.Style {
	switch t {
	case gopher.TypeDir:
		return th.Menu
	case gopher.TypeHTML:
		return th.External
	case gopher.TypeSearch:
		return th.Search
	default:
		if t.IsDownload() {
			return th.Download
		}
		return th.Document
	}
}
