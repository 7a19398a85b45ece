// Package browser owns the session state: the stack of visited views,
// the focus index, and the transient status line. All of it lives on
// the main goroutine; collaborators are plain function fields so the
// transitions stay testable with synthetic input.
package browser

import (
	"fmt"
	"strings"

	"burrow/gopher"
	"burrow/help"
	"burrow/history"
	"burrow/input"
	"burrow/render"
	"burrow/theme"
	"burrow/view"
)

// Browser is the navigation controller. The zero value is not usable;
// construct with New and wire the collaborator fields before use.
type Browser struct {
	// Fetch retrieves a locator as a view. Blocks until done.
	Fetch func(gopher.Locator) (view.View, error)
	// Download saves a locator to disk, returning path and byte count.
	Download func(gopher.Locator) (string, int64, error)
	// OpenExternal hands a non-gopher URL to the system handler.
	OpenExternal func(string) error
	// Clipboard copies text to the system clipboard.
	Clipboard func(string) error
	// Confirm asks a yes/no question on the status row.
	Confirm func(string) bool
	// Prompt asks for a line of text; ok is false on cancel.
	Prompt func(string) (string, bool)

	// History and Bookmarks are nil when the config dir could not be
	// resolved; the features are silently disabled.
	History   *history.Log
	Bookmarks *history.Bookmarks

	theme  *theme.Theme
	stack  []view.View
	focus  int
	dirty  bool
	status string
	failed bool // status describes an error
	width  int
	height int
}

// New builds an empty browser. Collaborator fields default to no-ops
// so a partially wired browser still navigates.
func New(th *theme.Theme) *Browser {
	return &Browser{
		theme:        th,
		Fetch:        func(gopher.Locator) (view.View, error) { return nil, fmt.Errorf("fetching disabled") },
		Download:     func(gopher.Locator) (string, int64, error) { return "", 0, fmt.Errorf("downloads disabled") },
		OpenExternal: func(string) error { return nil },
		Clipboard:    func(string) error { return fmt.Errorf("no clipboard") },
		Confirm:      func(string) bool { return false },
		Prompt:       func(string) (string, bool) { return "", false },
	}
}

// Focused returns the view under focus, nil for an empty stack.
func (b *Browser) Focused() view.View {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[b.focus]
}

// Depth returns the number of views on the stack.
func (b *Browser) Depth() int { return len(b.stack) }

// Focus returns the focus index.
func (b *Browser) Focus() int { return b.focus }

// Status returns the pending status line, empty when none.
func (b *Browser) Status() string { return b.status }

func (b *Browser) say(format string, args ...any) {
	b.status = fmt.Sprintf(format, args...)
	b.failed = false
	b.dirty = true
}

func (b *Browser) fail(err error) {
	b.status = err.Error()
	b.failed = true
	b.dirty = true
}

// OpenText navigates to locator text as typed by the user or found in
// the config. A URL with a non-gopher scheme goes straight to the
// system handler; parsing it as a locator would destroy the scheme.
func (b *Browser) OpenText(text string) {
	if gopher.IsForeign(text) {
		if err := b.OpenExternal(gopher.ForeignURL(text)); err != nil {
			b.fail(err)
			return
		}
		b.say("opened in system handler")
		return
	}
	b.Open(gopher.ParseLocator(text))
}

// Open navigates to a locator. Opening the focused view's own locator
// is a no-op; foreign schemes go to the system handler and download
// types to disk, both leaving the stack untouched. Anything else is
// fetched and pushed, discarding forward history.
func (b *Browser) Open(loc gopher.Locator) {
	if cur := b.Focused(); cur != nil && cur.Locator() == loc {
		return
	}

	if gopher.IsForeign(loc.Selector) {
		if err := b.OpenExternal(gopher.ForeignURL(loc.Selector)); err != nil {
			b.fail(err)
			return
		}
		b.say("opened in system handler")
		return
	}

	if help.IsHelp(loc) {
		b.openHelp(loc)
		return
	}

	if loc.Type.IsDownload() {
		if !b.Confirm(fmt.Sprintf("download %s?", loc.Selector)) {
			b.dirty = true
			return
		}
		dest, n, err := b.Download(loc)
		if err != nil {
			b.fail(err)
			return
		}
		b.say("saved %d bytes to %s", n, dest)
		return
	}

	if loc.Type == gopher.TypeSearch && !strings.ContainsRune(loc.Selector, '\t') {
		query, ok := b.Prompt("search: ")
		if !ok {
			b.dirty = true
			return
		}
		loc.Selector += "\t" + query
	}

	v, err := b.Fetch(loc)
	if err != nil {
		b.fail(err)
		return
	}
	b.push(v)
	if b.History != nil {
		b.History.Record(loc)
	}
}

func (b *Browser) openHelp(loc gopher.Locator) {
	body, typ, err := help.Lookup(loc.Selector)
	if err != nil {
		b.fail(err)
		return
	}
	loc.Type = typ
	if typ.IsMenu() {
		b.push(view.NewMenu(loc, body))
	} else {
		b.push(view.NewDocument(loc, body))
	}
}

// push appends v after the focus, discarding any forward entries, and
// moves focus onto it.
func (b *Browser) push(v view.View) {
	if len(b.stack) == 0 {
		b.stack = []view.View{v}
		b.focus = 0
	} else {
		b.stack = append(b.stack[:b.focus+1], v)
		b.focus = len(b.stack) - 1
	}
	v.Resize(b.width, b.height)
	b.dirty = true
}

// Back moves focus one entry toward the bottom of the stack.
func (b *Browser) Back() {
	if b.focus > 0 {
		b.focus--
		b.Focused().Resize(b.width, b.height)
		b.dirty = true
	}
}

// Forward moves focus one entry toward the top of the stack.
func (b *Browser) Forward() {
	if b.focus < len(b.stack)-1 {
		b.focus++
		b.Focused().Resize(b.width, b.height)
		b.dirty = true
	}
}

// Resize records new terminal dimensions and propagates them to the
// focused view.
func (b *Browser) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	b.width, b.height = width, height
	if v := b.Focused(); v != nil {
		v.Resize(width, height)
	}
	b.dirty = true
}

// Handle processes one key event. A pending status line is cleared
// first, without consuming the key. Returns false when the session
// should end.
func (b *Browser) Handle(k input.Key) bool {
	if b.status != "" {
		b.status = ""
		b.failed = false
		b.dirty = true
	}

	if k.Kind == input.KindCtrl {
		switch k.Ch {
		case 'g':
			if text, ok := b.Prompt("go: "); ok && text != "" {
				b.OpenText(text)
			} else {
				b.dirty = true
			}
			return true
		case 'y':
			b.copyLocator()
			return true
		case 'u':
			b.showLocator()
			return true
		case 'h':
			b.Open(help.Home())
			return true
		case 'e':
			b.openHistory()
			return true
		case 'b':
			b.openBookmarks()
			return true
		case 's':
			b.addBookmark()
			return true
		}
	}

	v := b.Focused()
	if v == nil {
		if k.Kind == input.KindCtrl && (k.Ch == 'q' || k.Ch == 'c') {
			return false
		}
		return true
	}
	return b.apply(v.Respond(k))
}

func (b *Browser) apply(act view.Action) bool {
	switch act.Kind {
	case view.ActionOpen:
		b.Open(act.Target)
	case view.ActionBack:
		b.Back()
	case view.ActionForward:
		b.Forward()
	case view.ActionSource:
		b.viewSource()
	case view.ActionQuit:
		return false
	}
	return true
}

// viewSource pushes the focused view's raw body as a new document.
func (b *Browser) viewSource() {
	v := b.Focused()
	if v == nil {
		return
	}
	loc := v.Locator()
	loc.Type = gopher.TypeText
	b.push(view.NewDocument(loc, v.Source()))
}

func (b *Browser) copyLocator() {
	v := b.Focused()
	if v == nil {
		return
	}
	url := v.Locator().String()
	if err := b.Clipboard(url); err != nil {
		b.fail(err)
		return
	}
	b.say("copied %s", url)
}

// showLocator puts the focused view's address on the status line.
func (b *Browser) showLocator() {
	if v := b.Focused(); v != nil {
		b.say("%s", v.Locator().String())
	}
}

// openHistory pushes this session's visits as a navigable menu.
func (b *Browser) openHistory() {
	if b.History == nil {
		b.say("history unavailable")
		return
	}
	loc := gopher.Locator{Type: gopher.TypeDir, Host: help.Host, Port: gopher.DefaultPort, Selector: "/history"}
	b.push(view.NewMenu(loc, b.History.Menu()))
}

func (b *Browser) openBookmarks() {
	if b.Bookmarks == nil {
		b.say("bookmarks unavailable")
		return
	}
	loc := gopher.Locator{Type: gopher.TypeDir, Host: help.Host, Port: gopher.DefaultPort, Selector: "/bookmarks"}
	b.push(view.NewMenu(loc, b.Bookmarks.Menu()))
}

func (b *Browser) addBookmark() {
	v := b.Focused()
	if v == nil {
		return
	}
	if b.Bookmarks == nil {
		b.say("bookmarks unavailable")
		return
	}
	loc := v.Locator()
	name, ok := b.Prompt("bookmark name: ")
	if !ok {
		b.dirty = true
		return
	}
	if name == "" {
		name = loc.String()
	}
	if err := b.Bookmarks.Add(name, loc); err != nil {
		b.fail(err)
		return
	}
	b.say("bookmarked %s", loc.String())
}

// Render paints the focused view and status row onto the canvas if
// anything changed since the last frame. Returns whether a new frame
// was produced.
func (b *Browser) Render(c *render.Canvas) bool {
	if !b.dirty {
		return false
	}
	c.Clear()
	if v := b.Focused(); v != nil {
		v.Draw(c, b.theme)
	}
	b.drawStatus(c)
	b.dirty = false
	return true
}

func (b *Browser) drawStatus(c *render.Canvas) {
	y := c.Height() - 1
	switch {
	case b.status != "":
		style := b.theme.Status
		if b.failed {
			style = b.theme.Error
		}
		c.WriteString(0, y, render.Truncate(b.status, c.Width()), style)
	default:
		if m, ok := b.Focused().(*view.Menu); ok && m != nil && m.Filter() != "" {
			c.WriteString(0, y, "/"+m.Filter(), b.theme.Status)
		}
	}
}
