package view

import (
	"strings"
	"testing"

	"burrow/gopher"
	"burrow/input"
	"burrow/render"
	"burrow/theme"
)

const sampleMenu = "iWelcome to the archive\tfake\texample.org\t70\r\n" +
	"1About this server\t/about\texample.org\t70\r\n" +
	"0README\t/readme.txt\texample.org\t70\r\n" +
	"9Tarball\t/dist.tar.gz\texample.org\t70\r\n" +
	".\r\n"

func key(ch byte) input.Key  { return input.Char(ch) }
func ctrl(ch byte) input.Key { return input.Ctrl(ch) }

func TestMenuInitialSelection(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	if got := m.Selected(); got != 1 {
		t.Errorf("Selected() = %d, want 1", got)
	}
	if got := len(m.Links()); got != 3 {
		t.Errorf("len(Links()) = %d, want 3", got)
	}

	empty := NewMenu(gopher.Locator{}, "iNothing here\tfake\tnull\t70\r\n.\r\n")
	if got := empty.Selected(); got != 0 {
		t.Errorf("Selected() on link-free menu = %d, want 0", got)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)

	m.Respond(input.Key{Kind: input.KindUp})
	if got := m.Selected(); got != 1 {
		t.Errorf("up at top: Selected() = %d, want 1", got)
	}

	// One past the last link is reachable, but no further.
	for i := 0; i < 10; i++ {
		m.Respond(input.Key{Kind: input.KindDown})
	}
	if got := m.Selected(); got != 4 {
		t.Errorf("down past end: Selected() = %d, want 4", got)
	}

	if act := m.Respond(input.Key{Kind: input.KindEnter}); act.Kind != ActionNone {
		t.Errorf("enter on past-end selection = %v, want ActionNone", act.Kind)
	}
}

func TestMenuCtrlAliases(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	m.Respond(ctrl('n'))
	if got := m.Selected(); got != 2 {
		t.Errorf("ctrl-n: Selected() = %d, want 2", got)
	}
	m.Respond(ctrl('p'))
	if got := m.Selected(); got != 1 {
		t.Errorf("ctrl-p: Selected() = %d, want 1", got)
	}
}

func TestMenuEnterOpensSelected(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	m.Respond(input.Key{Kind: input.KindDown})
	act := m.Respond(input.Key{Kind: input.KindEnter})
	if act.Kind != ActionOpen {
		t.Fatalf("Kind = %v, want ActionOpen", act.Kind)
	}
	if act.Target.Selector != "/readme.txt" || act.Target.Type != gopher.TypeText {
		t.Errorf("Target = %+v", act.Target)
	}
}

func TestMenuHistoryKeys(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	if act := m.Respond(input.Key{Kind: input.KindLeft}); act.Kind != ActionBack {
		t.Errorf("left = %v, want ActionBack", act.Kind)
	}
	if act := m.Respond(input.Key{Kind: input.KindRight}); act.Kind != ActionForward {
		t.Errorf("right = %v, want ActionForward", act.Kind)
	}
}

func TestMenuQuitKeys(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	if act := m.Respond(ctrl('q')); act.Kind != ActionQuit {
		t.Errorf("ctrl-q = %v, want ActionQuit", act.Kind)
	}
	if act := m.Respond(ctrl('c')); act.Kind != ActionQuit {
		t.Errorf("ctrl-c with empty filter = %v, want ActionQuit", act.Kind)
	}

	m.Respond(key('a'))
	if act := m.Respond(ctrl('c')); act.Kind != ActionNone {
		t.Errorf("ctrl-c with filter = %v, want ActionNone", act.Kind)
	}
	if m.Filter() != "" {
		t.Errorf("ctrl-c left filter %q, want empty", m.Filter())
	}
}

func TestMenuFilterSelectsByPrefix(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	for _, ch := range []byte("ta") {
		m.Respond(key(ch))
	}
	if got := m.Selected(); got != 3 {
		t.Errorf("after typing \"ta\": Selected() = %d, want 3 (Tarball)", got)
	}
	if got := m.Filter(); got != "ta" {
		t.Errorf("Filter() = %q, want \"ta\"", got)
	}
}

func TestMenuFilterOrdinalBeatsPrefix(t *testing.T) {
	// A link named "2nd circle" means the buffer "2" is both an exact
	// ordinal and a name prefix. The ordinal must win.
	body := "12nd circle\t/two\texample.org\t70\r\n" +
		"1Archive\t/archive\texample.org\t70\r\n" +
		".\r\n"
	m := NewMenu(gopher.Locator{}, body)
	m.Respond(key('2'))
	if got := m.Selected(); got != 2 {
		t.Errorf("Selected() = %d, want 2 (exact ordinal)", got)
	}
}

func TestMenuFilterNoMatchLeavesSelection(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	m.Respond(input.Key{Kind: input.KindDown})
	m.Respond(key('z'))
	if got := m.Selected(); got != 2 {
		t.Errorf("Selected() = %d, want 2 (unchanged)", got)
	}
	if got := m.Filter(); got != "z" {
		t.Errorf("Filter() = %q, want \"z\" (buffer still grows)", got)
	}
}

func TestMenuFilterCaseInsensitive(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	m.Respond(key('R'))
	if got := m.Selected(); got != 2 {
		t.Errorf("Selected() = %d, want 2 (README)", got)
	}
}

func TestMenuBackspaceSemantics(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)

	m.Respond(key('t'))
	if act := m.Respond(input.Key{Kind: input.KindBackspace}); act.Kind != ActionNone {
		t.Errorf("backspace with filter = %v, want ActionNone", act.Kind)
	}
	if m.Filter() != "" {
		t.Errorf("Filter() = %q, want empty", m.Filter())
	}

	if act := m.Respond(input.Key{Kind: input.KindBackspace}); act.Kind != ActionBack {
		t.Errorf("backspace with empty filter = %v, want ActionBack", act.Kind)
	}

	// Delete trims the buffer but never navigates.
	if act := m.Respond(input.Key{Kind: input.KindDelete}); act.Kind != ActionNone {
		t.Errorf("delete with empty filter = %v, want ActionNone", act.Kind)
	}
}

func TestMenuViewSource(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	if act := m.Respond(ctrl('r')); act.Kind != ActionSource {
		t.Errorf("ctrl-r = %v, want ActionSource", act.Kind)
	}
	if m.Source() != sampleMenu {
		t.Error("Source() does not return the raw body")
	}
}

func TestMenuDraw(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	m.Resize(60, 10)
	c := render.NewCanvas(60, 10)
	m.Draw(c, theme.Default())

	if got := c.Row(0); got != "      Welcome to the archive" {
		t.Errorf("row 0 = %q", got)
	}
	if got := c.Row(1); got != "*  1. About this server" {
		t.Errorf("row 1 = %q", got)
	}
	if got := c.Row(2); got != "   2. README" {
		t.Errorf("row 2 = %q", got)
	}
	if got := c.Row(3); got != "   3. Tarball" {
		t.Errorf("row 3 = %q", got)
	}
	if got := c.Row(4); got != "" {
		t.Errorf("row 4 = %q, want blank past terminator", got)
	}
}

func TestMenuDrawRowBudget(t *testing.T) {
	m := NewMenu(gopher.Locator{}, sampleMenu)
	m.Resize(60, 3)
	c := render.NewCanvas(60, 3)
	m.Draw(c, theme.Default())

	// Two content rows fit; the bottom row stays free for status.
	if got := c.Row(1); got != "*  1. About this server" {
		t.Errorf("row 1 = %q", got)
	}
	if got := c.Row(2); got != "" {
		t.Errorf("row 2 = %q, want empty status row", got)
	}
}

func TestDocumentDraw(t *testing.T) {
	body := "first line\r\nsecond line\nthird"
	d := NewDocument(gopher.Locator{Type: gopher.TypeText}, body)
	d.Resize(40, 10)
	c := render.NewCanvas(40, 10)
	d.Draw(c, theme.Default())

	for i, want := range []string{"first line", "second line", "third"} {
		if got := c.Row(i); got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}
}

func TestDocumentTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("x", 100)
	d := NewDocument(gopher.Locator{Type: gopher.TypeText}, long)
	d.Resize(20, 5)
	c := render.NewCanvas(20, 5)
	d.Draw(c, theme.Default())

	if got := c.Row(0); got != strings.Repeat("x", 20) {
		t.Errorf("row 0 = %q, want 20 x's", got)
	}
	if got := c.Row(1); got != "" {
		t.Errorf("row 1 = %q, want empty (no wrapping)", got)
	}
}

func TestDocumentRespond(t *testing.T) {
	d := NewDocument(gopher.Locator{}, "body")
	cases := []struct {
		name string
		k    input.Key
		want ActionKind
	}{
		{"left", input.Key{Kind: input.KindLeft}, ActionBack},
		{"backspace", input.Key{Kind: input.KindBackspace}, ActionBack},
		{"right", input.Key{Kind: input.KindRight}, ActionForward},
		{"ctrl-q", ctrl('q'), ActionQuit},
		{"ctrl-c", ctrl('c'), ActionQuit},
		{"ctrl-r", ctrl('r'), ActionSource},
		{"up", input.Key{Kind: input.KindUp}, ActionNone},
		{"down", input.Key{Kind: input.KindDown}, ActionNone},
		{"enter", input.Key{Kind: input.KindEnter}, ActionNone},
		{"char", key('x'), ActionNone},
	}
	for _, tc := range cases {
		if act := d.Respond(tc.k); act.Kind != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, act.Kind, tc.want)
		}
	}
}
