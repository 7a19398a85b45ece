package help

import (
	"errors"
	"testing"

	"burrow/gopher"
)

func TestHome(t *testing.T) {
	h := Home()
	if !IsHelp(h) {
		t.Error("Home() locator is not a help locator")
	}
	if h.Type != gopher.TypeDir {
		t.Errorf("Home() type = %v, want menu", h.Type)
	}
}

func TestLookupRootMenu(t *testing.T) {
	body, typ, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\"): %v", err)
	}
	if typ != gopher.TypeDir {
		t.Fatalf("type = %v, want menu", typ)
	}
	links := gopher.ParseMenu(body)
	if len(links) == 0 {
		t.Fatal("root menu has no links")
	}
	// Every internal link must resolve to another help page.
	for _, l := range links {
		if l.Host != Host {
			continue
		}
		if _, _, err := Lookup(l.Selector); err != nil {
			t.Errorf("link %q points at missing page %q", l.Name, l.Selector)
		}
	}
}

func TestLookupPages(t *testing.T) {
	for _, sel := range []string{"/keys", "/about"} {
		body, typ, err := Lookup(sel)
		if err != nil {
			t.Errorf("Lookup(%q): %v", sel, err)
			continue
		}
		if typ != gopher.TypeText {
			t.Errorf("Lookup(%q) type = %v, want text", sel, typ)
		}
		if body == "" {
			t.Errorf("Lookup(%q) body is empty", sel)
		}
	}
}

func TestLookupServersAreRemote(t *testing.T) {
	body, _, err := Lookup("/servers")
	if err != nil {
		t.Fatalf("Lookup(/servers): %v", err)
	}
	for _, l := range gopher.ParseMenu(body) {
		if l.Host == Host || l.Host == "" {
			t.Errorf("server link %q has host %q", l.Name, l.Host)
		}
	}
}

func TestLookupNotFound(t *testing.T) {
	if _, _, err := Lookup("/no-such-page"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
