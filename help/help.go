// Package help serves the built-in pages. They live under the
// reserved host "help", so the rest of the browser treats them like
// any other menu or document; they just never touch the network.
package help

import (
	"errors"
	"strings"

	"burrow/gopher"
)

// Host is the reserved hostname for built-in pages. Locators with
// this host never reach the fetch engine.
const Host = "help"

// ErrNotFound reports a help selector with no page behind it.
var ErrNotFound = errors.New("no such help page")

// Home is the locator shown when no start URL is configured.
func Home() gopher.Locator {
	return gopher.Locator{Type: gopher.TypeDir, Host: Host, Port: gopher.DefaultPort}
}

// IsHelp reports whether a locator addresses a built-in page.
func IsHelp(loc gopher.Locator) bool {
	return loc.Host == Host
}

// Lookup resolves a help selector to its body and item type.
func Lookup(selector string) (body string, typ gopher.ItemType, err error) {
	switch strings.TrimSuffix(selector, "/") {
	case "":
		return rootMenu, gopher.TypeDir, nil
	case "/keys":
		return keysPage, gopher.TypeText, nil
	case "/about":
		return aboutPage, gopher.TypeText, nil
	case "/servers":
		return serversMenu, gopher.TypeDir, nil
	default:
		return "", gopher.TypeUnsupported, ErrNotFound
	}
}

func menu(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n.\r\n"
}

func info(text string) string {
	return "i" + text + "\tfake\tnull\t70"
}

var rootMenu = menu(
	info("burrow, a gopher client"),
	info(""),
	info("Type a link's number or the start of its name to select"),
	info("it, then press enter. Arrow keys move and navigate."),
	info(""),
	"0Key bindings\t/keys\thelp\t70",
	"0About burrow\t/about\thelp\t70",
	"1Places to start\t/servers\thelp\t70",
)

var serversMenu = menu(
	info("Some long-running gopher servers:"),
	info(""),
	"1Floodgap\t\tgopher.floodgap.com\t70",
	"1SDF Public Access UNIX System\t\tsdf.org\t70",
	"1Quux\t\tgopher.quux.org\t70",
	"7Veronica-2 search\t/v2/vs\tgopher.floodgap.com\t70",
)

var keysPage = strings.Join([]string{
	"Key bindings",
	"",
	"  up / down, ctrl-p / ctrl-n   move the selection",
	"  enter                        open the selected link",
	"  left / right                 back / forward",
	"  backspace                    erase filter, or back when empty",
	"  delete                       erase filter only",
	"  a-z, 0-9, ...                filter links by number or name",
	"  ctrl-g                       go to a typed address",
	"  ctrl-r                       view page source",
	"  ctrl-y                       copy current address",
	"  ctrl-u                       show current address",
	"  ctrl-e                       open session history",
	"  ctrl-b                       open bookmarks",
	"  ctrl-s                       bookmark this page",
	"  ctrl-h                       this help",
	"  ctrl-c                       clear filter, or quit",
	"  ctrl-q                       quit",
	"",
}, "\r\n")

var aboutPage = strings.Join([]string{
	"burrow",
	"",
	"A small terminal client for the gopher protocol. It renders",
	"menus and text documents, saves anything else to disk, and",
	"keeps your history and bookmarks in plain files under the",
	"user config directory.",
	"",
}, "\r\n")
