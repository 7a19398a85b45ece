// Package theme provides the color palette for rendered pages.
// Menu links are colored by item type; document text uses terminal
// defaults.
package theme

import "burrow/render"

// Theme maps page elements to styles.
type Theme struct {
	Name string

	Menu     render.Style // directory/menu links
	Document render.Style // text and rich-text links
	Download render.Style // binary/download links
	Search   render.Style // search links
	External render.Style // h-type links leaving the protocol
	Info     render.Style // non-link comment lines

	Ordinal render.Style // link numbering
	Cursor  render.Style // selection marker
	Status  render.Style // status/prompt line
	Error   render.Style // error status messages
}

// Default is the standard palette.
func Default() *Theme {
	return &Theme{
		Name:     "default",
		Menu:     render.Style{FgColor: render.ColorBrightBlue},
		Document: render.Style{FgColor: render.ColorBrightGreen},
		Download: render.Style{FgColor: render.ColorBrightRed},
		Search:   render.Style{FgColor: render.ColorBrightMagenta},
		External: render.Style{FgColor: render.ColorBrightCyan},
		Info:     render.Style{FgColor: render.ColorBrightYellow},
		Ordinal:  render.Style{FgColor: render.ColorBrightMagenta},
		Cursor:   render.Style{Bold: true, FgColor: render.ColorBrightBlack},
		Status:   render.Style{FgColor: render.ColorWhite},
		Error:    render.Style{Bold: true, FgColor: render.ColorBrightRed},
	}
}

// Mono is a colorless palette for terminals without color support.
func Mono() *Theme {
	return &Theme{
		Name:    "mono",
		Info:    render.Style{Dim: true},
		Ordinal: render.Style{Dim: true},
		Cursor:  render.Style{Bold: true},
		Status:  render.Style{Reverse: true},
		Error:   render.Style{Bold: true, Reverse: true},
	}
}
