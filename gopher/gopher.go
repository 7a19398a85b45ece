// Package gopher implements the wire format: item types, locators,
// request framing and menu parsing. Every parser here is total —
// malformed input degrades to empty fields, never to an error.
package gopher

import (
	"strings"
)

// ItemType classifies a resource by its single-character protocol code.
type ItemType int

const (
	// TypeDir is a menu of further links.
	TypeDir ItemType = iota
	// TypeText is a plain text document.
	TypeText
	// TypeHTML is a rich-text document; rendered the same as TypeText.
	TypeHTML
	// TypeSearch is a full-text search endpoint; its response is a menu.
	TypeSearch
	// TypeBinary and friends are downloads, never rendered inline.
	TypeBinary
	TypeArchive
	TypeGif
	TypeImage
	TypeSound
	// TypeInfo is a non-link comment line inside a menu.
	TypeInfo
	// TypeUnsupported is the catch-all for codes we don't recognize.
	TypeUnsupported
)

// ParseType decodes an item-type character. Unrecognized characters
// decode to TypeUnsupported; there is no error case.
func ParseType(c byte) ItemType {
	switch c {
	case '1':
		return TypeDir
	case '0':
		return TypeText
	case 'h':
		return TypeHTML
	case '7':
		return TypeSearch
	case '9':
		return TypeBinary
	case '5':
		return TypeArchive
	case 'g':
		return TypeGif
	case 'I':
		return TypeImage
	case 's':
		return TypeSound
	case 'i':
		return TypeInfo
	default:
		return TypeUnsupported
	}
}

// Char returns the wire character for the item type.
func (t ItemType) Char() byte {
	switch t {
	case TypeDir:
		return '1'
	case TypeText:
		return '0'
	case TypeHTML:
		return 'h'
	case TypeSearch:
		return '7'
	case TypeBinary:
		return '9'
	case TypeArchive:
		return '5'
	case TypeGif:
		return 'g'
	case TypeImage:
		return 'I'
	case TypeSound:
		return 's'
	case TypeInfo:
		return 'i'
	default:
		return '?'
	}
}

func (t ItemType) String() string {
	switch t {
	case TypeDir:
		return "menu"
	case TypeText:
		return "text"
	case TypeHTML:
		return "html"
	case TypeSearch:
		return "search"
	case TypeBinary:
		return "binary"
	case TypeArchive:
		return "archive"
	case TypeGif:
		return "gif"
	case TypeImage:
		return "image"
	case TypeSound:
		return "sound"
	case TypeInfo:
		return "info"
	default:
		return "unsupported"
	}
}

// IsLink reports whether a menu line of this type addresses a resource.
// Info and unsupported lines are decoration only.
func (t ItemType) IsLink() bool {
	return t != TypeInfo && t != TypeUnsupported
}

// IsMenu reports whether a fetched body of this type parses as a menu.
func (t ItemType) IsMenu() bool {
	return t == TypeDir || t == TypeSearch
}

// IsDocument reports whether a fetched body of this type renders as
// plain lines. Rich text gets no special treatment.
func (t ItemType) IsDocument() bool {
	return t == TypeText || t == TypeHTML
}

// IsDownload reports whether this type is saved to disk rather than
// rendered.
func (t ItemType) IsDownload() bool {
	switch t {
	case TypeBinary, TypeArchive, TypeGif, TypeImage, TypeSound:
		return true
	}
	return false
}

// Locator identifies a remote resource. Two locators are equal exactly
// when all four fields are equal, which the navigation layer uses to
// suppress self-navigation.
type Locator struct {
	Type     ItemType
	Host     string
	Port     string
	Selector string
}

// DefaultPort is used when a locator text carries no port.
const DefaultPort = "70"

// ParseLocator parses a locator from text. It accepts bare host[:port]
// forms as well as gopher:// URLs with an item-type path character.
// It never fails: absent fields become empty strings, a missing port
// becomes DefaultPort and a missing item type becomes TypeDir.
func ParseLocator(text string) Locator {
	text = strings.TrimPrefix(text, "gopher://")

	loc := Locator{Type: TypeDir, Port: DefaultPort}

	hostport := text
	if i := strings.IndexByte(text, '/'); i >= 0 {
		hostport = text[:i]
		rest := text[i+1:]
		if rest != "" {
			loc.Type = ParseType(rest[0])
			loc.Selector = rest[1:]
		}
	}

	if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		loc.Host = hostport[:i]
		if p := hostport[i+1:]; p != "" {
			loc.Port = p
		}
	} else {
		loc.Host = hostport
	}

	return loc
}

// String serializes the locator as a gopher URL. ParseLocator is its
// inverse.
func (l Locator) String() string {
	var sb strings.Builder
	sb.WriteString("gopher://")
	sb.WriteString(l.Host)
	sb.WriteByte(':')
	if l.Port != "" {
		sb.WriteString(l.Port)
	} else {
		sb.WriteString(DefaultPort)
	}
	sb.WriteByte('/')
	sb.WriteByte(l.Type.Char())
	sb.WriteString(l.Selector)
	return sb.String()
}

// Request serializes the outbound message for a selector: the selector
// followed by CRLF. That is the entire request — no framing exists.
func Request(selector string) []byte {
	return []byte(selector + "\r\n")
}

// Request returns the outbound message for this locator.
func (l Locator) Request() []byte {
	return Request(l.Selector)
}

// IsForeign reports whether a link target belongs to another protocol
// and should be handed to the system URL handler. Covers h-type "URL:"
// selectors and absolute non-gopher URLs typed by the user.
func IsForeign(target string) bool {
	if strings.HasPrefix(target, "URL:") {
		return true
	}
	if i := strings.Index(target, "://"); i >= 0 {
		return target[:i] != "gopher"
	}
	return false
}

// ForeignURL extracts the external URL from a foreign target.
func ForeignURL(target string) string {
	return strings.TrimPrefix(target, "URL:")
}

// Link is one link-bearing menu line. Its identity is its 1-based
// position among link-bearing lines; info lines consume no ordinal.
type Link struct {
	Name     string
	Selector string
	Host     string
	Port     string
	Type     ItemType
}

// Locator returns the remote resource this link addresses.
func (k Link) Locator() Locator {
	return Locator{Type: k.Type, Host: k.Host, Port: k.Port, Selector: k.Selector}
}

// ParseMenu extracts the ordered links from a menu body. The parser is
// total: lines with fewer than four tab-separated fields yield empty
// strings for the missing ones, extra fields are ignored, and lines
// whose type decodes to info or unsupported contribute nothing. A line
// consisting solely of "." terminates parsing; a body without one is
// implicitly terminated by its end.
func ParseMenu(body string) []Link {
	var links []Link
	for len(body) > 0 {
		line := body
		if i := strings.IndexByte(body, '\n'); i >= 0 {
			line = body[:i]
			body = body[i+1:]
		} else {
			body = ""
		}
		line = strings.TrimSuffix(line, "\r")
		if line == "." {
			break
		}
		if line == "" {
			continue
		}
		t := ParseType(line[0])
		if !t.IsLink() {
			continue
		}
		var fields [4]string
		for i, f := range strings.Split(line[1:], "\t") {
			if i >= len(fields) {
				break
			}
			fields[i] = f
		}
		links = append(links, Link{
			Name:     fields[0],
			Selector: fields[1],
			Host:     fields[2],
			Port:     strings.TrimRight(fields[3], "\r"),
			Type:     t,
		})
	}
	return links
}
