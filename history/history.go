// Package history persists the visit log and the bookmark list
// between sessions. Both live under the user config directory as
// plain line files.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"burrow/gopher"
)

// Dir returns the config directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	dir := filepath.Join(base, "burrow")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	return dir, nil
}

// Log accumulates visited locators in memory and appends them to the
// history file in one write when the session ends.
type Log struct {
	path    string
	entries []string
}

// OpenLog prepares a visit log stored under dir.
func OpenLog(dir string) *Log {
	return &Log{path: filepath.Join(dir, "history.txt")}
}

// Record notes a visit. Consecutive repeats collapse to one entry.
func (l *Log) Record(loc gopher.Locator) {
	url := loc.String()
	if n := len(l.entries); n > 0 && l.entries[n-1] == url {
		return
	}
	l.entries = append(l.entries, url)
}

// Entries returns the visits recorded this session, oldest first.
func (l *Log) Entries() []string { return l.entries }

// Menu returns this session's visits as a menu body, newest first.
func (l *Log) Menu() string {
	var sb strings.Builder
	if len(l.entries) == 0 {
		sb.WriteString("iNothing visited yet.\tfake\tnull\t70\r\n")
	}
	for i := len(l.entries) - 1; i >= 0; i-- {
		url := l.entries[i]
		sb.WriteString(menuLine(url, gopher.ParseLocator(url)))
		sb.WriteString("\r\n")
	}
	sb.WriteString(".\r\n")
	return sb.String()
}

// Save appends this session's visits to the history file.
func (l *Log) Save() error {
	if len(l.entries) == 0 {
		return nil
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	_, err = f.WriteString(strings.Join(l.entries, "\n") + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// Bookmarks is the saved bookmark list. Entries are stored as menu
// lines, so the whole file doubles as a navigable menu body.
type Bookmarks struct {
	path  string
	lines []string
}

// OpenBookmarks loads the bookmark file under dir, starting empty if
// none exists yet.
func OpenBookmarks(dir string) (*Bookmarks, error) {
	b := &Bookmarks{path: filepath.Join(dir, "bookmarks.txt")}
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading bookmarks: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSuffix(line, "\r"); line != "" {
			b.lines = append(b.lines, line)
		}
	}
	return b, nil
}

// Len returns the number of saved bookmarks.
func (b *Bookmarks) Len() int { return len(b.lines) }

// Add appends a bookmark and persists the list. Duplicate targets are
// ignored.
func (b *Bookmarks) Add(name string, loc gopher.Locator) error {
	line := menuLine(name, loc)
	for _, l := range b.lines {
		if l == line {
			return nil
		}
	}
	b.lines = append(b.lines, line)
	return b.save()
}

// Menu returns the bookmark list as a menu body.
func (b *Bookmarks) Menu() string {
	var sb strings.Builder
	if len(b.lines) == 0 {
		sb.WriteString("iNo bookmarks saved yet.\tfake\tnull\t70\r\n")
	}
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteString("\r\n")
	}
	sb.WriteString(".\r\n")
	return sb.String()
}

func (b *Bookmarks) save() error {
	body := strings.Join(b.lines, "\r\n") + "\r\n"
	if err := os.WriteFile(b.path, []byte(body), 0644); err != nil {
		return fmt.Errorf("writing bookmarks: %w", err)
	}
	return nil
}

func menuLine(name string, loc gopher.Locator) string {
	return fmt.Sprintf("%c%s\t%s\t%s\t%s",
		loc.Type.Char(), name, loc.Selector, loc.Host, loc.Port)
}
