// Package fetch performs the network round trip for a locator and
// turns the response into a view or a file on disk. Each call blocks
// its caller until the remote side closes the connection; there is no
// timeout and no cancellation, so at most one retrieval is ever in
// flight.
package fetch

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"burrow/gopher"
	"burrow/render"
	"burrow/view"
)

// Error kinds, distinguishable with errors.Is.
var (
	// ErrProtocol marks a transported response whose item type cannot
	// be displayed. Malformed menu syntax is never an error.
	ErrProtocol = errors.New("unsupported response type")
	// ErrNetwork marks connect, write and read failures.
	ErrNetwork = errors.New("network failure")
)

// Engine retrieves remote resources. Out receives the progress
// indicator while a retrieval is running.
type Engine struct {
	Out         io.Writer
	DownloadDir string
}

// New builds an engine that animates its indicator on out and saves
// downloads under downloadDir.
func New(out io.Writer, downloadDir string) *Engine {
	return &Engine{Out: out, DownloadDir: downloadDir}
}

// Fetch retrieves the resource and wraps it in the view its item type
// calls for. Menu and search responses parse as menus, text and html
// render as documents. Download types are rejected here; they go
// through Download instead.
func (e *Engine) Fetch(loc gopher.Locator) (view.View, error) {
	switch {
	case loc.Type.IsMenu():
		body, err := e.retrieve(loc)
		if err != nil {
			return nil, err
		}
		return view.NewMenu(loc, body), nil
	case loc.Type.IsDocument():
		body, err := e.retrieve(loc)
		if err != nil {
			return nil, err
		}
		return view.NewDocument(loc, body), nil
	default:
		return nil, fmt.Errorf("%w: %s item %q", ErrProtocol, loc.Type, loc.Selector)
	}
}

// Download retrieves the resource and streams it to a file named after
// the last selector path segment, returning the destination path and
// the byte count written.
func (e *Engine) Download(loc gopher.Locator) (string, int64, error) {
	dest := filepath.Join(e.DownloadDir, downloadName(loc.Selector))
	res := await(e, func() copied {
		n, err := e.saveTo(loc, dest)
		return copied{n, err}
	})
	if res.err != nil {
		return "", 0, res.err
	}
	return dest, res.n, nil
}

func downloadName(selector string) string {
	name := path.Base(selector)
	if name == "" || name == "." || name == "/" {
		name = "burrow-" + uuid.NewString()[:8]
	}
	return name
}

type fetched struct {
	body string
	err  error
}

type copied struct {
	n   int64
	err error
}

func (e *Engine) retrieve(loc gopher.Locator) (string, error) {
	res := await(e, func() fetched {
		body, err := roundTrip(loc)
		return fetched{string(body), err}
	})
	return res.body, res.err
}

// await runs work on its own goroutine and animates the indicator
// until it delivers a result. The indicator is told to stop and has
// cleared itself before await returns, so the caller may redraw
// immediately.
func await[T any](e *Engine, work func() T) T {
	resultCh := make(chan T, 1)
	go func() {
		resultCh <- work()
	}()

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		e.indicate(done)
		close(stopped)
	}()

	res := <-resultCh
	close(done)
	<-stopped
	return res
}

func (e *Engine) indicate(done <-chan struct{}) {
	sp := render.NewSpinner()
	for {
		select {
		case <-done:
			fmt.Fprintf(e.Out, "\r%*s\r", sp.Width(), "")
			return
		default:
			fmt.Fprintf(e.Out, "\r%s", sp.Frame())
			sp.Advance()
			time.Sleep(render.Interval)
		}
	}
}

// roundTrip is the entire protocol exchange: connect, send the
// selector, read until the server closes.
func roundTrip(loc gopher.Locator) ([]byte, error) {
	addr := net.JoinHostPort(loc.Host, loc.Port)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to %s: %w", ErrNetwork, addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(loc.Request()); err != nil {
		return nil, fmt.Errorf("%w: sending request to %s: %w", ErrNetwork, addr, err)
	}
	body, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("%w: reading from %s: %w", ErrNetwork, addr, err)
	}
	return body, nil
}

func (e *Engine) saveTo(loc gopher.Locator, dest string) (int64, error) {
	addr := net.JoinHostPort(loc.Host, loc.Port)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("%w: connecting to %s: %w", ErrNetwork, addr, err)
	}
	defer conn.Close()

	if _, err := conn.Write(loc.Request()); err != nil {
		return 0, fmt.Errorf("%w: sending request to %s: %w", ErrNetwork, addr, err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dest, err)
	}
	n, err := io.Copy(f, conn)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("saving %s: %w", dest, err)
	}
	return n, nil
}
