package browser

import (
	"io"

	"burrow/input"
	"burrow/render"
)

// session is the interactive loop state: the live canvas plus the
// shared key reader the modal sub-loops borrow.
type session struct {
	b      *Browser
	in     *input.Reader
	out    io.Writer
	canvas *render.Canvas
}

// Run drives the session until quit or end of input. The terminal is
// expected to be in raw mode with the alternate screen active. Modal
// confirmation and text prompts read from the same key stream as the
// main loop, so input stays single-threaded throughout.
func (b *Browser) Run(in *input.Reader, out io.Writer) error {
	s := &session{b: b, in: in, out: out}
	b.Confirm = s.confirm
	b.Prompt = s.prompt
	s.sync()

	for {
		s.sync()
		if b.Render(s.canvas) {
			s.canvas.RenderTo(out)
		}
		k, err := in.ReadKey()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if !b.Handle(k) {
			return nil
		}
	}
}

// sync polls the terminal size and rebuilds the canvas when it
// changed. Polling before each render keeps resize handling on the
// main goroutine.
func (s *session) sync() {
	w, h, err := render.TerminalSize()
	if err != nil {
		w, h = 80, 24
	}
	if s.canvas == nil || w != s.canvas.Width() || h != s.canvas.Height() {
		s.canvas = render.NewCanvas(w, h)
		s.b.Resize(w, h)
	}
}

func (s *session) confirm(msg string) bool {
	s.showPrompt(msg + " [y/n]")
	for {
		k, err := s.in.ReadKey()
		if err != nil {
			return false
		}
		switch k.Kind {
		case input.KindChar:
			switch k.Ch {
			case 'y', 'Y':
				return true
			case 'n', 'N':
				return false
			}
		case input.KindEnter:
			return true
		case input.KindEscape:
			return false
		case input.KindCtrl:
			if k.Ch == 'c' {
				return false
			}
		}
	}
}

func (s *session) prompt(label string) (string, bool) {
	var buf []byte
	for {
		s.showPrompt(label + string(buf))
		k, err := s.in.ReadKey()
		if err != nil {
			return "", false
		}
		switch k.Kind {
		case input.KindEnter:
			return string(buf), true
		case input.KindEscape:
			return "", false
		case input.KindBackspace, input.KindDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case input.KindChar:
			buf = append(buf, k.Ch)
		case input.KindCtrl:
			if k.Ch == 'c' {
				return "", false
			}
		}
	}
}

// showPrompt replaces the status row with text and pushes a frame.
func (s *session) showPrompt(text string) {
	y := s.canvas.Height() - 1
	for x := 0; x < s.canvas.Width(); x++ {
		s.canvas.Set(x, y, ' ', render.Style{})
	}
	s.canvas.WriteString(0, y, text, s.b.theme.Status)
	s.canvas.RenderTo(s.out)
}
