package render

import "time"

// Spinner provides animated loading indicator frames: a cyclically
// growing run of dots. Frames share a width so redrawing in place is
// clean.
type Spinner struct {
	frame int
}

// NewSpinner creates a new spinner.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// Interval is the delay between spinner frames.
const Interval = 150 * time.Millisecond

var spinnerFrames = []string{"   ", ".  ", ".. ", "..."}

// Advance moves to the next animation frame.
func (s *Spinner) Advance() {
	s.frame++
}

// Frame returns the current animation frame string.
func (s *Spinner) Frame() string {
	return spinnerFrames[s.frame%len(spinnerFrames)]
}

// Width returns the display width of the spinner.
func (s *Spinner) Width() int {
	return StringWidth(s.Frame())
}
