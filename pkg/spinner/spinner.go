// Package spinner shows connection progress on the terminal: an animated
// indicator while dialing, a colored check or cross when done. When output
// is not a terminal it degrades to plain static lines.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	carriageReturn = "\r"

	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"

	symbolSuccess = "✓"
	symbolFailure = "✗"

	refreshRate = 80 * time.Millisecond
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a single status line. All methods are safe for
// concurrent use.
type Spinner struct {
	mu      sync.Mutex
	w       io.Writer
	message string
	active  bool
	isTTY   bool
	frame   int
	lastLen int
	stopCh  chan struct{}
	doneCh  chan struct{}
	started time.Time
}

// New creates a spinner writing to stderr.
func New(message string) *Spinner {
	return NewWriter(os.Stderr, message)
}

// NewWriter creates a spinner writing to w. Animation is only used when w
// is a terminal.
func NewWriter(w io.Writer, message string) *Spinner {
	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &Spinner{w: w, message: message, isTTY: isTTY}
}

// Start begins the animation. Starting a running spinner is a no-op. On a
// non-terminal writer it prints the message once instead.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}
	s.active = true
	s.started = time.Now()
	s.frame = 0
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	if !s.isTTY {
		fmt.Fprintf(s.w, "%s...\n", s.message)
		return
	}
	go s.spin()
}

// Update changes the status message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop halts the animation and clears the line. Stopping an inactive
// spinner is a no-op.
func (s *Spinner) Stop() {
	if !s.halt() {
		return
	}
	s.mu.Lock()
	s.clearLine()
	s.mu.Unlock()
}

// Success stops the spinner and prints a green check with the message.
func (s *Spinner) Success(message string) {
	s.finish(message, symbolSuccess, colorGreen)
}

// Fail stops the spinner and prints a red cross with the message.
func (s *Spinner) Fail(message string) {
	s.finish(message, symbolFailure, colorRed)
}

func (s *Spinner) finish(message, symbol, color string) {
	s.halt()

	s.mu.Lock()
	defer s.mu.Unlock()
	if message == "" {
		message = s.message
	}
	s.clearLine()
	if s.isTTY {
		fmt.Fprintf(s.w, "%s%s%s %s\n", color, symbol, colorReset, message)
	} else {
		fmt.Fprintf(s.w, "%s %s\n", symbol, message)
	}
}

// halt stops the animation goroutine and reports whether the spinner was
// running.
func (s *Spinner) halt() bool {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return false
	}
	s.active = false
	if !s.isTTY {
		s.mu.Unlock()
		return true
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh
	return true
}

func (s *Spinner) spin() {
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	s.render()
	for {
		select {
		case <-s.stopCh:
			close(s.doneCh)
			return
		case <-ticker.C:
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}

	char := frames[s.frame%len(frames)]
	s.frame++
	elapsed := time.Since(s.started)
	line := fmt.Sprintf("%s %s (%.1fs)", char, s.message, elapsed.Seconds())
	s.writeLine(line)
}

// writeLine overwrites the previous status line. Caller holds the mutex.
func (s *Spinner) writeLine(line string) {
	if s.lastLen > 0 {
		fmt.Fprint(s.w, carriageReturn+strings.Repeat(" ", s.lastLen)+carriageReturn)
	}
	fmt.Fprint(s.w, line)
	s.lastLen = len(line)
}

// clearLine erases the status line. Caller holds the mutex.
func (s *Spinner) clearLine() {
	if s.lastLen > 0 {
		fmt.Fprint(s.w, carriageReturn+strings.Repeat(" ", s.lastLen)+carriageReturn)
		s.lastLen = 0
	}
}
