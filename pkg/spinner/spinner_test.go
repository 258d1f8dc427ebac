package spinner

import (
	"strings"
	"sync"
	"testing"
)

// syncBuffer lets the animation goroutine and the test write safely.
type syncBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNonTTYPrintsStaticMessage(t *testing.T) {
	buf := &syncBuffer{}
	s := NewWriter(buf, "connecting")

	s.Start()
	s.Stop()

	out := buf.String()
	if out != "connecting...\n" {
		t.Errorf("output = %q", out)
	}
}

func TestSuccessAndFailSymbols(t *testing.T) {
	buf := &syncBuffer{}
	s := NewWriter(buf, "connecting")
	s.Start()
	s.Success("connected")

	if !strings.Contains(buf.String(), symbolSuccess+" connected") {
		t.Errorf("success output = %q", buf.String())
	}

	buf2 := &syncBuffer{}
	s2 := NewWriter(buf2, "connecting")
	s2.Start()
	s2.Fail("connection refused")

	if !strings.Contains(buf2.String(), symbolFailure+" connection refused") {
		t.Errorf("fail output = %q", buf2.String())
	}
}

func TestFinishUsesCurrentMessageWhenEmpty(t *testing.T) {
	buf := &syncBuffer{}
	s := NewWriter(buf, "dialing")
	s.Start()
	s.Update("still dialing")
	s.Success("")

	if !strings.Contains(buf.String(), "still dialing") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDoubleStartAndStopAreNoOps(t *testing.T) {
	buf := &syncBuffer{}
	s := NewWriter(buf, "connecting")

	s.Start()
	s.Start()
	s.Stop()
	s.Stop()

	if got := strings.Count(buf.String(), "connecting...\n"); got != 1 {
		t.Errorf("message printed %d times", got)
	}
}

func TestStopBeforeStart(t *testing.T) {
	s := NewWriter(&syncBuffer{}, "x")
	s.Stop() // must not panic or block
}
