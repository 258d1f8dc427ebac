// Package session records the messages seen during a chat session so the
// shell can page back through them and save a transcript.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies who a message came from.
type Kind string

const (
	// KindUser is a message from a channel member.
	KindUser Kind = "user"
	// KindServer is an informational server message.
	KindServer Kind = "server"
	// KindServerWarn is a server warning.
	KindServerWarn Kind = "server-warn"
	// KindEmote is a third-person action message.
	KindEmote Kind = "emote"
)

// Message is one recorded chat line.
type Message struct {
	ID   uuid.UUID
	Kind Kind
	From string
	Trip string
	Body string
	Time time.Time
}

// NewMessage builds a message stamped with a fresh id and the current time.
func NewMessage(kind Kind, from, trip, body string) Message {
	return Message{
		ID:   uuid.New(),
		Kind: kind,
		From: from,
		Trip: trip,
		Body: body,
		Time: time.Now(),
	}
}

// Log is an append-only, concurrency-safe message history.
type Log struct {
	mu       sync.RWMutex
	messages []Message
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Add appends a message.
func (l *Log) Add(msg Message) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
}

// Len returns how many messages have been recorded.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.messages)
}

// History returns a copy of the most recent n messages, oldest first. A
// non-positive n returns everything.
func (l *Log) History(n int) []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := 0
	if n > 0 && n < len(l.messages) {
		start = len(l.messages) - n
	}
	out := make([]Message, len(l.messages)-start)
	copy(out, l.messages[start:])
	return out
}

// Last returns the most recent message.
func (l *Log) Last() (Message, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}

// SaveTranscript writes the full history to path as plain text, one line
// per message. Parent directories are created as needed.
func (l *Log) SaveTranscript(path string) error {
	messages := l.History(0)

	var b strings.Builder
	for _, m := range messages {
		stamp := m.Time.Format("2006-01-02 15:04:05")
		switch m.Kind {
		case KindUser:
			if m.Trip != "" {
				fmt.Fprintf(&b, "[%s] <%s#%s> %s\n", stamp, m.From, m.Trip, m.Body)
			} else {
				fmt.Fprintf(&b, "[%s] <%s> %s\n", stamp, m.From, m.Body)
			}
		case KindEmote:
			fmt.Fprintf(&b, "[%s] * %s\n", stamp, m.Body)
		case KindServerWarn:
			fmt.Fprintf(&b, "[%s] ! %s\n", stamp, m.Body)
		default:
			fmt.Fprintf(&b, "[%s] -- %s\n", stamp, m.Body)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("session: create transcript dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("session: write transcript: %w", err)
	}
	return nil
}
