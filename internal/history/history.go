// Package history holds the chat pane's message backlog: a fixed-capacity
// buffer of immutable messages, each memoizing its transcoded markup for the
// lifetime of the message.
package history

import (
	"strings"

	"github.com/appengine-ltd/chatpane/internal/ircmark"
)

const defaultCapacity = 260

// Message is one received chat line. Sender and Raw never change after the
// message enters a Buffer; the markup is computed on first use and cached.
type Message struct {
	Sender string
	Raw    string

	markup     string
	transcoded bool
}

// Markup returns the transcoded form of Raw, computing it at most once.
// The pane runs on a single frame loop, so no locking is needed.
func (m *Message) Markup() string {
	if !m.transcoded {
		m.markup = ircmark.Transcode(m.Raw)
		m.transcoded = true
	}
	return m.markup
}

// Buffer keeps the most recent messages up to a fixed capacity.
type Buffer struct {
	capacity int
	messages []*Message
}

func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Append stores a new message, dropping the oldest entries once the buffer
// is full. Blank lines are ignored.
func (b *Buffer) Append(sender, raw string) *Message {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	m := &Message{Sender: sender, Raw: raw}
	b.messages = append(b.messages, m)
	if len(b.messages) > b.capacity {
		b.messages = append([]*Message(nil), b.messages[len(b.messages)-b.capacity:]...)
	}
	return m
}

func (b *Buffer) Len() int {
	return len(b.messages)
}

// Last returns up to n of the most recent messages, oldest first.
func (b *Buffer) Last(n int) []*Message {
	if n <= 0 || len(b.messages) == 0 {
		return nil
	}
	if n > len(b.messages) {
		n = len(b.messages)
	}
	return b.messages[len(b.messages)-n:]
}

// All returns the full backlog, oldest first. The slice is the caller's to
// keep; growing it cannot alias the buffer's own storage.
func (b *Buffer) All() []*Message {
	return append([]*Message(nil), b.messages...)
}

func (b *Buffer) Clear() {
	b.messages = nil
}

// SetCapacity adjusts the retention limit, trimming immediately if needed.
func (b *Buffer) SetCapacity(capacity int) {
	if capacity < 1 {
		return
	}
	b.capacity = capacity
	if len(b.messages) > capacity {
		b.messages = append([]*Message(nil), b.messages[len(b.messages)-capacity:]...)
	}
}
