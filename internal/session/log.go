package session

import "github.com/gdamore/tcell/v2"

// Message is one line of the in-game message log.
type Message struct {
	Text  string      `json:"text"`
	Color tcell.Color `json:"color"`
}

// Log is the append-only message log. Only the display layer decides how
// much of it to show.
type Log struct {
	messages []Message
}

// NewLog returns a log seeded with msgs.
func NewLog(msgs ...Message) *Log {
	return &Log{messages: append([]Message(nil), msgs...)}
}

// Add appends a message.
func (l *Log) Add(text string, color tcell.Color) {
	l.messages = append(l.messages, Message{Text: text, Color: color})
}

// Len returns the number of messages logged so far.
func (l *Log) Len() int { return len(l.messages) }

// Messages returns every message, oldest first.
func (l *Log) Messages() []Message { return l.messages }

// Last returns up to n of the most recent messages, oldest first.
func (l *Log) Last(n int) []Message {
	if n >= len(l.messages) {
		return l.messages
	}
	return l.messages[len(l.messages)-n:]
}
