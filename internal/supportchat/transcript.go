package supportchat

import (
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"oficina-tg-client/internal/models"
)

// GreetingID identifies the main menu greeting in a transcript
const GreetingID = "msg_intro_001"

// Sender tells who wrote a message
type Sender int

const (
	// SenderClient is the customer
	SenderClient Sender = iota
	// SenderSupport is the bot or a support agent
	SenderSupport
)

// Message is one line of the visible conversation
type Message struct {
	ID        string
	Text      string
	Timestamp time.Time
	Sender    Sender
}

// Transcript is the append-only, oldest-first message list of one chat
type Transcript struct {
	messages []Message
}

// NewTranscript creates an empty transcript
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a message at the end
func (t *Transcript) Append(m Message) {
	t.messages = append(t.messages, m)
}

// AppendLocal adds a message produced on this side of the chat
func (t *Transcript) AppendLocal(sender Sender, text string) Message {
	m := Message{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: time.Now(),
		Sender:    sender,
	}
	t.Append(m)
	return m
}

// Len returns the number of messages
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Messages returns a copy of all messages, oldest first
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Tail returns a copy of the n newest messages, oldest first
func (t *Transcript) Tail(n int) []Message {
	if n <= 0 {
		return nil
	}
	start := len(t.messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]Message, len(t.messages)-start)
	copy(out, t.messages[start:])
	return out
}

// fromBackend converts persisted chat messages, oldest first
func fromBackend(msgs []models.ChatMessage) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		sender := SenderSupport
		if m.SentByClient {
			sender = SenderClient
		}
		out = append(out, Message{
			ID:        strconv.FormatInt(m.ID, 10),
			Text:      m.Content,
			Timestamp: m.SentAt.Time,
			Sender:    sender,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// withGreeting appends the greeting when the history is empty or the newest
// message is not from support. The greeting is never duplicated.
func withGreeting(history []Message, greeting string) ([]Message, bool) {
	if n := len(history); n > 0 && history[n-1].Sender == SenderSupport {
		return history, false
	}

	filtered := history[:0:0]
	for _, m := range history {
		if m.ID != GreetingID {
			filtered = append(filtered, m)
		}
	}

	return append(filtered, greetingMessage(greeting)), true
}

func greetingMessage(text string) Message {
	return Message{
		ID:        GreetingID,
		Text:      text,
		Timestamp: time.Now(),
		Sender:    SenderSupport,
	}
}
