// Package notify delivers user-facing success and failure messages.
package notify

import (
	"context"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is one toast-style message.
type Notification struct {
	ID          string    `json:"id"`
	Level       Level     `json:"level"`
	Operation   string    `json:"operation"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	At          time.Time `json:"at"`
}

// Sink receives notifications. Implementations must not block the caller
// on slow delivery for longer than the context allows.
type Sink interface {
	Notify(ctx context.Context, n Notification)
}

func Success(operation, title, description string) Notification {
	return Notification{Level: LevelSuccess, Operation: operation, Title: title, Description: description}
}

func Info(operation, title, description string) Notification {
	return Notification{Level: LevelInfo, Operation: operation, Title: title, Description: description}
}

// Failure builds an error notification whose description is err's message.
func Failure(operation, title string, err error) Notification {
	n := Notification{Level: LevelError, Operation: operation, Title: title}
	if err != nil {
		n.Description = err.Error()
	}
	return n
}

// Multi fans a notification out to every sink in order.
type Multi []Sink

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, sink := range m {
		if sink != nil {
			sink.Notify(ctx, n)
		}
	}
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(context.Context, Notification) {}
