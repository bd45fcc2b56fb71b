// Package notification delivers screener and trade alerts to external
// channels (Telegram, generic webhooks).
package notification

import (
	"context"
	"log"
)

// AlertLevel represents the severity of an alert.
type AlertLevel string

const (
	AlertInfo     AlertLevel = "INFO"
	AlertWarning  AlertLevel = "WARNING"
	AlertCritical AlertLevel = "CRITICAL"
)

// Alert represents a notification to be sent. Data carries structured
// fields for backends that forward JSON; text-only backends ignore it.
type Alert struct {
	Level   AlertLevel             `json:"level"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

// Notifier is the interface for all notification backends.
type Notifier interface {
	// Send delivers an alert. Returns error if delivery fails.
	Send(ctx context.Context, alert Alert) error
}

// LogNotifier is a simple notifier that logs alerts (useful for development).
type LogNotifier struct{}

// NewLogNotifier creates a log-based notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, alert Alert) error {
	log.Printf("[notify] [%s] %s: %s", alert.Level, alert.Title, alert.Message)
	return nil
}

// Multi fans one alert out to several backends; every backend is
// attempted, the first error is returned.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, alert Alert) error {
	var first error
	for _, n := range m {
		if err := n.Send(ctx, alert); err != nil && first == nil {
			first = err
		}
	}
	return first
}
