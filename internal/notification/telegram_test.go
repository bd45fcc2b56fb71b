package notification

import (
	"strings"
	"testing"
)

func TestTelegramTextIncludesDataFields(t *testing.T) {
	text := telegramText(Alert{
		Level:   AlertWarning,
		Title:   "Trade batch",
		Message: "2 brackets placed",
		Data: map[string]interface{}{
			"success": 2,
			"failed":  1,
		},
	})

	if !strings.HasPrefix(text, "⚠️") {
		t.Errorf("warning level lost its emoji: %q", text)
	}
	// Data keys render sorted, so the output is stable.
	failedAt := strings.Index(text, "`failed: 1`")
	successAt := strings.Index(text, "`success: 2`")
	if failedAt < 0 || successAt < 0 {
		t.Fatalf("data fields missing from text: %q", text)
	}
	if failedAt > successAt {
		t.Errorf("data fields not sorted: %q", text)
	}
}

func TestTelegramTextWithoutData(t *testing.T) {
	text := telegramText(Alert{Level: AlertInfo, Title: "Screen", Message: "done"})
	if strings.Contains(text, "`") {
		t.Errorf("no data, no monospace block expected: %q", text)
	}
}

func TestTelegramTextEscapesMarkdown(t *testing.T) {
	text := telegramText(Alert{Level: AlertCritical, Title: "BAJAJ-AUTO", Message: "strength 2.5%"})
	if !strings.Contains(text, `BAJAJ\-AUTO`) {
		t.Errorf("hyphen not escaped: %q", text)
	}
	if !strings.Contains(text, `2\.5%`) {
		t.Errorf("dot not escaped: %q", text)
	}
}
