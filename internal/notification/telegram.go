package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"
)

// TelegramNotifier delivers alerts to a chat via the Telegram Bot API.
// Structured Alert.Data fields are appended as monospace lines so a trade
// batch summary arrives with its numbers intact.
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *http.Client
}

// NewTelegramNotifier creates a Telegram notifier for the given bot token
// (from @BotFather) and target chat, group, or channel ID.
func NewTelegramNotifier(botToken, chatID string) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (t *TelegramNotifier) Send(ctx context.Context, alert Alert) error {
	body, _ := json.Marshal(map[string]interface{}{
		"chat_id":    t.chatID,
		"text":       telegramText(alert),
		"parse_mode": "MarkdownV2",
	})

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.botToken)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram: unexpected status %d", resp.StatusCode)
	}

	log.Printf("[telegram] sent alert: %s", alert.Title)
	return nil
}

// telegramText renders an alert as MarkdownV2: severity emoji and title,
// the message body, then any Data fields as sorted `key: value` lines.
func telegramText(alert Alert) string {
	emoji := "ℹ️"
	switch alert.Level {
	case AlertWarning:
		emoji = "⚠️"
	case AlertCritical:
		emoji = "🚨"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s *%s*\n\n%s", emoji, escapeMarkdown(alert.Title), escapeMarkdown(alert.Message))

	if len(alert.Data) > 0 {
		keys := make([]string, 0, len(alert.Data))
		for k := range alert.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteString("\n")
		for _, k := range keys {
			fmt.Fprintf(&buf, "\n`%s: %v`", escapeMarkdown(k), alert.Data[k])
		}
	}
	return buf.String()
}

// escapeMarkdown escapes the characters MarkdownV2 treats as markup.
func escapeMarkdown(s string) string {
	specials := []byte{'_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!'}
	var buf bytes.Buffer
	for i := 0; i < len(s); i++ {
		for _, sp := range specials {
			if s[i] == sp {
				buf.WriteByte('\\')
				break
			}
		}
		buf.WriteByte(s[i])
	}
	return buf.String()
}
