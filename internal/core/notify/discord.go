// Package notify posts fire-and-forget messages to chat webhooks. Delivery
// is best effort: failures are logged inside this boundary and never reach
// the caller's primary response.
package notify

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Notifier posts a text message to a webhook URL. An empty URL is a no-op.
type Notifier interface {
	Notify(webhookURL, content string)
}

// DiscordNotifier implements Notifier against Discord-style webhooks.
type DiscordNotifier struct {
	httpClient *http.Client
}

func NewDiscordNotifier() *DiscordNotifier {
	return &DiscordNotifier{
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *DiscordNotifier) Notify(webhookURL, content string) {
	if webhookURL == "" {
		return
	}

	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		log.Error().Err(err).Msg("discord notify: marshal failed")
		return
	}

	resp, err := n.httpClient.Post(webhookURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Error().Err(err).Msg("discord notify failed")
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Msg("discord notify rejected")
	}
}

// CaptureNotifier records notifications for tests.
type CaptureNotifier struct {
	Sent []CapturedNotification
}

// CapturedNotification is one recorded Notify call.
type CapturedNotification struct {
	WebhookURL string
	Content    string
}

func (n *CaptureNotifier) Notify(webhookURL, content string) {
	n.Sent = append(n.Sent, CapturedNotification{WebhookURL: webhookURL, Content: content})
}
