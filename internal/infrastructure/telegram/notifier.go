package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"FactScanner/internal/domain"
	"FactScanner/internal/ports"
)

const defaultAPIBase = "https://api.telegram.org"

// Notifier renders finished reports as Markdown digests and sends them to a
// Telegram chat via the bot API.
type Notifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers bot token and chat identifier.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  defaultAPIBase,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// PublishReport formats the report as a digest and posts it to Telegram.
func (n *Notifier) PublishReport(ctx context.Context, report domain.Report) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return fmt.Errorf("telegram notifier misconfigured")
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", formatDigest(report))
	form.Set("parse_mode", "Markdown")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram error: %s", resp.Status)
	}

	return nil
}

// formatDigest renders the title line, the accuracy summary, and one bullet
// per key finding.
func formatDigest(report domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", report.Title)
	fmt.Fprintf(&b, "Overall accuracy: %.0f%% (%s)\n", report.OverallAccuracy*100, report.Status)
	for _, finding := range report.KeyFindings {
		b.WriteString("- " + finding + "\n")
	}
	return b.String()
}
