package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/donaldgifford/offer-finder/internal/metrics"
)

const (
	colorOrange = 0xE67E22

	// maxListedDomains is how many domains one embed lists before the
	// overflow line.
	maxListedDomains = 10
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifyUnknownStores posts one embed listing the domains. Empty reports are
// not sent.
func (d *DiscordNotifier) NotifyUnknownStores(ctx context.Context, report UnknownStores) error {
	if len(report.Domains) == 0 {
		return nil
	}
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(report)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(report UnknownStores) discordEmbed {
	limit := min(len(report.Domains), maxListedDomains)

	var b strings.Builder
	for _, dom := range report.Domains[:limit] {
		fmt.Fprintf(&b, "• `%s`\n", dom)
	}
	if extra := len(report.Domains) - limit; extra > 0 {
		fmt.Fprintf(&b, "... and %d more", extra)
	}

	embed := discordEmbed{
		Title:       fmt.Sprintf("Stores to onboard (%d)", len(report.Domains)),
		Color:       colorOrange,
		Description: strings.TrimRight(b.String(), "\n"),
	}

	if report.ItemTitle != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "Item", Value: report.ItemTitle})
	}
	if report.CountryCode != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Shopper country", Value: report.CountryCode, Inline: true,
		})
	}

	return embed
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
