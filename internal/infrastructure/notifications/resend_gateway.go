package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"draftingco/internal/domain/entities"
	"draftingco/internal/usecase/interfaces"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")
var ErrResendRejected = errors.New("resend rejected the message")

const resendEndpoint = "https://api.resend.com/emails"

// ResendGateway sends the estimate summary email through the Resend REST
// API. In mock mode it logs the message instead of sending it, which keeps
// local runs and CI off the network.

type ResendGateway struct {
	client   *http.Client
	apiKey   string
	from     string
	mockMode bool
}

var _ interfaces.INotifier = (*ResendGateway)(nil)

func NewResendGateway(apiKey string) (*ResendGateway, error) {
	from := getenvDefault("QUOTE_EMAIL_FROM", "estimates@draftingco.com")

	if isNotifierMockEnabled() {
		log.Printf("[notify][resend] mock mode enabled")
		return &ResendGateway{mockMode: true, from: from}, nil
	}

	if apiKey == "" {
		log.Printf("[notify][resend] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}

	return &ResendGateway{
		client: &http.Client{Timeout: 15 * time.Second},
		apiKey: apiKey,
		from:   from,
	}, nil
}

type resendMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendEstimateSummary emails the customer the configuration snapshot and
// the price they were shown at submit time.
func (g *ResendGateway) SendEstimateSummary(ctx context.Context, q entities.QuoteSubmission) error {
	msg := resendMessage{
		From:    g.from,
		To:      []string{q.UserEmail},
		Subject: fmt.Sprintf("Your project estimate: $%.2f", q.EstimatePrice),
		HTML:    renderSummaryHTML(q),
	}

	if g.mockMode {
		log.Printf("[notify][resend] mock send to=%s subject=%q quote_id=%s", q.UserEmail, msg.Subject, q.ID)
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[notify][resend] send failed quote_id=%s err=%v", q.ID, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[notify][resend] send rejected quote_id=%s status=%d body=%s", q.ID, resp.StatusCode, detail)
		return fmt.Errorf("%w: status %d", ErrResendRejected, resp.StatusCode)
	}

	log.Printf("[notify][resend] send success quote_id=%s to=%s", q.ID, q.UserEmail)
	return nil
}

func renderSummaryHTML(q entities.QuoteSubmission) string {
	cfg := q.Configuration

	var b strings.Builder
	b.WriteString("<h2>Your Project Estimate</h2>")
	fmt.Fprintf(&b, "<p><strong>Estimated price:</strong> $%.2f</p>", q.EstimatePrice)
	fmt.Fprintf(&b, "<p><strong>Estimated delivery:</strong> %s</p>", q.DeliveryRange)
	b.WriteString("<ul>")
	fmt.Fprintf(&b, "<li>Service: %s</li>", cfg.Service)
	fmt.Fprintf(&b, "<li>Project: %s</li>", cfg.ProjectName)
	if cfg.Address != "" {
		fmt.Fprintf(&b, "<li>Address: %s</li>", cfg.Address)
	}
	fmt.Fprintf(&b, "<li>Total area: %d sq ft</li>", cfg.TotalAreaSqFt)
	fmt.Fprintf(&b, "<li>Space type: %s</li>", cfg.SpaceType)
	if len(cfg.Scopes) > 0 {
		scopes := make([]string, 0, len(cfg.Scopes))
		for _, s := range cfg.Scopes {
			scopes = append(scopes, string(s))
		}
		fmt.Fprintf(&b, "<li>Scopes: %s</li>", strings.Join(scopes, ", "))
	}
	fmt.Fprintf(&b, "<li>Revit version: %s</li>", cfg.RevitVersion)
	if cfg.ScanDate1 != "" {
		fmt.Fprintf(&b, "<li>Preferred scan date: %s</li>", cfg.ScanDate1)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p>Reference: %s</p>", q.ID)
	return b.String()
}

func isNotifierMockEnabled() bool {
	for _, key := range []string{"NOTIFIER_MOCK", "RESEND_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
