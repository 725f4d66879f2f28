package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

// PushNotifier POSTs a generic notification payload to an external push
// service, authenticated with a static API key. One attempt, no retry.
type PushNotifier struct {
	client *http.Client
	url    string
	apiKey string
	topic  string
}

func NewPushNotifier(url, apiKey, topic string) *PushNotifier {
	return &PushNotifier{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    url,
		apiKey: apiKey,
		topic:  topic,
	}
}

func (p *PushNotifier) Name() string { return "push" }

type pushPayload struct {
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (p *PushNotifier) EnquiryReceived(ctx context.Context, e *models.Enquiry, product ProductView) error {
	return p.post(ctx, pushPayload{
		Topic:   p.topic,
		Title:   "New enquiry",
		Message: fmt.Sprintf("%s enquired about %s", e.Name, product.Title),
	})
}

func (p *PushNotifier) ApplicationReceived(ctx context.Context, a *models.Application) error {
	return p.post(ctx, pushPayload{
		Topic:   p.topic,
		Title:   "New job application",
		Message: fmt.Sprintf("%s applied for %s", a.Name, a.Role),
	})
}

func (p *PushNotifier) post(ctx context.Context, payload pushPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("push service returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
