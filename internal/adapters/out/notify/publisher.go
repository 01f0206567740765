// Package notify delivers customer notifications to the configured webhook.
// Delivery is best effort; callers log failures and never roll back
// committed state because of them.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"

	"atelier/internal/core/ports"
)

var ErrWebhookURLIsRequired = errors.New("notification webhook URL is required")

const requestTimeout = 5 * time.Second

// WebhookPublisher posts notifications as JSON to a webhook endpoint.
type WebhookPublisher struct {
	http       *resty.Client
	webhookURL string
}

// NewWebhookPublisher creates a publisher for the given webhook endpoint.
func NewWebhookPublisher(webhookURL string) (*WebhookPublisher, error) {
	if webhookURL == "" {
		return nil, ErrWebhookURLIsRequired
	}

	return &WebhookPublisher{
		http:       resty.New().SetTimeout(requestTimeout),
		webhookURL: webhookURL,
	}, nil
}

type notificationPayload struct {
	Kind    string `json:"kind"`
	OrderID string `json:"order_id"`
	BillID  string `json:"bill_id,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Publish posts the notification to the webhook. Non-2xx answers are errors.
func (p *WebhookPublisher) Publish(ctx context.Context, notification ports.Notification) error {
	payload := notificationPayload{
		Kind:    string(notification.Kind),
		OrderID: notification.OrderID.String(),
		Detail:  notification.Detail,
	}
	if notification.BillID.Validate() == nil {
		payload.BillID = notification.BillID.String()
	}

	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(p.webhookURL)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return errors.New(resp.Status())
	}

	return nil
}
