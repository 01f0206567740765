// Package razorpay integrates with the Razorpay-compatible payment gateway:
// it opens hosted checkout sessions for bills and verifies the HMAC
// signature the gateway attaches to payment callbacks.
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

var (
	ErrBaseURLIsRequired   = errors.New("gateway base URL is required")
	ErrKeySecretIsRequired = errors.New("gateway key secret is required")
)

const (
	createOrderPath = "/v1/orders"
	requestTimeout  = 10 * time.Second
)

// Client talks to the payment gateway over its REST API.
type Client struct {
	http      *resty.Client
	keySecret string
}

// NewClient creates a gateway client for the given endpoint and credentials.
// keyID and keySecret are the API key pair; keySecret also signs callback
// verification.
func NewClient(baseURL, keyID, keySecret string) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}
	if keySecret == "" {
		return nil, ErrKeySecretIsRequired
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(requestTimeout)

	return &Client{http: http, keySecret: keySecret}, nil
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	ShortURL string `json:"short_url"`
}

// CreateSession opens a checkout session at the gateway for a bill.
// The bill id travels as the receipt so gateway records can be matched back.
func (c *Client) CreateSession(ctx context.Context, billID kernel.UUID, amount kernel.Money) (ports.PaymentSession, error) {
	if err := billID.Validate(); err != nil {
		return ports.PaymentSession{}, err
	}

	var result createOrderResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createOrderRequest{
			Amount:   amount.Amount(),
			Currency: "INR",
			Receipt:  billID.String(),
		}).
		SetResult(&result).
		Post(createOrderPath)
	if err != nil {
		return ports.PaymentSession{}, errs.NewExternalUnavailableError("payment gateway", err)
	}

	if resp.IsError() {
		return ports.PaymentSession{}, errs.NewExternalUnavailableError("payment gateway",
			errors.New(resp.Status()))
	}

	return ports.PaymentSession{
		ExternalOrderID: result.ID,
		CheckoutURL:     result.ShortURL,
	}, nil
}

// Verify checks the callback signature: HMAC-SHA256 over
// "<externalOrderID>|<externalPaymentID>" keyed with the API secret,
// hex encoded. Comparison is constant time.
func (c *Client) Verify(callback ports.GatewayCallback) error {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(callback.ExternalOrderID + "|" + callback.ExternalPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(callback.Signature)) {
		return errs.NewSecurityError("payment verification", "callback signature mismatch")
	}

	return nil
}
