// Package measurements fetches stored customer measurements from the
// measurement service.
package measurements

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var ErrBaseURLIsRequired = errors.New("measurements base URL is required")

const requestTimeout = 5 * time.Second

// Client reads customer measurement profiles from the measurement service.
type Client struct {
	http *resty.Client
}

// NewClient creates a measurement service client for the given endpoint.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}

	return &Client{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(requestTimeout),
	}, nil
}

type measurementsResponse struct {
	Measurements map[string]float64 `json:"measurements"`
}

// Get returns the customer's measurements as named values.
func (c *Client) Get(ctx context.Context, customerID kernel.UUID) (map[string]float64, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var result measurementsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("customerId", customerID.String()).
		SetResult(&result).
		Get("/api/v1/customers/{customerId}/measurements")
	if err != nil {
		return nil, errs.NewExternalUnavailableError("measurement service", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("customerID", customerID.String())
	}
	if resp.IsError() {
		return nil, errs.NewExternalUnavailableError("measurement service",
			errors.New(resp.Status()))
	}

	return result.Measurements, nil
}
