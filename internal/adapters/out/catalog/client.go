// Package catalog resolves shop fabrics against the fabric catalog service.
package catalog

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

var ErrBaseURLIsRequired = errors.New("catalog base URL is required")

const requestTimeout = 5 * time.Second

// Client reads fabric price cards from the catalog service.
type Client struct {
	http *resty.Client
}

// NewClient creates a catalog client for the given endpoint.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, ErrBaseURLIsRequired
	}

	return &Client{
		http: resty.New().SetBaseURL(baseURL).SetTimeout(requestTimeout),
	}, nil
}

type fabricResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
}

// Get resolves a fabric id to its current price card.
func (c *Client) Get(ctx context.Context, fabricID kernel.UUID) (ports.CatalogFabric, error) {
	if err := fabricID.Validate(); err != nil {
		return ports.CatalogFabric{}, err
	}

	var result fabricResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("fabricId", fabricID.String()).
		SetResult(&result).
		Get("/api/v1/fabrics/{fabricId}")
	if err != nil {
		return ports.CatalogFabric{}, errs.NewExternalUnavailableError("fabric catalog", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return ports.CatalogFabric{}, errs.NewObjectNotFoundError("fabricID", fabricID.String())
	}
	if resp.IsError() {
		return ports.CatalogFabric{}, errs.NewExternalUnavailableError("fabric catalog",
			errors.New(resp.Status()))
	}

	id, err := kernel.UUIDFromString(result.ID)
	if err != nil {
		return ports.CatalogFabric{}, err
	}

	unitPrice, err := kernel.NewMoney(result.UnitPrice)
	if err != nil {
		return ports.CatalogFabric{}, err
	}

	return ports.CatalogFabric{
		ID:        id,
		Name:      result.Name,
		UnitPrice: unitPrice,
	}, nil
}
