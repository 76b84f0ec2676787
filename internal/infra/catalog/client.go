// Package catalog talks to the external catalog backend. Responses are
// decoded through the booking item validator so duck-typed shapes never
// leak past this boundary.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Search queries the backend catalog for items of one trip type.
func (c *Client) Search(ctx context.Context, tripType booking.TripType, query string) ([]booking.Item, error) {
	if !tripType.IsValid() {
		return nil, booking.ErrUnknownTripType
	}

	u := fmt.Sprintf("%s/api/%ss?%s", c.baseURL, tripType, url.Values{"q": {query}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errs.Wrap(err, "build catalog request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("catalog returned status %d", resp.StatusCode))
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errs.Wrap(err, "decode catalog response")
	}

	items := make([]booking.Item, 0, len(raw))
	for _, payload := range raw {
		item, err := booking.DecodeItem(tripType, payload)
		if err != nil {
			// One malformed entry should not empty the whole result page.
			c.logger.Warn("skipping invalid catalog item", "trip_type", tripType, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
