// Package resolver fetches tenant branding config from the config service.
// Resolution failure is never an error for callers: every failure mode
// degrades to the not-found outcome so the rendering pipeline can fall back.
package resolver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/edvin/panelgate/internal/model"
)

var tenantResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tenant_resolutions_total",
		Help: "Total number of tenant config resolutions by outcome",
	},
	[]string{"outcome"},
)

// envelope is the config service response shape.
type envelope struct {
	Success bool                `json:"success"`
	Data    *model.TenantConfig `json:"data"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Resolve looks up the tenant config for the given identifier, keyed by
// subdomain or by custom domain. The second return value reports whether a
// config was found; it is false for an unprovisioned tenant, a malformed
// payload, or any transport failure. Transport failures are tagged
// differently in logs and metrics but are indistinguishable to callers.
//
// Every call hits the backend fresh: tenant branding changes must be visible
// on the next request, not after a cache window.
func (c *Client) Resolve(ctx context.Context, identifier string, isCustomDomain bool) (*model.TenantConfig, bool) {
	path := "/tenant/config/" + url.PathEscape(identifier)
	if isCustomDomain {
		path = "/tenant/config/domain/" + url.PathEscape(identifier)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.transportFailure(identifier, err)
		return nil, false
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.transportFailure(identifier, err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		tenantResolutionsTotal.WithLabelValues("transport_error").Inc()
		c.logger.Warn().
			Str("identifier", identifier).
			Int("status", resp.StatusCode).
			Str("cause", "upstream_status").
			Msg("tenant config fetch failed")
		return nil, false
	}

	var env envelope
	if resp.StatusCode != http.StatusOK || json.NewDecoder(resp.Body).Decode(&env) != nil || !env.Success || env.Data == nil {
		tenantResolutionsTotal.WithLabelValues("not_found").Inc()
		c.logger.Debug().
			Str("identifier", identifier).
			Bool("custom_domain", isCustomDomain).
			Msg("tenant config not found")
		return nil, false
	}

	env.Data.Normalize()
	tenantResolutionsTotal.WithLabelValues("found").Inc()
	return env.Data, true
}

func (c *Client) transportFailure(identifier string, err error) {
	tenantResolutionsTotal.WithLabelValues("transport_error").Inc()
	c.logger.Warn().
		Err(err).
		Str("identifier", identifier).
		Str("cause", "transport").
		Msg("tenant config fetch failed")
}
