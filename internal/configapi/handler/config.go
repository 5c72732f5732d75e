package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edvin/panelgate/internal/configapi/core"
	"github.com/edvin/panelgate/internal/configapi/response"
)

// Config serves the public tenant-config lookups consumed by the gateway.
type Config struct {
	svc *core.TenantService
}

func NewConfig(svc *core.TenantService) *Config {
	return &Config{svc: svc}
}

// GetBySubdomain handles GET /tenant/config/{subdomain}.
func (h *Config) GetBySubdomain(w http.ResponseWriter, r *http.Request) {
	subdomain := chi.URLParam(r, "subdomain")

	tenant, err := h.svc.GetBySubdomain(r.Context(), subdomain)
	if err != nil {
		h.notFound(w, r, err)
		return
	}

	response.WriteEnvelope(w, http.StatusOK, tenant.Config())
}

// GetByDomain handles GET /tenant/config/domain/{domain}.
func (h *Config) GetByDomain(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")

	tenant, err := h.svc.GetByDomain(r.Context(), domain)
	if err != nil {
		h.notFound(w, r, err)
		return
	}

	response.WriteEnvelope(w, http.StatusOK, tenant.Config())
}

// notFound answers with the failure envelope. Database failures surface the
// same body as a missing tenant so nothing internal leaks, but are logged at
// error level while a plain miss is not.
func (h *Config) notFound(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, core.ErrNotFound) {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("tenant config lookup failed")
	}
	response.WriteEnvelope(w, http.StatusNotFound, nil)
}
