package middleware

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/edvin/panelgate/internal/tenanthost"
)

type contextKey string

const tenantKey contextKey = "tenant"

// Trusted classification signal headers. Set only by the rewriter; inbound
// copies are always stripped so clients cannot forge a tenant identity.
const (
	HeaderTenantSubdomain = "X-Tenant-Subdomain"
	HeaderTenantDomain    = "X-Tenant-Domain"
	HeaderIsCustomDomain  = "X-Is-Custom-Domain"
)

// TenantNamespace prefixes the logical path of every tenant-bound request.
const TenantNamespace = "/tenant"

var tenantRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tenant_requests_total",
		Help: "Total number of requests by host classification kind",
	},
	[]string{"kind"},
)

// TenantInfo carries the classification signals from the rewrite point to
// the render step. Read-only after creation.
type TenantInfo struct {
	Identifier     string
	IsCustomDomain bool
}

// TenantRewriter classifies each request's host header against mainDomain.
// Main-app requests pass through untouched; tenant requests have their path
// rewritten into the tenant namespace with the classification attached to
// the request context and the trusted signal headers.
func TenantRewriter(mainDomain string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Del(HeaderTenantSubdomain)
			r.Header.Del(HeaderTenantDomain)
			r.Header.Del(HeaderIsCustomDomain)

			c := tenanthost.Classify(r.Host, mainDomain)
			tenantRequestsTotal.WithLabelValues(string(c.Kind)).Inc()

			if c.Kind == tenanthost.KindMain {
				next.ServeHTTP(w, r)
				return
			}

			info := &TenantInfo{
				Identifier:     c.Identifier,
				IsCustomDomain: c.Kind == tenanthost.KindCustomDomain,
			}

			r2 := r.Clone(context.WithValue(r.Context(), tenantKey, info))
			r2.URL.Path = TenantNamespace + r.URL.Path
			r2.URL.RawPath = ""

			if info.IsCustomDomain {
				r2.Header.Set(HeaderTenantDomain, info.Identifier)
				r2.Header.Set(HeaderIsCustomDomain, "true")
			} else {
				r2.Header.Set(HeaderTenantSubdomain, info.Identifier)
				r2.Header.Set(HeaderIsCustomDomain, "false")
			}

			next.ServeHTTP(w, r2)
		})
	}
}

// GetTenant extracts the classification set by TenantRewriter, or nil when
// the request was not rewritten (main app, or a direct hit on the tenant
// namespace that bypassed the trusted layer).
func GetTenant(ctx context.Context) *TenantInfo {
	info, _ := ctx.Value(tenantKey).(*TenantInfo)
	return info
}
