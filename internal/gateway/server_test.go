package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/panelgate/internal/config"
	"github.com/edvin/panelgate/internal/gateway/render"
	"github.com/edvin/panelgate/internal/gateway/resolver"
	"github.com/edvin/panelgate/internal/gateway/theme"
)

// newTestServer wires a gateway against a fake config service and returns
// both, plus a counter of backend lookups.
func newTestServer(t *testing.T, backendHandler http.HandlerFunc) (*Server, *int) {
	t.Helper()

	lookups := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lookups++
		backendHandler(w, r)
	}))
	t.Cleanup(backend.Close)

	renderer, err := render.New()
	require.NoError(t, err)

	cfg := &config.Config{MainDomain: "example.com", ConfigAPIURL: backend.URL}
	srv := NewServer(
		zerolog.Nop(),
		cfg,
		resolver.NewClient(backend.URL, 2*time.Second, zerolog.Nop()),
		theme.NewInjector(theme.DefaultFonts()),
		renderer,
	)
	return srv, &lookups
}

const acmeConfigJSON = `{"success":true,"data":{"subdomain":"acme","brandName":"Acme Panel","font":"Poppins","themeColors":{"primary":"#8B5CF6","secondary":"#64748B","accent":"#EC4899"}}}`

func TestGateway_SubdomainTenant(t *testing.T) {
	srv, lookups := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenant/config/acme", r.URL.Path)
		w.Write([]byte(acmeConfigJSON))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "acme.example.com"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *lookups)

	html := rec.Body.String()
	assert.Contains(t, html, "<title>Acme Panel</title>")
	assert.Contains(t, html, "family=Poppins")
	assert.Contains(t, html, "--color-primary: #8B5CF6;")
	assert.Contains(t, html, "--primary: 258 90% 66%;")
	assert.Contains(t, html, "--secondary: 215 16% 47%;")
	assert.Contains(t, html, "--accent: 330 81% 60%;")
}

func TestGateway_MainDomain_NoFetchNoRewrite(t *testing.T) {
	srv, lookups := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(acmeConfigJSON))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "example.com"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, *lookups)
	assert.Contains(t, rec.Body.String(), "Launch your own SMM panel")
}

func TestGateway_UnknownTenant_Fallback(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "ghost.example.com"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	html := rec.Body.String()
	assert.Contains(t, html, "Panel Not Found")
	assert.Contains(t, html, "Subdomain: ghost")
	assert.NotContains(t, html, "--color-primary")
}

func TestGateway_CustomDomainTenant(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tenant/config/domain/acmepanel.com", r.URL.Path)
		w.Write([]byte(acmeConfigJSON))
	})

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	req.Host = "acmepanel.com"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Panel")
}

func TestGateway_BackendDown_Fallback(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	renderer, err := render.New()
	require.NoError(t, err)

	cfg := &config.Config{MainDomain: "example.com", ConfigAPIURL: backend.URL}
	srv := NewServer(
		zerolog.Nop(),
		cfg,
		resolver.NewClient(backend.URL, time.Second, zerolog.Nop()),
		theme.NewInjector(theme.DefaultFonts()),
		renderer,
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "acme.example.com"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Panel Not Found")
}

// A client hitting /tenant/... on the main domain directly must not reach
// the tenant renderer: the classification signals only come from the
// trusted rewriter.
func TestGateway_DirectTenantPathIsNotHonored(t *testing.T) {
	srv, lookups := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(acmeConfigJSON))
	})

	req := httptest.NewRequest(http.MethodGet, "/tenant/", nil)
	req.Host = "example.com"
	req.Header.Set("X-Tenant-Subdomain", "acme")
	req.Header.Set("X-Is-Custom-Domain", "false")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, *lookups)
	assert.NotContains(t, rec.Body.String(), "Acme Panel")
}

func TestGateway_ReservedSubdomainServesMainApp(t *testing.T) {
	srv, lookups := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(acmeConfigJSON))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "www.example.com"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, *lookups)
	assert.Contains(t, rec.Body.String(), "Launch your own SMM panel")
}

func TestGateway_Healthz(t *testing.T) {
	srv, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Host = "example.com"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
