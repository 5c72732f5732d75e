package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/panelgate/internal/model"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, 2*time.Second, zerolog.Nop())
}

func TestResolve_Subdomain(t *testing.T) {
	var gotPath, gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"subdomain":"acme","brandName":"Acme Panel","font":"Poppins","themeColors":{"primary":"#8B5CF6","secondary":"#64748B","accent":"#EC4899"}}}`))
	}))
	defer srv.Close()

	cfg, found := newTestClient(srv.URL).Resolve(context.Background(), "acme", false)
	require.True(t, found)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tenant/config/acme", gotPath)
	assert.Equal(t, "no-store", gotCacheControl)
	assert.Equal(t, "Acme Panel", cfg.BrandName)
	assert.Equal(t, "Poppins", cfg.Font)
	assert.Equal(t, "#8B5CF6", cfg.ThemeColors.Primary)
}

func TestResolve_CustomDomain(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"data":{"subdomain":"","customDomain":"acmepanel.com","brandName":"Acme","font":"Inter","themeColors":{"primary":"#3B82F6","secondary":"#64748B","accent":"#10B981"}}}`))
	}))
	defer srv.Close()

	cfg, found := newTestClient(srv.URL).Resolve(context.Background(), "acmepanel.com", true)
	require.True(t, found)
	assert.Equal(t, "/tenant/config/domain/acmepanel.com", gotPath)
	assert.Equal(t, "acmepanel.com", cfg.CustomDomain)
}

func TestResolve_NormalizesMissingColors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"subdomain":"acme","brandName":"Acme","font":"Inter","themeColors":{"primary":"#8B5CF6"}}}`))
	}))
	defer srv.Close()

	cfg, found := newTestClient(srv.URL).Resolve(context.Background(), "acme", false)
	require.True(t, found)
	assert.Equal(t, "#8B5CF6", cfg.ThemeColors.Primary)
	assert.Equal(t, model.DefaultSecondaryColor, cfg.ThemeColors.Secondary)
	assert.Equal(t, model.DefaultAccentColor, cfg.ThemeColors.Accent)
}

func TestResolve_NotFoundOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "success false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":false}`))
			},
		},
		{
			name: "null data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":true,"data":null}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			cfg, found := newTestClient(srv.URL).Resolve(context.Background(), "ghost", false)
			assert.False(t, found)
			assert.Nil(t, cfg)
		})
	}
}

func TestResolve_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	cfg, found := newTestClient(srv.URL).Resolve(context.Background(), "acme", false)
	assert.False(t, found)
	assert.Nil(t, cfg)
}

func TestResolve_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	cfg, found := newTestClient(srv.URL).Resolve(ctx, "acme", false)
	assert.False(t, found)
	assert.Nil(t, cfg)
}
