// Package gateway is the front door of the panel platform: it classifies
// every inbound request by host header, rewrites tenant requests into the
// tenant namespace, resolves tenant branding, and renders the shell.
package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/edvin/panelgate/internal/config"
	mw "github.com/edvin/panelgate/internal/gateway/middleware"
	"github.com/edvin/panelgate/internal/gateway/render"
	"github.com/edvin/panelgate/internal/gateway/resolver"
	"github.com/edvin/panelgate/internal/gateway/theme"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	resolver *resolver.Client
	injector *theme.Injector
	renderer *render.Renderer
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, cfg *config.Config, res *resolver.Client, injector *theme.Injector, renderer *render.Renderer) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		resolver: res,
		injector: injector,
		renderer: renderer,
		cfg:      cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
	s.router.Use(mw.TenantRewriter(s.cfg.MainDomain))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// The rewriter routes every tenant-bound request under this namespace,
	// whatever its original path.
	s.router.HandleFunc(mw.TenantNamespace, s.handleTenant)
	s.router.HandleFunc(mw.TenantNamespace+"/*", s.handleTenant)

	s.router.Get("/", s.handleMain)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleMain(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.MainPage(w); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render main page")
	}
}

func (s *Server) handleTenant(w http.ResponseWriter, r *http.Request) {
	info := mw.GetTenant(r.Context())
	if info == nil {
		// Direct hit on the tenant namespace that bypassed the trusted
		// rewriter; never honor it.
		http.NotFound(w, r)
		return
	}

	tenantCfg, found := s.resolver.Resolve(r.Context(), info.Identifier, info.IsCustomDomain)
	if !found {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if err := s.renderer.NotFoundPage(w, info.Identifier, info.IsCustomDomain); err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("render fallback page")
		}
		return
	}

	rc := s.injector.Build(tenantCfg)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.TenantPage(w, rc); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render tenant page")
	}
}
