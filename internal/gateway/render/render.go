// Package render produces the HTML shells the gateway serves: the branded
// tenant landing page, the panel-not-found fallback, and the main-app
// landing page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/edvin/panelgate/internal/gateway/theme"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type tenantPageData struct {
	theme.RenderContext
	// ThemeStyle and FontFamily are marked safe for the style element.
	// Both originate from this trusted layer, never from client input.
	ThemeStyle template.CSS
	FontFamily template.CSS
}

// TenantPage renders the branded tenant shell.
func (r *Renderer) TenantPage(w io.Writer, rc theme.RenderContext) error {
	data := tenantPageData{
		RenderContext: rc,
		ThemeStyle:    template.CSS(rc.ThemeCSS),
		FontFamily:    template.CSS(rc.Font.Family),
	}
	if err := r.tmpl.ExecuteTemplate(w, "tenant.html.tmpl", data); err != nil {
		return fmt.Errorf("render tenant page: %w", err)
	}
	return nil
}

type notFoundData struct {
	Identifier     string
	IsCustomDomain bool
}

// NotFoundPage renders the fallback shown when tenant resolution fails. It
// names the attempted identifier and nothing about the failure internals.
func (r *Renderer) NotFoundPage(w io.Writer, identifier string, isCustomDomain bool) error {
	data := notFoundData{Identifier: identifier, IsCustomDomain: isCustomDomain}
	if err := r.tmpl.ExecuteTemplate(w, "notfound.html.tmpl", data); err != nil {
		return fmt.Errorf("render not-found page: %w", err)
	}
	return nil
}

// MainPage renders the primary application landing page.
func (r *Renderer) MainPage(w io.Writer) error {
	if err := r.tmpl.ExecuteTemplate(w, "main.html.tmpl", nil); err != nil {
		return fmt.Errorf("render main page: %w", err)
	}
	return nil
}
