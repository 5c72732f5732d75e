// Package theme turns a resolved tenant config into everything the shell
// template needs: a font handle, generated theme CSS, and branding assets.
package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/edvin/panelgate/internal/model"
)

// DefaultFaviconPath is served when a tenant has neither favicon nor logo.
const DefaultFaviconPath = "/favicon.ico"

// RenderContext bundles the injected branding for one tenant page render.
type RenderContext struct {
	Font       Font
	ThemeCSS   string
	BrandName  string
	LogoURL    string
	FaviconURL string
}

// Injector builds render contexts from resolved tenant configs. Pure: no I/O.
type Injector struct {
	fonts FontMap
}

func NewInjector(fonts FontMap) *Injector {
	return &Injector{fonts: fonts}
}

// Build assembles the render context for a tenant. The favicon falls back to
// the logo, then to the static default; an empty brand name falls back to the
// default constant.
func (i *Injector) Build(cfg *model.TenantConfig) RenderContext {
	brand := cfg.BrandName
	if brand == "" {
		brand = model.DefaultBrandName
	}

	favicon := cfg.Favicon
	if favicon == "" {
		favicon = cfg.Logo
	}
	if favicon == "" {
		favicon = DefaultFaviconPath
	}

	return RenderContext{
		Font:       i.fonts.Resolve(cfg.Font),
		ThemeCSS:   GenerateCSS(cfg.ThemeColors),
		BrandName:  brand,
		LogoURL:    cfg.Logo,
		FaviconURL: favicon,
	}
}

// GenerateCSS emits custom properties for the theme palette: the literal hex
// values plus HSL triples for HSL-based design tokens.
func GenerateCSS(colors model.ThemeColors) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --color-primary: %s;\n", colors.Primary)
	fmt.Fprintf(&b, "  --color-secondary: %s;\n", colors.Secondary)
	fmt.Fprintf(&b, "  --color-accent: %s;\n", colors.Accent)
	fmt.Fprintf(&b, "  --primary: %s;\n", HexToHSL(colors.Primary))
	fmt.Fprintf(&b, "  --secondary: %s;\n", HexToHSL(colors.Secondary))
	fmt.Fprintf(&b, "  --accent: %s;\n", HexToHSL(colors.Accent))
	b.WriteString("}\n")
	return b.String()
}

// HexToHSL converts a #RRGGBB color to an "H S% L%" triple with hue in
// degrees [0,360) and saturation/lightness as integer percentages. Malformed
// input yields "0 0% 0%".
func HexToHSL(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "0 0% 0%"
	}

	rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return "0 0% 0%"
	}

	r := float64(rv) / 255
	g := float64(gv) / 255
	b := float64(bv) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	hue := int(math.Round(h * 360))
	if hue == 360 {
		hue = 0
	}

	return fmt.Sprintf("%d %d%% %d%%",
		hue,
		int(math.Round(s*100)),
		int(math.Round(l*100)),
	)
}
