package model

import (
	"regexp"
	"time"
)

// DefaultBrandName is shown when a tenant has not set a brand name.
const DefaultBrandName = "SMM Panel"

// Default theme palette, applied when the backend omits a color.
const (
	DefaultPrimaryColor   = "#3B82F6"
	DefaultSecondaryColor = "#64748B"
	DefaultAccentColor    = "#10B981"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ThemeColors is the three-color palette defining a tenant's visual identity.
type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// TenantConfig is the branding identity served to the gateway. Field names
// follow the public config API contract.
type TenantConfig struct {
	Subdomain    string      `json:"subdomain"`
	CustomDomain string      `json:"customDomain,omitempty"`
	BrandName    string      `json:"brandName"`
	Logo         string      `json:"logo,omitempty"`
	Favicon      string      `json:"favicon,omitempty"`
	Font         string      `json:"font"`
	ThemeColors  ThemeColors `json:"themeColors"`
}

// Normalize substitutes defaults for missing or malformed theme colors so a
// partially-valid payload never reaches rendering. Font validation happens in
// the theme injector, whose lookup is total.
func (c *TenantConfig) Normalize() {
	if !hexColorRe.MatchString(c.ThemeColors.Primary) {
		c.ThemeColors.Primary = DefaultPrimaryColor
	}
	if !hexColorRe.MatchString(c.ThemeColors.Secondary) {
		c.ThemeColors.Secondary = DefaultSecondaryColor
	}
	if !hexColorRe.MatchString(c.ThemeColors.Accent) {
		c.ThemeColors.Accent = DefaultAccentColor
	}
}

// Tenant is the stored tenant row managed by the config API.
type Tenant struct {
	ID             string    `json:"id" db:"id"`
	Subdomain      string    `json:"subdomain" db:"subdomain"`
	CustomDomain   *string   `json:"custom_domain,omitempty" db:"custom_domain"`
	BrandName      string    `json:"brand_name" db:"brand_name"`
	Logo           *string   `json:"logo,omitempty" db:"logo"`
	Favicon        *string   `json:"favicon,omitempty" db:"favicon"`
	Font           string    `json:"font" db:"font"`
	PrimaryColor   string    `json:"primary_color" db:"primary_color"`
	SecondaryColor string    `json:"secondary_color" db:"secondary_color"`
	AccentColor    string    `json:"accent_color" db:"accent_color"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Config projects the stored row into the public branding config.
func (t *Tenant) Config() *TenantConfig {
	cfg := &TenantConfig{
		Subdomain: t.Subdomain,
		BrandName: t.BrandName,
		Font:      t.Font,
		ThemeColors: ThemeColors{
			Primary:   t.PrimaryColor,
			Secondary: t.SecondaryColor,
			Accent:    t.AccentColor,
		},
	}
	if t.CustomDomain != nil {
		cfg.CustomDomain = *t.CustomDomain
	}
	if t.Logo != nil {
		cfg.Logo = *t.Logo
	}
	if t.Favicon != nil {
		cfg.Favicon = *t.Favicon
	}
	cfg.Normalize()
	return cfg
}
