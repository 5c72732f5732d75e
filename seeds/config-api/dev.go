package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type devTenant struct {
	subdomain      string
	customDomain   *string
	brandName      string
	font           string
	primaryColor   string
	secondaryColor string
	accentColor    string
	status         string
}

func strPtr(s string) *string { return &s }

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	fmt.Println("Seeding config API database...")

	tenants := []devTenant{
		{
			subdomain:      "acme",
			brandName:      "Acme Panel",
			font:           "Poppins",
			primaryColor:   "#8B5CF6",
			secondaryColor: "#64748B",
			accentColor:    "#EC4899",
			status:         "active",
		},
		{
			subdomain:      "super",
			customDomain:   strPtr("superpanel.test"),
			brandName:      "Super Panel",
			font:           "Inter",
			primaryColor:   "#3B82F6",
			secondaryColor: "#64748B",
			accentColor:    "#10B981",
			status:         "active",
		},
		{
			subdomain:      "frozen",
			brandName:      "Frozen Panel",
			font:           "Roboto",
			primaryColor:   "#3B82F6",
			secondaryColor: "#64748B",
			accentColor:    "#10B981",
			status:         "suspended",
		},
	}

	for _, t := range tenants {
		fmt.Printf("  Inserting tenant %s...\n", t.subdomain)
		_, err = pool.Exec(ctx,
			`INSERT INTO tenants (id, subdomain, custom_domain, brand_name, font, primary_color, secondary_color, accent_color, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (subdomain) DO UPDATE SET
			   custom_domain = EXCLUDED.custom_domain,
			   brand_name = EXCLUDED.brand_name,
			   font = EXCLUDED.font,
			   primary_color = EXCLUDED.primary_color,
			   secondary_color = EXCLUDED.secondary_color,
			   accent_color = EXCLUDED.accent_color,
			   status = EXCLUDED.status,
			   updated_at = now()`,
			uuid.NewString(), t.subdomain, t.customDomain, t.brandName, t.font,
			t.primaryColor, t.secondaryColor, t.accentColor, t.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert tenant %s: %v\n", t.subdomain, err)
			os.Exit(1)
		}
	}

	fmt.Println("  Inserting dev API key...")
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		fmt.Fprintf(os.Stderr, "generate key: %v\n", err)
		os.Exit(1)
	}
	apiKey := base64.RawURLEncoding.EncodeToString(raw)
	hash := sha256.Sum256([]byte(apiKey))

	_, err = pool.Exec(ctx,
		`INSERT INTO api_keys (id, name, key_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (key_hash) DO NOTHING`,
		uuid.NewString(), "dev", hex.EncodeToString(hash[:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "insert api key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
	fmt.Printf("Dev API key (set X-API-Key): %s\n", apiKey)
}
