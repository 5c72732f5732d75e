// Package tenanthost classifies inbound host headers against the configured
// main domain: primary application, subdomain tenant, or custom-domain tenant.
package tenanthost

import "strings"

type Kind string

const (
	KindMain         Kind = "main"
	KindSubdomain    Kind = "subdomain"
	KindCustomDomain Kind = "custom-domain"
)

// Classification is the per-request result of host-header classification.
// Identifier is the subdomain label(s) for KindSubdomain, the full host
// header for KindCustomDomain, and empty for KindMain.
type Classification struct {
	Kind       Kind
	Identifier string
}

// Reserved identifiers always route to the main app so operational
// subdomains can never be captured as tenants. The match is against the
// whole extracted identifier, not its leftmost label: "www" is reserved,
// "www.tenant1" is a legitimate multi-label tenant identifier.
var reservedIdentifiers = map[string]bool{
	"":      true,
	"www":   true,
	"admin": true,
	"api":   true,
}

// Classify inspects a request host header against the main domain. It is a
// pure total function: any input, however malformed, yields one of the three
// kinds, degrading to KindMain with an empty identifier as the safe default.
func Classify(hostHeader, mainDomain string) Classification {
	rawHost := strings.TrimSpace(hostHeader)
	host := stripPort(strings.ToLower(rawHost))
	mainHost := stripPort(strings.ToLower(strings.TrimSpace(mainDomain)))

	if host == "" || mainHost == "" {
		return Classification{Kind: KindMain}
	}

	// A host that is not the main domain and not under it is a custom
	// domain, unless it is a loopback/development host.
	foreign := host != mainHost && !strings.HasSuffix(host, "."+mainHost)
	if foreign {
		if !isDevHost(host) {
			return Classification{Kind: KindCustomDomain, Identifier: rawHost}
		}
		// foo.localhost resolves locally without DNS, so treat it as a
		// tenant subdomain during development. Bare loopback degrades
		// to the main app.
		if rest, ok := strings.CutSuffix(host, ".localhost"); ok {
			if reservedIdentifiers[rest] {
				return Classification{Kind: KindMain}
			}
			return Classification{Kind: KindSubdomain, Identifier: rest}
		}
		return Classification{Kind: KindMain}
	}

	sub := subdomain(host, mainHost)
	if reservedIdentifiers[sub] {
		return Classification{Kind: KindMain}
	}

	return Classification{Kind: KindSubdomain, Identifier: sub}
}

// subdomain extracts the leading excess label segments of host relative to
// mainHost. Both arguments are lowercased and port-free.
func subdomain(host, mainHost string) string {
	if host == mainHost {
		return ""
	}

	// Covers subdomains of a localhost main domain, e.g. foo.localhost
	// against localhost:3000.
	if rest, ok := strings.CutSuffix(host, ".localhost"); ok {
		return rest
	}

	parts := strings.Split(host, ".")
	mainParts := strings.Split(mainHost, ".")
	if len(parts) <= len(mainParts) {
		return ""
	}

	// a.b.example.com against example.com yields "a.b".
	return strings.Join(parts[:len(parts)-len(mainParts)], ".")
}

func isDevHost(host string) bool {
	return host == "localhost" ||
		strings.HasSuffix(host, ".localhost") ||
		host == "127.0.0.1" ||
		host == "::1"
}

func stripPort(host string) string {
	// Bracketed IPv6 literal, e.g. [::1]:3000.
	if strings.HasPrefix(host, "[") {
		if i := strings.Index(host, "]"); i != -1 {
			return host[1:i]
		}
		return host
	}
	// Unbracketed IPv6 literals contain multiple colons and carry no port.
	if i := strings.LastIndex(host, ":"); i != -1 && !strings.Contains(host[:i], ":") {
		return host[:i]
	}
	return host
}
