package app

import (
	"net/url"
	"strings"
)

// originAllowed reports whether a request origin matches one of the
// configured ALLOWED_ORIGINS patterns. Deployments list the public frontend
// and the dashboard, so a pattern may be a full origin URL, a bare
// "host[:port]", or "*.domain" to admit every subdomain.
func originAllowed(patterns []string, origin string) bool {
	host := originHost(origin)
	if host == "" {
		return false
	}
	for _, pattern := range patterns {
		p := originHost(pattern)
		if p == "" {
			continue
		}
		if strings.EqualFold(p, host) {
			return true
		}
		if strings.HasPrefix(p, "*.") && strings.HasSuffix(strings.ToLower(host), strings.ToLower(p[1:])) {
			return true
		}
	}
	return false
}

// originHost reduces an origin or pattern to its "host[:port]" form.
func originHost(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return ""
	}
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		return u.Host
	}
	return origin
}
