package discovery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/opsdeck/opsdeck/internal/model"
)

var apiPathPattern = regexp.MustCompile(`/api/[^\s?#]*`)

// DetectAdminPrefix derives the path prefix under which all managed
// endpoints live from the product's base address. It never fails: when
// structured parsing yields no path and no /api/ path can be spotted, the
// prefix is empty and FilterPaths admits nothing.
func DetectAdminPrefix(baseAddress string) string {
	// Scheme-less host-prefixed forms like "billing.example.com/api/v1/admin"
	// parse with the host folded into the path; leave those to the pattern
	// fallback.
	if u, err := url.Parse(baseAddress); err == nil && u.Path != "" &&
		(u.Scheme != "" || strings.HasPrefix(u.Path, "/")) {
		return normalizePrefix(u.Path)
	}
	if m := apiPathPattern.FindString(baseAddress); m != "" {
		return normalizePrefix(m)
	}
	return ""
}

func normalizePrefix(p string) string {
	p = strings.TrimRight(p, "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// FilterPaths keeps only the paths under the admin prefix and strips the
// prefix from each; the prefix itself becomes "/". Paths outside the
// prefix are dropped silently, and an empty prefix admits nothing.
func FilterPaths(paths map[string]model.PathItem, prefix string) map[string]model.PathItem {
	admitted := make(map[string]model.PathItem)
	if prefix == "" {
		return admitted
	}
	for p, item := range paths {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		stripped := strings.TrimPrefix(p, prefix)
		if stripped == "" {
			stripped = "/"
		}
		// "/api/v1/administrators" is not under "/api/v1/admin".
		if !strings.HasPrefix(stripped, "/") {
			continue
		}
		admitted[stripped] = item
	}
	return admitted
}
