// Package pathutil normalizes request paths into low-cardinality route labels
// for metrics and span names.
package pathutil

import (
	"regexp"
	"strings"
)

// Unmatched labels every path that is not a served route.
const Unmatched = "unmatched"

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// staticRoutes are served as-is and label themselves.
var staticRoutes = map[string]struct{}{
	"/":                  {},
	"/articles":          {},
	"/articles/search":   {},
	"/articles/generate": {},
	"/health":            {},
	"/health/drafter":    {},
	"/ready":             {},
	"/live":              {},
	"/metrics":           {},
}

// pathPatterns is evaluated in order; the first match wins. Non-numeric ids
// still hit the {id} route (and get a 400), so they share its label.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/[^/]+$`), Template: "/articles/:id"},
}

// NormalizePath converts a request path to the route template that serves it.
// Article IDs collapse to /articles/:id, static routes pass through, and
// anything else becomes Unmatched, so arbitrary 404 paths cannot inflate
// label cardinality.
//
//	NormalizePath("/articles/123")        // "/articles/:id"
//	NormalizePath("/articles/123/?x=1")   // "/articles/:id"
//	NormalizePath("/articles/search")     // "/articles/search"
//	NormalizePath("/wp-login.php")        // "unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticRoutes[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return Unmatched
}
