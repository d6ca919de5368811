// File: pkg/describe/matcher.go
package describe

import (
	"path"
	"strings"
)

// Match tests a path against a set of exclusion glob patterns and returns
// the first pattern (in input order) that matches either the basename or
// the forward-slash relative path. The order only determines which pattern
// is reported as the reason; the excluded/included outcome is a set union.
//
// Patterns use path.Match syntax ('*', '?', character classes). A trailing
// slash, conventional for directory patterns, is stripped before matching.
// Malformed patterns never raise; they simply fail to match.
func Match(relPath, base string, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		p := strings.TrimSuffix(pattern, "/")
		if p == "" {
			continue
		}
		if ok, err := path.Match(p, base); err == nil && ok {
			return pattern, true
		}
		if ok, err := path.Match(p, relPath); err == nil && ok {
			return pattern, true
		}
	}
	return "", false
}
