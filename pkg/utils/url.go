package utils

import (
	"net/url"
	"strings"
)

// ValidateURL reports whether raw parses as an absolute URL with both a
// scheme and a host component.
func ValidateURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Slugify derives a category id from its display name: lower-cased with
// spaces replaced by hyphens.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
