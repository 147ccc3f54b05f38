package probe

import (
	"net/url"
	"strings"
)

// DeriveVariantURL builds the health check url of a variant from the path of the
// service health check url and the variant base domain. The result is always https.
// It returns false when the service url can't be parsed or the base domain is empty.
func DeriveVariantURL(serviceURL string, baseDomain *string) (string, bool) {
	if baseDomain == nil {
		return "", false
	}
	domain := strings.TrimRight(strings.TrimSpace(*baseDomain), "/")
	if domain == "" {
		return "", false
	}
	u, err := url.Parse(serviceURL)
	if err != nil {
		return "", false
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return "https://" + domain + path, true
}
