package validation

import (
	"net"
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxTextLength bounds the size of analyzed text and queries, in runes.
const MaxTextLength = 5000

// ValidateText checks a request text field. Whitespace-only text is accepted;
// only missing text is rejected.
func ValidateText(text, field string) (bool, string) {
	if text == "" {
		return false, "No " + field + " provided"
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return false, field + " exceeds maximum length"
	}
	return true, ""
}

// ValidateKeyword checks that a trigger keyword is non-empty and already lowercase.
func ValidateKeyword(keyword string) bool {
	if strings.TrimSpace(keyword) == "" {
		return false
	}
	return strings.ToLower(keyword) == keyword
}

// ClampCount bounds a requested item count, substituting def for non-positive values.
func ClampCount(n, def, max int) int {
	if n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

// ValidateURL checks if a URL is valid and uses http or https.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// metadataIPs are cloud instance metadata endpoints (AWS/GCP, Azure).
var metadataIPs = []net.IP{
	net.ParseIP("169.254.169.254"),
	net.ParseIP("168.63.129.16"),
}

// IsPrivateIP checks if an IP address is loopback, link-local, private,
// unspecified or a cloud metadata address.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() || ip.IsUnspecified() {
		return true
	}
	for _, m := range metadataIPs {
		if ip.Equal(m) {
			return true
		}
	}
	return false
}

// IsPrivateHost resolves host and reports whether any address is private.
// Unresolvable hosts are treated as private.
func IsPrivateHost(host string) (bool, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		return true, err
	}
	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return true, nil
		}
	}
	return false, nil
}

// ValidateURLForLinkCheck validates that a catalog URL is safe to probe.
func ValidateURLForLinkCheck(urlStr string) (bool, string) {
	if valid, msg := ValidateURL(urlStr); !valid {
		return false, msg
	}

	u, _ := url.Parse(urlStr)
	isPrivate, err := IsPrivateHost(u.Host)
	if err != nil {
		return false, "Cannot resolve hostname"
	}
	if isPrivate {
		return false, "URL points to a private or reserved IP address"
	}
	return true, ""
}
