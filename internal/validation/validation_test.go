package validation

import (
	"net"
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		valid   bool
		wantMsg string
	}{
		{"plain text", "I need a permit", true, ""},
		{"whitespace only", "   ", true, ""},
		{"empty", "", false, "No query provided"},
		{"at limit", strings.Repeat("a", MaxTextLength), true, ""},
		{"over limit", strings.Repeat("a", MaxTextLength+1), false, "query exceeds maximum length"},
		{"multibyte at limit", strings.Repeat("é", MaxTextLength), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateText(tt.text, "query")
			if valid != tt.valid {
				t.Errorf("ValidateText() valid = %v, want %v", valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateText() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    bool
	}{
		{"single word", "permit", true},
		{"phrase", "social media", true},
		{"hyphenated", "women-owned", true},
		{"uppercase", "Permit", false},
		{"empty", "", false},
		{"blank", "  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateKeyword(tt.keyword); got != tt.want {
				t.Errorf("ValidateKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero uses default", 0, 20},
		{"negative uses default", -5, 20},
		{"within range", 7, 7},
		{"at max", 500, 500},
		{"over max", 501, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampCount(tt.n, 20, 500); got != tt.want {
				t.Errorf("ClampCount(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://business.miamidade.gov/permits", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"ftp scheme", "ftp://example.com", false, "URL must use http:// or https:// scheme"},
		{"missing host", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"192.168.0.10", true},
		{"169.254.169.254", true},
		{"168.63.129.16", true},
		{"0.0.0.0", true},
		{"::1", true},
		{"8.8.8.8", false},
		{"1.1.1.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := IsPrivateIP(net.ParseIP(tt.ip)); got != tt.want {
				t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}

	if IsPrivateIP(nil) {
		t.Error("IsPrivateIP(nil) = true, want false")
	}
}

func TestValidateURLForLinkCheck_Loopback(t *testing.T) {
	valid, msg := ValidateURLForLinkCheck("http://127.0.0.1:8080/health")
	if valid {
		t.Fatal("ValidateURLForLinkCheck() accepted a loopback address")
	}
	if msg != "URL points to a private or reserved IP address" {
		t.Errorf("ValidateURLForLinkCheck() msg = %q", msg)
	}
}
