package analytics

import "testing"

func TestClassifyUserAgent(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		browser string
		os      string
		device  string
	}{
		{
			name:    "chrome on linux",
			ua:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			browser: "Chrome", os: "Linux", device: "Desktop",
		},
		{
			name:    "safari on iphone",
			ua:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			browser: "Safari", os: "iOS", device: "Mobile",
		},
		{
			name:    "firefox on windows",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
			browser: "Firefox", os: "Windows", device: "Desktop",
		},
		{
			name:    "edge on windows",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
			browser: "Edge", os: "Windows", device: "Desktop",
		},
		{
			name:    "empty",
			ua:      "",
			browser: "Other", os: "Other", device: "Desktop",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			browser, os, device := ClassifyUserAgent(tt.ua)
			if browser != tt.browser {
				t.Errorf("browser = %q, want %q", browser, tt.browser)
			}
			if os != tt.os {
				t.Errorf("os = %q, want %q", os, tt.os)
			}
			if device != tt.device {
				t.Errorf("device = %q, want %q", device, tt.device)
			}
		})
	}
}

func TestHashIdentity(t *testing.T) {
	a := HashIdentity("salt", "1.2.3.4", "ua")
	b := HashIdentity("salt", "1.2.3.4", "ua")
	if a != b {
		t.Error("same inputs must hash identically")
	}
	if HashIdentity("other", "1.2.3.4", "ua") == a {
		t.Error("different salt must change the hash")
	}
	if HashIdentity("salt", "1.2.3.5", "ua") == a {
		t.Error("different ip must change the hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
