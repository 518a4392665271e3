package config

import (
	"testing"
)

func TestWebserverURL(t *testing.T) {
	tests := []struct {
		name     string
		https    bool
		hostname string
		port     int
		wantURL  string
		wantHost string
	}{
		{
			name:     "http default port omitted",
			https:    false,
			hostname: "example.com",
			port:     80,
			wantURL:  "http://example.com",
			wantHost: "example.com",
		},
		{
			name:     "https default port omitted",
			https:    true,
			hostname: "example.com",
			port:     443,
			wantURL:  "https://example.com",
			wantHost: "example.com",
		},
		{
			name:     "http non default port kept",
			https:    false,
			hostname: "example.com",
			port:     9000,
			wantURL:  "http://example.com:9000",
			wantHost: "example.com:9000",
		},
		{
			name:     "https on port 80 keeps port",
			https:    true,
			hostname: "example.com",
			port:     80,
			wantURL:  "https://example.com:80",
			wantHost: "example.com:80",
		},
		{
			name:     "http on port 443 keeps port",
			https:    false,
			hostname: "example.com",
			port:     443,
			wantURL:  "http://example.com:443",
			wantHost: "example.com:443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WebserverURL(tt.https, tt.hostname, tt.port); got != tt.wantURL {
				t.Errorf("WebserverURL() = %v, want %v", got, tt.wantURL)
			}

			if got := WebserverHost(tt.https, tt.hostname, tt.port); got != tt.wantHost {
				t.Errorf("WebserverHost() = %v, want %v", got, tt.wantHost)
			}
		})
	}
}

// The derivation is a pure function: recomputing from the same inputs must
// always yield the same normalized string.
func TestWebserverURLIdempotent(t *testing.T) {
	w := Webserver{HTTPS: true, Hostname: "video.example.com", Port: 8443}

	first := Derive(w)

	for i := 0; i < 10; i++ {
		if got := Derive(w); got != first {
			t.Fatalf("Derive() = %v, want stable %v", got, first)
		}
	}
}

func TestDeriveWebsocketScheme(t *testing.T) {
	if d := Derive(Webserver{HTTPS: true, Hostname: "h", Port: 443}); d.WS != "wss" {
		t.Errorf("Derive().WS = %v, want wss", d.WS)
	}

	if d := Derive(Webserver{HTTPS: false, Hostname: "h", Port: 80}); d.WS != "ws" {
		t.Errorf("Derive().WS = %v, want ws", d.WS)
	}
}
