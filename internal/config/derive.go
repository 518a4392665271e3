package config

import (
	"strconv"
)

// Derived holds fields computed from the webserver settings. They are
// recomputed from scratch whenever the snapshot changes, never patched.
type Derived struct {
	URL    string // e.g. https://video.example.com:8443
	Host   string // e.g. video.example.com:8443
	Scheme string // http or https
	WS     string // ws or wss
}

// WebserverScheme returns the URL scheme for the given TLS flag.
func WebserverScheme(https bool) string {
	if https {
		return "https"
	}

	return "http"
}

// WebserverHost assembles hostname[:port], omitting the default port of
// the scheme (80 for http, 443 for https).
func WebserverHost(https bool, hostname string, port int) string {
	if (https && port == 443) || (!https && port == 80) {
		return hostname
	}

	return hostname + ":" + strconv.Itoa(port)
}

// WebserverURL assembles the base URL of the instance. The result carries
// no trailing slash, so paths can be appended directly.
func WebserverURL(https bool, hostname string, port int) string {
	return WebserverScheme(https) + "://" + WebserverHost(https, hostname, port)
}

// Derive computes all derived fields from a webserver config block.
func Derive(w Webserver) Derived {
	d := Derived{
		URL:    WebserverURL(w.HTTPS, w.Hostname, w.Port),
		Host:   WebserverHost(w.HTTPS, w.Hostname, w.Port),
		Scheme: WebserverScheme(w.HTTPS),
		WS:     "ws",
	}

	if w.HTTPS {
		d.WS = "wss"
	}

	return d
}
