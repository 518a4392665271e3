// Package handler holds shared constants and contracts of the web handlers.
package handler

const (
	// APIBase is the prefix of the versioned JSON API.
	APIBase = "/api/v1"

	// ErrNilAHFatalLogMsg is used if the app or holder pointer is nil.
	ErrNilAHFatalLogMsg = "app or config holder is nil"
)
