// Package constants centralizes the static lookup tables of the instance:
// pagination sizes, sortable columns, rate limit windows, MIME type maps,
// federation protocol constants, enumeration tables for video metadata and
// the constraint ranges used by input validation.
//
// All tables are built once at process start. Under the test profile a
// documented subset of values is replaced by smaller or faster ones, see
// testmode.go.
package constants
