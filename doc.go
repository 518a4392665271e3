// Package main provides the entry point for the GoVideoHub server. It
// loads the layered instance configuration, keeps it hot-reloadable at
// runtime, and runs a web service using the Fiber framework that serves
// the public instance configuration and the runtime settings over a
// REST API. The application uses gorm for data persistence.
package main
