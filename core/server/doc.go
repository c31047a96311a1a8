// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber app from these settings; the package itself
// only defines the listen port and request deadlines.
package server
