// Package logging defines a logging interface for tlsinfo.
// This package should not be considered stable
package logging
