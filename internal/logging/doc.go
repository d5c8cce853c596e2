// Package logging provides a unified logging interface for the codec engine
// and its HTTP surface. It abstracts the underlying logging implementation,
// allowing consistent structured logging across components while supporting
// multiple backends (zerolog, or a plain log.Logger for terminal use).
package logging
