package native

import "errors"

var (
	// ErrLibraryNotFound is returned when no candidate library loads.
	ErrLibraryNotFound = errors.New("native: OpenVG library not found")

	// ErrMissingSymbol is returned when a library lacks a required entry
	// point.
	ErrMissingSymbol = errors.New("native: missing symbol")

	// ErrUnsupported is returned on platforms without dynamic loading.
	ErrUnsupported = errors.New("native: dynamic loading is not supported on this platform")

	// ErrClosed is returned by Close on an engine that was already closed.
	ErrClosed = errors.New("native: engine closed")
)
