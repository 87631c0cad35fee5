//go:build !((darwin || freebsd || linux || netbsd) && !android)

package native

import "github.com/gogpu/vg"

// Engine is unavailable on this platform.
type Engine struct {
	vg.Engine
}

// Utility is unavailable on this platform.
type Utility struct {
	vg.Utility
}

// Open always fails with ErrUnsupported on this platform.
func Open(opts ...Option) (*Engine, error) {
	return nil, ErrUnsupported
}

// Utility returns nil on this platform.
func (e *Engine) Utility() *Utility { return nil }

// Library returns the empty string on this platform.
func (e *Engine) Library() string { return "" }

// Close is a no-op on this platform.
func (e *Engine) Close() error { return nil }
