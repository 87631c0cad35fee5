package native

import (
	"os"
	"runtime"
)

// Environment variables that override the default library names.
const (
	EnvLibrary        = "OPENVG_LIBRARY"
	EnvUtilityLibrary = "OPENVG_VGU_LIBRARY"
)

// Option configures Open.
type Option func(*options)

type options struct {
	library        string
	utilityLibrary string
	noUtility      bool
}

// WithLibrary sets the path or soname of the OpenVG library.
func WithLibrary(path string) Option {
	return func(o *options) {
		o.library = path
	}
}

// WithUtilityLibrary sets the path or soname of the VGU library.
func WithUtilityLibrary(path string) Option {
	return func(o *options) {
		o.utilityLibrary = path
	}
}

// WithoutUtility skips loading the VGU entry points.
func WithoutUtility() Option {
	return func(o *options) {
		o.noUtility = true
	}
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.library == "" {
		o.library = os.Getenv(EnvLibrary)
	}
	if o.utilityLibrary == "" {
		o.utilityLibrary = os.Getenv(EnvUtilityLibrary)
	}
	return o
}

// libraryNames lists the candidates tried for the main library.
func (o options) libraryNames() []string {
	if o.library != "" {
		return []string{o.library}
	}
	return defaultNames(runtime.GOOS, "OpenVG")
}

// utilityNames lists the candidates tried for a separate VGU library. An
// empty result means the main library is searched.
func (o options) utilityNames() []string {
	if o.utilityLibrary != "" {
		return []string{o.utilityLibrary}
	}
	return defaultNames(runtime.GOOS, "OpenVGU")
}

func defaultNames(goos, base string) []string {
	switch goos {
	case "darwin":
		return []string{"lib" + base + ".dylib"}
	default:
		return []string{"lib" + base + ".so.1", "lib" + base + ".so"}
	}
}
