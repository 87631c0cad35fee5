//go:build (darwin || freebsd || linux || netbsd) && !android

package native

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ebitengine/purego"

	"github.com/gogpu/vg"
)

// library is one dlopen'ed shared object.
type library struct {
	h    uintptr
	name string
}

// openLibrary tries names in order and returns the first that loads.
func openLibrary(names []string) (*library, error) {
	var errs []error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			vg.Logger().Info("native: library loaded", "name", name)
			return &library{h: h, name: name}, nil
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, strings.Join(names, ", "), errors.Join(errs...))
}

func (l *library) close() error {
	if l == nil || l.h == 0 {
		return nil
	}
	err := purego.Dlclose(l.h)
	l.h = 0
	return err
}

// symbol binds one C entry point to a Go function variable.
type symbol struct {
	name string
	fn   any
}

// has reports whether the library exports name.
func (l *library) has(name string) bool {
	_, err := purego.Dlsym(l.h, name)
	return err == nil
}

// bind resolves every symbol. Nothing is bound unless all are present.
func (l *library) bind(syms []symbol) error {
	addrs := make([]uintptr, len(syms))
	var missing []string
	for i, s := range syms {
		addr, err := purego.Dlsym(l.h, s.name)
		if err != nil {
			missing = append(missing, s.name)
			continue
		}
		addrs[i] = addr
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w in %s: %s", ErrMissingSymbol, l.name, strings.Join(missing, ", "))
	}
	for i, s := range syms {
		purego.RegisterFunc(s.fn, addrs[i])
	}
	return nil
}
