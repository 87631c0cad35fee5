//go:build (darwin || freebsd || linux || netbsd) && !android

package native

import (
	"errors"
	"testing"

	"github.com/gogpu/vg"
)

func TestOpenMissingLibrary(t *testing.T) {
	_, err := Open(WithLibrary("libdoes-not-exist-openvg.so"))
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("Open() = %v, want ErrLibraryNotFound", err)
	}
}

func TestRegistered(t *testing.T) {
	found := false
	for _, name := range vg.Engines() {
		if name == Name {
			found = true
		}
	}
	if !found {
		t.Errorf("Engines() = %v, want %q registered", vg.Engines(), Name)
	}
}

// TestOpenLive binds a real library when one is installed. Calls that need
// a current EGL context are not made.
func TestOpenLive(t *testing.T) {
	e, err := Open()
	if errors.Is(err, ErrLibraryNotFound) {
		t.Skip("no OpenVG library installed")
	}
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	if e.Library() == "" {
		t.Error("Library() is empty")
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := e.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() = %v, want ErrClosed", err)
	}
}
