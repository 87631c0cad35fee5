package native

import (
	"slices"
	"testing"
)

func TestDefaultNames(t *testing.T) {
	tests := []struct {
		goos string
		base string
		want []string
	}{
		{"linux", "OpenVG", []string{"libOpenVG.so.1", "libOpenVG.so"}},
		{"freebsd", "OpenVGU", []string{"libOpenVGU.so.1", "libOpenVGU.so"}},
		{"darwin", "OpenVG", []string{"libOpenVG.dylib"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.base, func(t *testing.T) {
			if got := defaultNames(tt.goos, tt.base); !slices.Equal(got, tt.want) {
				t.Errorf("defaultNames(%q, %q) = %v, want %v", tt.goos, tt.base, got, tt.want)
			}
		})
	}
}

func TestResolveOptions(t *testing.T) {
	t.Setenv(EnvLibrary, "")
	t.Setenv(EnvUtilityLibrary, "")

	o := resolveOptions([]Option{WithLibrary("/opt/vg/libvg.so"), WithoutUtility()})
	if o.library != "/opt/vg/libvg.so" {
		t.Errorf("library = %q", o.library)
	}
	if !o.noUtility {
		t.Error("noUtility = false, want true")
	}
	if got := o.libraryNames(); !slices.Equal(got, []string{"/opt/vg/libvg.so"}) {
		t.Errorf("libraryNames() = %v", got)
	}
}

func TestResolveOptionsEnvironment(t *testing.T) {
	t.Setenv(EnvLibrary, "libAmanithVG.so")
	t.Setenv(EnvUtilityLibrary, "libAmanithVGU.so")

	o := resolveOptions(nil)
	if got := o.libraryNames(); !slices.Equal(got, []string{"libAmanithVG.so"}) {
		t.Errorf("libraryNames() = %v", got)
	}
	if got := o.utilityNames(); !slices.Equal(got, []string{"libAmanithVGU.so"}) {
		t.Errorf("utilityNames() = %v", got)
	}

	o = resolveOptions([]Option{WithLibrary("explicit.so"), WithUtilityLibrary("explicitu.so")})
	if o.library != "explicit.so" || o.utilityLibrary != "explicitu.so" {
		t.Errorf("options = %+v, explicit values should win over the environment", o)
	}
}
