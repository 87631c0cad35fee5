// Package native loads an OpenVG 1.1 shared library at run time and
// exposes it as a vg.Engine, without cgo.
//
// Importing the package registers the engine under the name "native":
//
//	import _ "github.com/gogpu/vg/native"
//
//	e, err := vg.OpenEngine("native")
//
// Open can also be called directly with options. The library is found
// through WithLibrary, then the OPENVG_LIBRARY environment variable, then
// the platform's default names. The VGU entry points are looked up in
// WithUtilityLibrary, OPENVG_VGU_LIBRARY or libOpenVGU, and finally in the
// main library, which many implementations bundle them into.
//
// The caller is responsible for creating an EGL context and making it
// current on the calling thread before issuing any call.
package native
