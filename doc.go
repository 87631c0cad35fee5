// Package vg provides typed Go access to an OpenVG 1.1 engine.
//
// # Overview
//
// vg sits between Go programs and a native OpenVG implementation. It turns
// Go values into the flat arrays, packed bitfields and handles the engine
// takes, and turns the engine's trap-register error model into Go errors.
// Rendering is done entirely by the engine.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/vg"
//		_ "github.com/gogpu/vg/native" // registers the "native" engine
//	)
//
//	e, err := vg.OpenEngine("native")
//	ctx, err := vg.NewContext(e)
//
//	// Paints and paths are owned: Destroy releases them
//	paint, _ := vg.NewPaint(ctx)
//	defer paint.Destroy()
//	paint.SetColor(vg.RGB(1, 0, 0))
//	paint.SetFill()
//
//	path, _ := vg.NewPath(ctx)
//	defer path.Destroy()
//	path.Queue(func() error {
//		path.MoveTo(10, 10)
//		path.LineTo(100, 10)
//		path.LineTo(55, 90)
//		return path.ClosePath()
//	})
//	path.Draw(vg.Fill)
//
// The EGL surface and context must be created and made current by the
// caller before the engine is used.
//
// # Parameters
//
// Every piece of engine state is described by a Descriptor in a per-object
// Table. Params reads and writes values through the entry-point family
// the descriptor declares, so kind, shape and writability are checked
// before the engine is called. Vendor parameters and bit names can be
// added with Table.Extend, BitNames.Extend or a YAML manifest passed to
// LoadExtensions.
//
// # Errors
//
// Local mistakes return ErrShape, ErrKindMismatch, ErrReadOnly and the
// other local sentinels without reaching the engine. Engine failures
// return *Error values that match both ErrEngine and the sentinel of
// their code with errors.Is.
//
// # Paths
//
// Segment methods such as MoveTo and CubicTo append one segment each.
// Inside Path.Queue they are staged and appended in one engine call when
// the scope ends, including when it fails or panics.
//
// # Concurrency
//
// An OpenVG context is bound to one thread. A Context and the objects
// created from it must not be used from more than one goroutine at a
// time.
package vg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
