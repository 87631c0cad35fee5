package vg

import (
	"errors"
	"fmt"
	"strings"
)

// Local validation errors. These are raised before any engine call is made
// and are always correctable by the caller.
var (
	// ErrShape is returned when a value has the wrong arity or tuple width.
	ErrShape = errors.New("vg: shape mismatch")

	// ErrUnknownParam is returned for a parameter id missing from a table.
	ErrUnknownParam = errors.New("vg: unknown parameter")

	// ErrKindMismatch is returned when a value does not match the declared
	// value kind of its parameter.
	ErrKindMismatch = errors.New("vg: value kind mismatch")

	// ErrReadOnly is returned when setting a read-only parameter.
	ErrReadOnly = errors.New("vg: parameter is read-only")

	// ErrUnknownBit is returned for an undeclared or anonymous bit name.
	ErrUnknownBit = errors.New("vg: unknown bit name")

	// ErrBitRenamed is returned when extending a bit that already has a
	// different name without override.
	ErrBitRenamed = errors.New("vg: bit already named")

	// ErrDuplicateParam is returned when extending a table with an id it
	// already holds.
	ErrDuplicateParam = errors.New("vg: parameter already declared")

	// ErrQueueActive is returned when a queuing scope is entered twice on
	// the same path.
	ErrQueueActive = errors.New("vg: path already queuing")

	// ErrDestroyed is returned when an owning wrapper is used after Destroy.
	ErrDestroyed = errors.New("vg: object destroyed")

	// ErrCoordinateRange is returned when a coordinate does not fit the
	// path datatype. It matches ErrShape.
	ErrCoordinateRange = fmt.Errorf("%w: coordinate out of range", ErrShape)

	// ErrNoUtility is returned when a utility call is made on a context
	// created without a Utility implementation.
	ErrNoUtility = errors.New("vg: no utility library")

	// ErrNilEngine is returned when a context is created without an engine.
	ErrNilEngine = errors.New("vg: nil engine")
)

// Engine errors. Every error reported by the engine matches ErrEngine with
// errors.Is; mapped codes additionally match their own sentinel.
var (
	ErrEngine                 = errors.New("unrecognised OpenVG error")
	ErrBadHandle              = errors.New("an invalid handle was supplied")
	ErrIllegalArgument        = errors.New("an invalid argument was supplied")
	ErrOutOfMemory            = errors.New("the engine could not allocate the required memory")
	ErrPathCapability         = errors.New("a required path capability is not enabled")
	ErrUnsupportedImageFormat = errors.New("the image format is not supported")
	ErrUnsupportedPathFormat  = errors.New("the path format is not supported")
	ErrImageInUse             = errors.New("the image is in use as a rendering target")
	ErrNoContext              = errors.New("there is no current OpenVG context")
	ErrBadWarp                = errors.New("no valid warp exists for the given points")
)

// Error is an engine-reported error.
type Error struct {
	// Kind is the sentinel the code maps to, ErrEngine when unmapped.
	Kind error

	// Code is the raw code read from the trap register or returned inline.
	Code uint32

	// Op names the boundary call that failed.
	Op string

	// Message overrides the default message of Kind when non-empty.
	Message string
}

// NewError creates an engine error of the given kind with a custom message.
func NewError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("vg: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	switch {
	case e.Message != "":
		b.WriteString(e.Message)
	case e.Kind != nil:
		b.WriteString(e.Kind.Error())
	default:
		b.WriteString(ErrEngine.Error())
	}
	if e.Code != 0 {
		fmt.Fprintf(&b, " (0x%04X)", e.Code)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e.Kind == nil {
		return ErrEngine
	}
	return e.Kind
}

// Is reports every engine error as an ErrEngine.
func (e *Error) Is(target error) bool {
	return target == ErrEngine
}

// ErrorCode is a primary API error code, read from the trap register.
type ErrorCode uint32

// Primary API error codes.
const (
	NoError                     ErrorCode = 0
	BadHandleError              ErrorCode = 0x1000
	IllegalArgumentError        ErrorCode = 0x1001
	OutOfMemoryError            ErrorCode = 0x1002
	PathCapabilityError         ErrorCode = 0x1003
	UnsupportedImageFormatError ErrorCode = 0x1004
	UnsupportedPathFormatError  ErrorCode = 0x1005
	ImageInUseError             ErrorCode = 0x1006
	NoContextError              ErrorCode = 0x1007
)

// UtilityCode is a utility API error code, returned by each call.
type UtilityCode uint32

// Utility API error codes.
const (
	UtilityNoError              UtilityCode = 0
	UtilityBadHandleError       UtilityCode = 0xF000
	UtilityIllegalArgumentError UtilityCode = 0xF001
	UtilityOutOfMemoryError     UtilityCode = 0xF002
	UtilityPathCapabilityError  UtilityCode = 0xF003
	UtilityBadWarpError         UtilityCode = 0xF004
)

// trapTable maps the nonzero codes of one error convention to sentinels.
type trapTable[C ~uint32] struct {
	name  string
	kinds map[C]error
}

var primaryTrap = &trapTable[ErrorCode]{
	name: "trap",
	kinds: map[ErrorCode]error{
		BadHandleError:              ErrBadHandle,
		IllegalArgumentError:        ErrIllegalArgument,
		OutOfMemoryError:            ErrOutOfMemory,
		PathCapabilityError:         ErrPathCapability,
		UnsupportedImageFormatError: ErrUnsupportedImageFormat,
		UnsupportedPathFormatError:  ErrUnsupportedPathFormat,
		ImageInUseError:             ErrImageInUse,
		NoContextError:              ErrNoContext,
	},
}

var utilityTrap = &trapTable[UtilityCode]{
	name: "utility",
	kinds: map[UtilityCode]error{
		UtilityBadHandleError:       ErrBadHandle,
		UtilityIllegalArgumentError: ErrIllegalArgument,
		UtilityOutOfMemoryError:     ErrOutOfMemory,
		UtilityPathCapabilityError:  ErrPathCapability,
		UtilityBadWarpError:         ErrBadWarp,
	},
}

// check decodes code. Zero is success.
func (t *trapTable[C]) check(op string, code C) error {
	if code == 0 {
		return nil
	}
	kind, ok := t.kinds[code]
	if !ok {
		Logger().Warn("vg: unmapped engine error code",
			"table", t.name, "op", op, "code", uint32(code))
		kind = ErrEngine
	}
	return &Error{Kind: kind, Code: uint32(code), Op: op}
}

// call invokes fn and then inspects the engine's trap register.
func call(e Engine, op string, fn func()) error {
	fn()
	return primaryTrap.check(op, e.GetError())
}

// callValue invokes fn and inspects the trap register. The value returned
// by fn passes through unchanged when no error was trapped.
func callValue[T any](e Engine, op string, fn func() T) (T, error) {
	v := fn()
	if err := primaryTrap.check(op, e.GetError()); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// callUtility invokes a utility function, which reports its code inline.
func callUtility(op string, fn func() UtilityCode) error {
	return utilityTrap.check(op, fn())
}
