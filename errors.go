package uik

import "fmt"

// ErrorKind classifies a renderer failure by its origin.
type ErrorKind uint8

const (
	// KindGraphicsAPI indicates a failure inside the graphics library itself
	// (context creation, surface binding, draw submission).
	KindGraphicsAPI ErrorKind = iota

	// KindBinding indicates a failure in the lower-level hardware binding
	// layer (the wgpu/hal instance or the platform adapter).
	KindBinding

	// KindInit indicates a failure strictly during setup sequencing.
	KindInit

	// KindGeneral is the catch-all kind, including wrapped I/O failures
	// and ad hoc string errors.
	KindGeneral
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindGraphicsAPI:
		return "graphics API error"
	case KindBinding:
		return "binding error"
	case KindInit:
		return "initialization error"
	case KindGeneral:
		return "renderer error"
	default:
		return fmt.Sprintf("unknown error kind (%d)", uint8(k))
	}
}

// RendererError is a classified renderer failure. It carries a
// human-readable message only; there are no error codes and no retry
// metadata. Use the constructor matching the failure origin.
type RendererError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *RendererError) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// GraphicsAPIError creates an error for failures inside the graphics library.
func GraphicsAPIError(msg string) *RendererError {
	return &RendererError{Kind: KindGraphicsAPI, Message: msg}
}

// BindingError creates an error for failures in the hardware binding layer.
func BindingError(msg string) *RendererError {
	return &RendererError{Kind: KindBinding, Message: msg}
}

// InitError creates an error for failures during setup sequencing.
func InitError(msg string) *RendererError {
	return &RendererError{Kind: KindInit, Message: msg}
}

// GeneralError creates a catch-all renderer error.
func GeneralError(msg string) *RendererError {
	return &RendererError{Kind: KindGeneral, Message: msg}
}

// WrapError converts an arbitrary error into a RendererError.
// Errors that are already classified are returned unchanged; everything
// else (I/O errors, string errors) becomes KindGeneral. Returns nil for
// a nil error, so every failure path stays classified and none are
// silently swallowed.
func WrapError(err error) *RendererError {
	if err == nil {
		return nil
	}
	if re, ok := err.(*RendererError); ok {
		return re
	}
	return GeneralError(err.Error())
}

// wrapRenderer converts a classified error into the framework umbrella
// error at the renderer contract boundary. The kind distinction is lost
// here by design: callers above the renderer see a formatted message only.
func wrapRenderer(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("renderer: %v", err)
}
