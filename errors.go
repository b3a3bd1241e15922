package eaxefx

import "fmt"

// ErrorKind classifies an EAXError so the top-level dispatcher can map it
// to the numeric return code of EAXSet/EAXGet without inspecting message
// text.
type ErrorKind int

const (
	// KindInvalidOperation covers an unknown property set, a missing
	// source, or a rejected write to a locked slot.
	KindInvalidOperation ErrorKind = iota
	// KindInvalidValue covers a nil/undersized buffer, an out-of-range
	// numeric value, an unrecognized enum, or a reserved flag bit set.
	KindInvalidValue
	// KindNoEffectLoaded covers an effect-scoped property sent to a slot
	// whose loaded effect is null.
	KindNoEffectLoaded
	// KindUnknownEffect covers an unrecognized effect GUID on LOADEFFECT.
	KindUnknownEffect
	// KindIncompatibleSourceType covers a 2-D-only property sent to a
	// 3-D source or vice versa.
	KindIncompatibleSourceType
	// KindIncompatibleEAXVersion covers a property absent from the
	// session's active EAX version.
	KindIncompatibleEAXVersion
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidOperation:
		return "invalid_operation"
	case KindInvalidValue:
		return "invalid_value"
	case KindNoEffectLoaded:
		return "no_effect_loaded"
	case KindUnknownEffect:
		return "unknown_effect"
	case KindIncompatibleSourceType:
		return "incompatible_source_type"
	case KindIncompatibleEAXVersion:
		return "incompatible_eax_version"
	default:
		return "unknown_kind"
	}
}

// Return codes handed back from EAXSet/EAXGet, per the shim's ABI.
const (
	CodeOK                      = 0
	CodeInvalidOperation        = -1
	CodeInvalidValue            = -2
	CodeNoEffectLoaded          = -3
	CodeUnknownEffect           = -4
	CodeIncompatibleSourceType  = -5
	CodeIncompatibleEAXVersion  = -6
)

// Code maps an ErrorKind to its §6.1 numeric return code.
func (k ErrorKind) Code() int {
	switch k {
	case KindInvalidOperation:
		return CodeInvalidOperation
	case KindInvalidValue:
		return CodeInvalidValue
	case KindNoEffectLoaded:
		return CodeNoEffectLoaded
	case KindUnknownEffect:
		return CodeUnknownEffect
	case KindIncompatibleSourceType:
		return CodeIncompatibleSourceType
	case KindIncompatibleEAXVersion:
		return CodeIncompatibleEAXVersion
	default:
		return CodeInvalidOperation
	}
}

// EAXError is the single error type the engine raises internally. Every
// validate/defer/dispatch function that can fail returns one of these
// (wrapped in a plain error return, never a panic) so that the top-level
// EAXSet/EAXGet can recover the kind with errors.As and convert it to the
// transport-level code.
type EAXError struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *EAXError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

func newErr(kind ErrorKind, field, format string, args ...any) *EAXError {
	return &EAXError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

func errInvalidOperation(field, format string, args ...any) *EAXError {
	return newErr(KindInvalidOperation, field, format, args...)
}

func errInvalidValue(field, format string, args ...any) *EAXError {
	return newErr(KindInvalidValue, field, format, args...)
}

func errNoEffectLoaded(field, format string, args ...any) *EAXError {
	return newErr(KindNoEffectLoaded, field, format, args...)
}

func errUnknownEffect(field, format string, args ...any) *EAXError {
	return newErr(KindUnknownEffect, field, format, args...)
}

func errIncompatibleVersion(field, format string, args ...any) *EAXError {
	return newErr(KindIncompatibleEAXVersion, field, format, args...)
}

// outOfRange is the validator's standard invalid_value failure: it names
// the field, the offending value, and the bounds, per §4.2.
func outOfRange(field string, value, min, max any) *EAXError {
	return errInvalidValue(field, "value %v out of range [%v, %v]", value, min, max)
}
