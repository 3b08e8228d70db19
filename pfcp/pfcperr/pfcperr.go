// Package pfcperr defines the single error taxonomy shared by every
// codec layer in pfcp-core: header, tlv, ie, and message. No parse
// routine in this module returns a bare error or panics; they all
// return an *Error carrying enough context to act on without leaking
// internals.
package pfcperr

import "fmt"

// Code identifies the failure mode of a *Error. Callers that need to
// branch on failure kind should switch on Code rather than string-match
// Error().
type Code int

const (
	// InvalidLength signals a buffer shorter than the minimum required,
	// or an IE value shorter than its declared/required length.
	InvalidLength Code = iota
	// InvalidValue signals a value outside its 3GPP-mandated range, or
	// an unknown enum discriminant.
	InvalidValue
	// MandatoryIeMissing signals a required IE absent after parse.
	MandatoryIeMissing
	// UnsupportedVersion signals a header version other than 1.
	UnsupportedVersion
	// UnknownMessageType signals a message type code with no catalog
	// entry.
	UnknownMessageType
	// UnknownMandatoryIe signals an IE whose type bit 15 is clear
	// (mandatory-to-understand) but which the catalog does not
	// recognize.
	UnknownMandatoryIe
	// ZeroLengthNotAllowed signals a zero-length IE value outside the
	// allowlist in tlv.ZeroLengthAllowed.
	ZeroLengthNotAllowed
	// TooManyElements signals a defensive cap exceeded (repeated IEs,
	// nesting depth).
	TooManyElements
	// Io wraps a transport-level I/O failure.
	Io
)

func (c Code) String() string {
	switch c {
	case InvalidLength:
		return "InvalidLength"
	case InvalidValue:
		return "InvalidValue"
	case MandatoryIeMissing:
		return "MandatoryIeMissing"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case UnknownMessageType:
		return "UnknownMessageType"
	case UnknownMandatoryIe:
		return "UnknownMandatoryIe"
	case ZeroLengthNotAllowed:
		return "ZeroLengthNotAllowed"
	case TooManyElements:
		return "TooManyElements"
	case Io:
		return "Io"
	default:
		return "Unknown"
	}
}

// Error is the sum type for every failure mode in pfcp-core. It is
// immutable once constructed; WithContext returns a new value rather
// than mutating the receiver.
type Error struct {
	Code Code

	// IEName/IEType identify the offending IE, when applicable.
	IEName string
	IEType uint16

	// Expected/Actual carry length or cause-like numeric context.
	Expected int
	Actual   int

	// MessageName identifies the enclosing message or grouped IE, for
	// MandatoryIeMissing. UnknownMessageType carries the unknown code in
	// Actual instead.
	MessageName string

	// Reason is a short human-readable explanation, used by
	// InvalidValue and similar variants that don't fit the numeric
	// fields above.
	Reason string

	// Context is prepended by WithContext to point at the enclosing
	// structure ("in Create PDR").
	Context string

	// Cause is the wrapped underlying error, if any (used by Io and by
	// nested parse failures).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Code.String()
	if e.IEName != "" {
		msg += fmt.Sprintf(" ie=%s(type=%d)", e.IEName, e.IEType)
	}
	if e.MessageName != "" {
		msg += fmt.Sprintf(" message=%s", e.MessageName)
	}
	if e.Expected != 0 || e.Actual != 0 {
		msg += fmt.Sprintf(" expected=%d actual=%d", e.Expected, e.Actual)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Context != "" {
		msg = e.Context + ": " + msg
	}
	return msg
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As can see
// through this error to a transport-level cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext returns a copy of e with ctx prepended to its Context
// chain, used when propagating a failure up through an enclosing
// grouped IE or message.
func (e *Error) WithContext(ctx string) *Error {
	cp := *e
	if cp.Context == "" {
		cp.Context = ctx
	} else {
		cp.Context = ctx + ": " + cp.Context
	}
	return &cp
}

// InvalidLengthErr builds an InvalidLength error.
func InvalidLengthErr(ieName string, ieType uint16, expected, actual int) *Error {
	return &Error{Code: InvalidLength, IEName: ieName, IEType: ieType, Expected: expected, Actual: actual}
}

// InvalidValueErr builds an InvalidValue error.
func InvalidValueErr(ieName string, reason string) *Error {
	return &Error{Code: InvalidValue, IEName: ieName, Reason: reason}
}

// MandatoryIeMissingErr builds a MandatoryIeMissing error.
func MandatoryIeMissingErr(messageName, ieName string) *Error {
	return &Error{Code: MandatoryIeMissing, MessageName: messageName, IEName: ieName}
}

// UnsupportedVersionErr builds an UnsupportedVersion error.
func UnsupportedVersionErr(got, expected uint8) *Error {
	return &Error{Code: UnsupportedVersion, Expected: int(expected), Actual: int(got)}
}

// UnknownMessageTypeErr builds an UnknownMessageType error.
func UnknownMessageTypeErr(code uint8) *Error {
	return &Error{Code: UnknownMessageType, Actual: int(code)}
}

// UnknownMandatoryIeErr builds an UnknownMandatoryIe error.
func UnknownMandatoryIeErr(ieType uint16) *Error {
	return &Error{Code: UnknownMandatoryIe, IEType: ieType}
}

// ZeroLengthNotAllowedErr builds a ZeroLengthNotAllowed error.
func ZeroLengthNotAllowedErr(ieType uint16) *Error {
	return &Error{Code: ZeroLengthNotAllowed, IEType: ieType}
}

// TooManyElementsErr builds a TooManyElements error.
func TooManyElementsErr(limit int) *Error {
	return &Error{Code: TooManyElements, Expected: limit}
}

// IoErr wraps an underlying transport error.
func IoErr(cause error) *Error {
	return &Error{Code: Io, Cause: cause}
}
