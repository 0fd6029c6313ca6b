package tifftools

import (
	goerrors "github.com/go-errors/errors"
)

// Kind classifies the errors the package returns (Warning is not
// here: it's non-fatal and accumulated on Info instead of being
// returned).
type Kind int

const (
	// KindFormat covers structurally invalid TIFF input: bad magic,
	// unknown version, truncation, unknown datatype on a known tag,
	// circular IFD references, offsets outside the buffer, or a
	// bytecount-pair whose counts don't match.
	KindFormat Kind = iota
	// KindBigTiffRequired is returned when the caller forced classic
	// layout but the projected output needs BigTIFF.
	KindBigTiffRequired
	// KindUser covers bad input from a human: an unknown symbolic tag
	// name, an unparseable value literal, conflicting --set/--unset
	// directives, or writing over an existing file without
	// --overwrite.
	KindUser
	// KindIO covers underlying read/write/seek failures.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format error"
	case KindBigTiffRequired:
		return "BigTIFF required"
	case KindUser:
		return "user error"
	case KindIO:
		return "I/O error"
	default:
		return "error"
	}
}

// Error is the error type returned by every exported operation in the
// package. It wraps go-errors/errors so callers that want a stack
// trace for diagnostics can call Stack().
type Error struct {
	Kind  Kind
	inner *goerrors.Error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.inner.Error()
}

// Unwrap lets errors.Is/errors.As see through to the underlying
// go-errors value.
func (e *Error) Unwrap() error { return e.inner }

// Stack renders the captured stack trace of the underlying error.
func (e *Error) Stack() string { return e.inner.ErrorStack() }

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, inner: goerrors.New(msg)}
}

func wrapErr(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	if existing, ok := err.(*Error); ok {
		return existing
	}
	return &Error{Kind: kind, inner: goerrors.Wrap(err, 1)}
}

func errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, inner: goerrors.Errorf(format, args...)}
}

// NewUserError builds a KindUser *Error, for callers outside this
// package (notably ops and cmd/tiffkit) that need to report bad input
// without reaching into the package's private helpers.
func NewUserError(msg string) *Error { return newErr(KindUser, msg) }

// NewFormatError builds a KindFormat *Error.
func NewFormatError(msg string) *Error { return newErr(KindFormat, msg) }

// NewUserErrorf is NewUserError with formatting.
func NewUserErrorf(format string, args ...interface{}) *Error { return errf(KindUser, format, args...) }

// Sentinel messages for conditions tests match on by substring.
const (
	msgBadHeaderMagic    = "bad TIFF header magic"
	msgUnknownVersion    = "unknown TIFF version"
	msgTruncatedFile     = "truncated TIFF file"
	msgUnknownDatatype   = "unknown TIFF datatype"
	msgCircularReference = "circular IFD reference detected"
	msgInvalidOffset     = "offset outside file"
	msgBytecountMismatch = "offset/bytecount pair count mismatch"
	msgMaxDepthExceeded  = "maximum SubIFD nesting depth exceeded"
)
