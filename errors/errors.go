package errors

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Phase indicates which parse stage produced the error
type Phase string

const (
	PhaseOpen        Phase = "open"         // acquiring the source
	PhaseHeader      Phase = "header"       // symbol table pointer and count
	PhaseStringTable Phase = "string_table" // string table size prefix
	PhaseSymbol      Phase = "symbol"       // symbol name resolution
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated Kind = "truncated"
	KindIO        Kind = "io"
)

// ErrTruncated matches any truncation error via errors.Is, whatever its phase.
var ErrTruncated = errors.New("coff: truncated input")

// Error is the structured error type used throughout coffview
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	// Offset is the absolute file offset of the failed read, or -1 if unknown.
	Offset int64
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.FormatInt(e.Offset, 10))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if target == ErrTruncated {
		return e.Kind == KindTruncated
	}
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the file offset of the failed read
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// IsEOF reports whether err means the source ran out of bytes.
func IsEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// Truncated creates a truncation error for a read that ran past the end of input
func Truncated(phase Phase, offset int64, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: "read " + what,
		Cause:  cause,
	}
}

// Wrap classifies a read failure. End-of-input causes become KindTruncated,
// anything else becomes KindIO. A cause that is already an *Error is returned as is.
func Wrap(phase Phase, offset int64, what string, cause error) error {
	if cause == nil {
		return nil
	}
	var e *Error
	if errors.As(cause, &e) {
		return e
	}
	if IsEOF(cause) {
		return Truncated(phase, offset, what, cause)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Offset: offset,
		Detail: what,
		Cause:  cause,
	}
}

// Open creates an error for a source that could not be acquired
func Open(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindIO,
		Offset: -1,
		Detail: fmt.Sprintf("open %s", path),
		Cause:  cause,
	}
}
