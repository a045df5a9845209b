// Package errors provides structured error types for the coffview library.
//
// Errors are categorized by Phase (which parse stage was running) and Kind
// (what went wrong). A truncated input is reported as KindTruncated no matter
// which stage hit the end of the file:
//
//	details, err := coff.Read("main.obj")
//	if errors.Is(err, cofferrors.ErrTruncated) {
//		// the file ended before a required field
//	}
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSymbol, errors.KindTruncated).
//		Offset(118).
//		Detail("entry %d zeroes field", 1).
//		Cause(io.ErrUnexpectedEOF).
//		Build()
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
