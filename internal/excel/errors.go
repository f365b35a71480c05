package excel

import "fmt"

// InvalidRangeError reports a malformed range string or a requested range
// that falls outside the sheet's populated area. Tool handlers surface it
// as an invalid-argument result rather than an internal failure.
type InvalidRangeError struct {
	Range  string
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range %q: %s", e.Range, e.Reason)
}

// UpstreamError wraps a failure from the workbook backend.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// SheetNotFoundError reports a sheet name that does not exist in the workbook.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found", e.Sheet)
}
