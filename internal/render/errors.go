package render

import "fmt"

// EncodeError indicates a text field contains a character outside the
// renderer's single-byte codec.
type EncodeError struct {
	Rune rune
	Text string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("render error: character %q is not representable in the PDF codec", e.Rune)
}

// Error wraps an internal PDF construction failure. No partial output is
// usable when it occurs.
type Error struct {
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("PDF generation failed: %v", e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
