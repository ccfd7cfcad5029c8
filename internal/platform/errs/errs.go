package errs

import "fmt"

// Kind categorizes application errors for reporting and HTTP status mapping.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates the caller supplied a malformed URL or argument (HTTP 400).
	InvalidInput
	// Unreachable indicates the page under test could not be fetched (HTTP 502).
	Unreachable
	// Timeout indicates the check ran out of time (HTTP 504).
	Timeout
	// ParsingFailed indicates the page could not be parsed (HTTP 500).
	ParsingFailed
	// BrokenLinks indicates the link validator found at least one broken link.
	BrokenLinks
	// Upstream indicates a third-party API answered with an error status.
	Upstream
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case Unreachable:
		return "unreachable"
	case Timeout:
		return "timeout"
	case ParsingFailed:
		return "parsing_failed"
	case BrokenLinks:
		return "broken_links"
	case Upstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind           Kind
	UpstreamStatus int // HTTP status code returned by the remote side, if any
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *AppError of the same Kind, so callers can
// match with errors.Is(err, &errs.AppError{Kind: errs.BrokenLinks}).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
