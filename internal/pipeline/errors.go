package pipeline

import (
	"errors"
	"fmt"
)

// Export failure kinds
var (
	ErrInvalidDestination = errors.New("invalid destination")
	ErrFileCreate         = errors.New("cannot create output file")
	ErrWrite              = errors.New("write failed")
)

// Import failure kinds
var (
	ErrFileOpen          = errors.New("cannot open input file")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformed         = errors.New("malformed inventory file")
	ErrRead              = errors.New("read failed")
)

// ExportError wraps an export failure with its kind and target path.
type ExportError struct {
	Kind error
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ExportError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ImportError wraps an import failure with its kind and source path.
type ImportError struct {
	Kind error
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ImportError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
