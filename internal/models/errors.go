package models

import (
	"fmt"
	"strings"
)

// ErrorKind classifies every failure the export tooling can report.
type ErrorKind int

const (
	// KindNotFound means a directory or project path does not exist.
	KindNotFound ErrorKind = iota
	// KindAccessDenied means a path exists but could not be read.
	KindAccessDenied
	// KindInvalidPattern means a glob pattern is syntactically malformed.
	KindInvalidPattern
	// KindEntryResolution means a single glob candidate could not be resolved.
	KindEntryResolution
	// KindScaffoldIO means creating a mock project file or directory failed.
	KindScaffoldIO
	// KindInvalidArgumentCount means the export name formatter got the wrong arity.
	KindInvalidArgumentCount
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	case KindInvalidPattern:
		return "invalid pattern"
	case KindEntryResolution:
		return "entry resolution"
	case KindScaffoldIO:
		return "scaffold io"
	case KindInvalidArgumentCount:
		return "invalid argument count"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against an ExportError's kind.
var (
	ErrNotFound             = &ExportError{Kind: KindNotFound}
	ErrAccessDenied         = &ExportError{Kind: KindAccessDenied}
	ErrInvalidPattern       = &ExportError{Kind: KindInvalidPattern}
	ErrEntryResolution      = &ExportError{Kind: KindEntryResolution}
	ErrScaffoldIO           = &ExportError{Kind: KindScaffoldIO}
	ErrInvalidArgumentCount = &ExportError{Kind: KindInvalidArgumentCount}
)

// ExportError carries the failure kind together with the path, pattern or
// argument set that caused it.
type ExportError struct {
	Kind    ErrorKind // Which condition occurred
	Op      string    // Operation that failed (list, glob, scaffold, format)
	Path    string    // Offending path (optional)
	Pattern string    // Offending glob pattern (optional)
	Args    []string  // Offending argument set (optional)
	Err     error     // Underlying error (optional)
}

// Error implements the error interface for ExportError.
func (e *ExportError) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.String())
	switch {
	case e.Path != "":
		fmt.Fprintf(&sb, " %q", e.Path)
	case e.Pattern != "":
		fmt.Fprintf(&sb, " %q", e.Pattern)
	case e.Kind == KindInvalidArgumentCount:
		fmt.Fprintf(&sb, " (got %d: %q)", len(e.Args), e.Args)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an ExportError of the same kind, so that
// errors.Is(err, models.ErrNotFound) works on any wrapped ExportError.
func (e *ExportError) Is(target error) bool {
	t, ok := target.(*ExportError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}
