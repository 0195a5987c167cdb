package resourcepath

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single path segment: anything but separators,
// backslashes and control characters.
var segmentRegex = regexp.MustCompile(`^[^/\\\x00-\x1f\x7f]+$`)

// InvalidPathError reports a resource path that is not syntactically well formed.
type InvalidPathError struct {
	Path     Path
	Reason   string
	Location string // where the path was found, e.g. "components[Light].component"
}

// Error implements the error interface.
func (e *InvalidPathError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("invalid resource path %q at %s: %s", e.Path, e.Location, e.Reason)
	}
	return fmt.Sprintf("invalid resource path %q: %s", e.Path, e.Reason)
}

// Validator checks paths for well-formedness. The zero value accepts any
// absolute path; Namespaces restricts the accepted first segment.
type Validator struct {
	Namespaces []string
}

// NewValidator creates a validator accepting the given namespaces. Leading
// and trailing separators are stripped, so "/src" and "src" are equivalent.
func NewValidator(namespaces ...string) Validator {
	v := Validator{}
	for _, ns := range namespaces {
		ns = strings.Trim(ns, Separator)
		if ns != "" {
			v.Namespaces = append(v.Namespaces, ns)
		}
	}
	return v
}

// isValidSegmentName rejects relative traversal segments.
func isValidSegmentName(name string) bool {
	return name != "." && name != ".."
}

// Validate returns an *InvalidPathError if p is not well formed.
func (v Validator) Validate(p Path) error {
	invalid := func(reason string) error {
		return &InvalidPathError{Path: p, Reason: reason}
	}

	if p.IsZero() {
		return invalid("path cannot be empty")
	}
	if !strings.HasPrefix(string(p), Separator) {
		return invalid("path must be absolute (start with '/')")
	}

	segments := p.Segments()
	for _, segment := range segments {
		if segment == "" {
			return invalid("path contains an empty segment")
		}
		if !segmentRegex.MatchString(segment) {
			return invalid(fmt.Sprintf("invalid path segment %q", segment))
		}
		if !isValidSegmentName(segment) {
			return invalid(fmt.Sprintf("relative segment %q is not allowed", segment))
		}
	}

	if len(v.Namespaces) == 0 {
		return nil
	}
	if len(segments) < 2 {
		return invalid("path must name an asset below a namespace")
	}
	for _, ns := range v.Namespaces {
		if segments[0] == ns {
			return nil
		}
	}
	return invalid(fmt.Sprintf("namespace %q is not one of [%s]", segments[0], strings.Join(v.Namespaces, ", ")))
}
