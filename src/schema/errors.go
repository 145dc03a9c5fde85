package schema

import "fmt"

// ValidationError reports the first schema violation found in a document.
// Path is the dotted location of the offending value (e.g. "sources.torch").
type ValidationError struct {
	Path   string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Path, e.Reason, e.Value)
}

// NotFoundError reports a lookup of a name the schema does not declare.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}
