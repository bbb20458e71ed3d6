package femtoclaw

import "fmt"

// ErrorKind classifies a validation failure. The set is closed; callers
// are expected to match on the kind (or error code) rather than parse the
// message text.
type ErrorKind string

const (
	// KindMalformedInput means the raw text was not syntactically valid JSON.
	KindMalformedInput ErrorKind = "malformed_input"
	// KindNotAnObject means a value that must be a JSON object was not one.
	// Path "" is the top-level value; otherwise the path names the field.
	KindNotAnObject ErrorKind = "not_an_object"
	// KindExclusivityViolation means both or neither of the two recognized
	// top-level keys were present.
	KindExclusivityViolation ErrorKind = "exclusivity_violation"
	// KindUnknownField means a top-level key outside the recognized set
	// was present.
	KindUnknownField ErrorKind = "unknown_field"
	// KindMissingField means a required nested field was absent.
	KindMissingField ErrorKind = "missing_field"
	// KindInvalidFieldType means a required field had the wrong JSON type.
	KindInvalidFieldType ErrorKind = "invalid_field_type"
	// KindEmptyValue means a correctly-typed string field was zero-length.
	KindEmptyValue ErrorKind = "empty_value"
)

// errorCodes maps each kind to its stable FC-03 diagnostic code.
var errorCodes = map[ErrorKind]string{
	KindMalformedInput:       "FC-001",
	KindNotAnObject:          "FC-002",
	KindExclusivityViolation: "FC-003",
	KindUnknownField:         "FC-004",
	KindMissingField:         "FC-005",
	KindInvalidFieldType:     "FC-006",
	KindEmptyValue:           "FC-007",
}

// Code returns the stable diagnostic code for the kind, e.g. "FC-003".
func (k ErrorKind) Code() string {
	return errorCodes[k]
}

// String returns the string representation of the ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// ValidationError describes exactly why a value failed protocol
// validation. Kind and Code are the machine-matchable surface; Message is
// human-readable for logging; Path is the dotted path to the offending
// field ("tool_call.args"), or "" when the failure concerns the value as
// a whole.
type ValidationError struct {
	Kind    ErrorKind
	Code    string
	Path    string
	Message string
	Err     error // underlying cause, set for malformed input
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newError builds a ValidationError for the given kind and field path.
func newError(kind ErrorKind, path, message string) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Code:    kind.Code(),
		Path:    path,
		Message: message,
	}
}
