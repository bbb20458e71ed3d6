package femtoclaw

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Top-level field names of the two protocol forms.
const (
	fieldMessage  = "message"
	fieldToolCall = "tool_call"
)

// recognizedFields is the closed set of permitted top-level keys.
var recognizedFields = map[string]bool{
	fieldMessage:  true,
	fieldToolCall: true,
}

// Validator checks generic JSON values against the FC-03 protocol contract.
// It holds no mutable state: a single Validator is safe to share across
// any number of concurrent callers, and every call is independent.
type Validator struct {
	fields map[string]bool
}

// NewValidator returns a Validator for the fixed FC-03 field set.
func NewValidator() *Validator {
	return &Validator{fields: recognizedFields}
}

// ValidateText parses input as JSON and validates the result. A parse
// failure is reported as KindMalformedInput wrapping the json error.
func (v *Validator) ValidateText(input string) (ProtocolOutput, error) {
	return v.ValidateBytes([]byte(input))
}

// ValidateBytes parses data as JSON and validates the result.
func (v *Validator) ValidateBytes(data []byte) (ProtocolOutput, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return ProtocolOutput{}, &ValidationError{
			Kind:    KindMalformedInput,
			Code:    KindMalformedInput.Code(),
			Message: fmt.Sprintf("invalid JSON: %v", err),
			Err:     err,
		}
	}
	return v.Validate(value)
}

// Validate checks a generic JSON value (the shape encoding/json produces
// when unmarshalling into any) against the protocol contract and returns
// the typed form it matched.
//
// Checks run in a fixed order, each short-circuiting on failure:
//
//  1. the value must be a JSON object
//  2. exactly one of "message" / "tool_call" must be present
//  3. no top-level key outside the recognized set may be present
//  4. the fields of the matched form must be present, correctly typed,
//     and non-empty where required
//
// Dispatch is by explicit key presence, never try-one-form-then-the-other:
// a tool_call with a missing "tool" must be diagnosed as exactly that, not
// as "matched neither form".
func (v *Validator) Validate(value any) (ProtocolOutput, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return ProtocolOutput{}, newError(KindNotAnObject, "",
			fmt.Sprintf("protocol message must be an object, got %s", jsonTypeName(value)))
	}

	hasMessage := hasKey(obj, fieldMessage)
	hasToolCall := hasKey(obj, fieldToolCall)

	if hasMessage && hasToolCall {
		return ProtocolOutput{}, newError(KindExclusivityViolation, "",
			`exactly one of "message" or "tool_call" must be present, not both`)
	}
	if !hasMessage && !hasToolCall {
		return ProtocolOutput{}, newError(KindExclusivityViolation, "",
			`either "message" or "tool_call" is required`)
	}

	// The top level is closed: extraneous keys are reported before any
	// shape-specific check, so noise next to a recognized key never gets
	// misdiagnosed as a shape defect.
	for _, key := range sortedKeys(obj) {
		if !v.fields[key] {
			return ProtocolOutput{}, newError(KindUnknownField, key,
				fmt.Sprintf("unknown top-level field %q", key))
		}
	}

	if hasMessage {
		return validateMessage(obj[fieldMessage])
	}
	return validateToolCall(obj[fieldToolCall])
}

// validateMessage checks the text-message form.
func validateMessage(value any) (ProtocolOutput, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return ProtocolOutput{}, newError(KindNotAnObject, fieldMessage,
			fmt.Sprintf(`"message" must be an object, got %s`, jsonTypeName(value)))
	}

	path := fieldMessage + ".content"
	raw, ok := obj["content"]
	if !ok {
		return ProtocolOutput{}, newError(KindMissingField, path,
			`missing required field "content"`)
	}
	content, ok := raw.(string)
	if !ok {
		return ProtocolOutput{}, newError(KindInvalidFieldType, path,
			fmt.Sprintf(`"content" must be a string, got %s`, jsonTypeName(raw)))
	}
	if content == "" {
		return ProtocolOutput{}, newError(KindEmptyValue, path,
			`"content" must not be empty`)
	}

	return newMessageOutput(content), nil
}

// validateToolCall checks the tool-invocation form.
func validateToolCall(value any) (ProtocolOutput, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return ProtocolOutput{}, newError(KindNotAnObject, fieldToolCall,
			fmt.Sprintf(`"tool_call" must be an object, got %s`, jsonTypeName(value)))
	}

	toolPath := fieldToolCall + ".tool"
	rawTool, ok := obj["tool"]
	if !ok {
		return ProtocolOutput{}, newError(KindMissingField, toolPath,
			`missing required field "tool"`)
	}
	tool, ok := rawTool.(string)
	if !ok {
		return ProtocolOutput{}, newError(KindInvalidFieldType, toolPath,
			fmt.Sprintf(`"tool" must be a string, got %s`, jsonTypeName(rawTool)))
	}
	if tool == "" {
		return ProtocolOutput{}, newError(KindEmptyValue, toolPath,
			`"tool" must not be empty`)
	}

	argsPath := fieldToolCall + ".args"
	rawArgs, ok := obj["args"]
	if !ok {
		return ProtocolOutput{}, newError(KindMissingField, argsPath,
			`missing required field "args"`)
	}
	// Only the type is checked; the argument object itself is opaque to
	// the protocol and passed through verbatim.
	args, ok := rawArgs.(map[string]any)
	if !ok {
		return ProtocolOutput{}, newError(KindInvalidFieldType, argsPath,
			fmt.Sprintf(`"args" must be an object, got %s`, jsonTypeName(rawArgs)))
	}

	return newToolCallOutput(tool, args), nil
}

// hasKey checks if a key exists in a map.
func hasKey(m map[string]any, key string) bool {
	_, ok := m[key]
	return ok
}

// sortedKeys returns the map keys in sorted order, so the reported
// unknown field is deterministic when several are present.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsonTypeName names the JSON type of a decoded value for diagnostics.
func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
