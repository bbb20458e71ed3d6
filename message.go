package femtoclaw

import (
	"encoding/json"
	"fmt"
)

// OutputKind identifies which protocol form a ProtocolOutput holds.
type OutputKind string

const (
	// KindMessage is the plain text-message form.
	KindMessage OutputKind = "message"
	// KindToolCall is the tool-invocation form.
	KindToolCall OutputKind = "tool_call"
)

// String returns the string representation of the OutputKind.
func (k OutputKind) String() string {
	return string(k)
}

// TextMessage is the text form of a protocol message.
// Content is guaranteed non-empty when produced by a Validator.
type TextMessage struct {
	Content string
}

// ToolInvocation is the tool-call form of a protocol message.
// Tool is guaranteed non-empty when produced by a Validator. Args is the
// raw argument object carried through verbatim; the validator checks only
// that it is a JSON object, never its contents.
type ToolInvocation struct {
	Tool string
	Args map[string]any
}

// ProtocolOutput is a protocol message proven to match exactly one of the
// two permitted forms. Values are constructed by a successful validation
// and are immutable afterwards; validity is established at construction
// and never re-checked.
//
// The zero value holds neither form. All projections are total: they
// return ok=false rather than panicking on the wrong (or zero) variant.
type ProtocolOutput struct {
	msg  *TextMessage
	call *ToolInvocation
}

// newMessageOutput wraps a validated text message.
func newMessageOutput(content string) ProtocolOutput {
	return ProtocolOutput{msg: &TextMessage{Content: content}}
}

// newToolCallOutput wraps a validated tool invocation.
func newToolCallOutput(tool string, args map[string]any) ProtocolOutput {
	return ProtocolOutput{call: &ToolInvocation{Tool: tool, Args: args}}
}

// Kind reports which form the output holds. The zero value reports "".
func (o ProtocolOutput) Kind() OutputKind {
	switch {
	case o.msg != nil:
		return KindMessage
	case o.call != nil:
		return KindToolCall
	default:
		return ""
	}
}

// IsMessage reports whether the output is a text message.
func (o ProtocolOutput) IsMessage() bool {
	return o.msg != nil
}

// IsToolCall reports whether the output is a tool invocation.
func (o ProtocolOutput) IsToolCall() bool {
	return o.call != nil
}

// Message returns the text message and true, or the zero TextMessage and
// false if the output is not the text form.
func (o ProtocolOutput) Message() (TextMessage, bool) {
	if o.msg == nil {
		return TextMessage{}, false
	}
	return *o.msg, true
}

// ToolCall returns the tool invocation and true, or the zero
// ToolInvocation and false if the output is not the tool-call form.
func (o ProtocolOutput) ToolCall() (ToolInvocation, bool) {
	if o.call == nil {
		return ToolInvocation{}, false
	}
	return *o.call, true
}

// MarshalJSON re-emits the canonical wire shape for the held form, so a
// validated output round-trips through ValidateText to an equal result.
func (o ProtocolOutput) MarshalJSON() ([]byte, error) {
	switch {
	case o.msg != nil:
		return json.Marshal(map[string]any{
			string(KindMessage): map[string]any{"content": o.msg.Content},
		})
	case o.call != nil:
		args := o.call.Args
		if args == nil {
			args = map[string]any{}
		}
		return json.Marshal(map[string]any{
			string(KindToolCall): map[string]any{"tool": o.call.Tool, "args": args},
		})
	default:
		return nil, fmt.Errorf("cannot marshal zero ProtocolOutput")
	}
}
