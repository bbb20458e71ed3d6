// Package femtoclaw validates messages exchanged between an agent runtime
// and its tool-execution layer against the FemtoClaw Protocol Specification
// (FC-03).
//
// Every protocol message is a JSON object carrying exactly one of two
// recognized top-level keys:
//
//	{ "message":   { "content": "<non-empty string>" } }
//	{ "tool_call": { "tool": "<non-empty string>", "args": { ... } } }
//
// The protocol is closed-world: a message is either a text message or a
// tool invocation, never both, never neither, and never anything else at
// the top level. The Validator turns a generic JSON value (or raw JSON
// text) into a ProtocolOutput, or rejects it with a ValidationError that
// pinpoints the offending field.
//
// Validation is hand-rolled rather than delegated to a JSON Schema engine:
// the rule set is small and fixed, and the diagnostics need to name the
// exact field and failure kind. The schema constants in this package
// document the two forms but are never interpreted at runtime.
package femtoclaw
