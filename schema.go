package femtoclaw

// JSON Schema renditions of the two protocol forms. These constants
// document the wire contract for external tooling; the Validator performs
// its checks directly and never interprets them.

// MessageSchema describes the text-message form.
const MessageSchema = `{
    "type": "object",
    "properties": {
        "message": {
            "type": "object",
            "properties": {
                "content": { "type": "string", "minLength": 1 }
            },
            "required": ["content"]
        }
    },
    "required": ["message"],
    "additionalProperties": false
}`

// ToolCallSchema describes the tool-invocation form.
const ToolCallSchema = `{
    "type": "object",
    "properties": {
        "tool_call": {
            "type": "object",
            "properties": {
                "tool": { "type": "string", "minLength": 1 },
                "args": { "type": "object" }
            },
            "required": ["tool", "args"]
        }
    },
    "required": ["tool_call"],
    "additionalProperties": false
}`
