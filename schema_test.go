package femtoclaw

import (
	"encoding/json"
	"testing"
)

func TestSchemaConstants_AreValidJSON(t *testing.T) {
	schemas := map[string]string{
		"MessageSchema":  MessageSchema,
		"ToolCallSchema": ToolCallSchema,
	}
	for name, schema := range schemas {
		t.Run(name, func(t *testing.T) {
			var parsed map[string]any
			if err := json.Unmarshal([]byte(schema), &parsed); err != nil {
				t.Fatalf("%s is not valid JSON: %v", name, err)
			}
			if parsed["type"] != "object" {
				t.Errorf("%s type = %v, want object", name, parsed["type"])
			}
		})
	}
}
