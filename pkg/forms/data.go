package forms

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseJSONData extracts a raw field mapping from a JSON object body, the
// shape WithData expects. Nested objects and arrays are carried through as
// decoded values; the engine decides what to make of them.
func ParseJSONData(body []byte) (map[string]any, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("forms: parse data: invalid JSON")
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("forms: parse data: expected a JSON object, got %s", parsed.Type)
	}

	data := make(map[string]any)
	parsed.ForEach(func(key, value gjson.Result) bool {
		data[key.String()] = value.Value()
		return true
	})
	return data, nil
}
