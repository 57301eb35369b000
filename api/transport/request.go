package transport

import (
	"bytes"
	"encoding/json"
)

// DecodeParams reads a JSON object body. An empty body yields no parameters.
func DecodeParams(body []byte) (map[string]any, error) {
	params := map[string]any{}
	if len(bytes.TrimSpace(body)) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, err
	}
	if params == nil {
		// a literal null body
		params = map[string]any{}
	}
	return params, nil
}
