package usecase

import (
	"encoding/json"
	"math"
	"strconv"
)

// Result wraps an operation outcome for transport. Non-finite floats, which
// JSON cannot represent, are encoded as the strings "NaN", "+Inf" and "-Inf".
type Result struct {
	Value any `json:"result"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	type plain struct {
		Value any `json:"result"`
	}
	if f, ok := r.Value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return json.Marshal(plain{Value: strconv.FormatFloat(f, 'g', -1, 64)})
	}
	return json.Marshal(plain{Value: r.Value})
}
