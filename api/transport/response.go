package transport

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope wraps every operation response. Data is set on success, Code and
// Error on failure.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Meta   *Meta       `json:"meta,omitempty"`
}

// Meta identifies the request an envelope answers.
type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	Operation string `json:"operation,omitempty"`
}

// NewMeta returns nil when there is nothing to report, so the envelope omits
// the meta object entirely.
func NewMeta(requestID, operation string) *Meta {
	if requestID == "" && operation == "" {
		return nil
	}
	return &Meta{RequestID: requestID, Operation: operation}
}

func NewSuccess(data interface{}, meta *Meta) Envelope {
	return Envelope{
		Status: StatusSuccess,
		Data:   data,
		Meta:   meta,
	}
}

// NewError carries the domain error code and its message.
func NewError(code, message string, meta *Meta) Envelope {
	return Envelope{
		Status: StatusError,
		Code:   code,
		Error:  message,
		Meta:   meta,
	}
}
