package telephony

import (
	"encoding/json"
	"errors"
	"strings"
)

// RejectedError is returned when the provider answered and refused the request
// (bad number, insufficient balance, invalid URL, unknown id, ...).
//
// It is the only error kind the gateway converts into a result payload.
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

// AsRejected returns the provider rejection err is, or wraps.
func AsRejected(err error) (*RejectedError, bool) {
	var rej *RejectedError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// rejectionMessage extracts the provider's message from a raw error body.
// Plivo error bodies are JSON objects carrying an "error" field; anything else
// is returned trimmed and unchanged.
func rejectionMessage(raw string) string {
	raw = strings.TrimSpace(raw)
	var body struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err == nil {
		switch v := body.Error.(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
	}
	return raw
}
