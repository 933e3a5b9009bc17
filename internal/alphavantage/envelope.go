package alphavantage

import (
	"encoding/json"
	"fmt"
)

// Envelope is the uniform result of one upstream query. Exactly one of
// Data or Error is set: failures of any category are absorbed here and
// surfaced as data for the caller to inspect, never raised.
type Envelope struct {
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Success wraps a verbatim upstream payload.
func Success(payload json.RawMessage) Envelope {
	return Envelope{Data: payload}
}

// Failure builds an error-shaped envelope.
func Failure(format string, args ...any) Envelope {
	return Envelope{Error: fmt.Sprintf(format, args...)}
}

// Failed reports whether the envelope carries an error.
func (e Envelope) Failed() bool {
	return e.Error != ""
}

// Render serializes the envelope as indented JSON for a text content block.
func (e Envelope) Render() string {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		fallback, _ := json.Marshal(Envelope{Error: fmt.Sprintf("Request failed: encode response: %v", err)})
		return string(fallback)
	}
	return string(out)
}
