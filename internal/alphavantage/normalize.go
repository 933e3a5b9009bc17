package alphavantage

import (
	"bytes"
	"encoding/json"
)

// Sentinel keys the upstream uses to report soft failures inside a 200
// body, in detection priority order. The upstream's error contract is
// informal; these key names must stay exactly as the API emits them.
var sentinels = []struct {
	key    string
	prefix string
}{
	{"Error Message", "API Error"},
	{"Note", "API Limit"},
	{"Information", "API Info"},
}

// normalize converts one upstream body into an envelope. Sentinel keys
// are checked before the payload is accepted; anything else passes
// through verbatim with no reshaping.
func normalize(body []byte) Envelope {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Failure("Request failed: empty response body")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		// Non-object JSON (arrays, scalars) is still a valid payload.
		if json.Valid(trimmed) {
			return Success(json.RawMessage(trimmed))
		}
		return Failure("Request failed: %v", err)
	}

	for _, s := range sentinels {
		raw, ok := probe[s.key]
		if !ok {
			continue
		}
		return Failure("%s: %s", s.prefix, sentinelText(raw))
	}
	return Success(json.RawMessage(trimmed))
}

// sentinelText unwraps a string sentinel value, falling back to the raw
// JSON for the odd payload where the value is not a string.
func sentinelText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
