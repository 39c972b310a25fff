package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// maxDataDepth bounds how many "data" envelopes are peeled off. Paginated
// responses nest the list one level deeper than plain resource collections.
const maxDataDepth = 2

// normalizeList accepts either a bare JSON array or an object carrying the
// array under "data" and returns the array.
func normalizeList(body []byte) (json.RawMessage, error) {
	raw := json.RawMessage(bytes.TrimSpace(body))
	for depth := 0; ; depth++ {
		if len(raw) == 0 {
			return nil, fmt.Errorf("%w: empty body", ErrUnexpectedPayload)
		}
		switch raw[0] {
		case '[':
			return raw, nil
		case '{':
			if depth == maxDataDepth {
				return nil, fmt.Errorf("%w: no list found", ErrUnexpectedPayload)
			}
			inner, err := dataField(raw)
			if err != nil {
				return nil, err
			}
			raw = inner
		default:
			if bytes.Equal(raw, []byte("null")) {
				return json.RawMessage("[]"), nil
			}
			return nil, fmt.Errorf("%w: expected list or object", ErrUnexpectedPayload)
		}
	}
}

// unwrapData returns the object under "data" when present, otherwise body.
func unwrapData(body []byte) (json.RawMessage, error) {
	raw := json.RawMessage(bytes.TrimSpace(body))
	if len(raw) == 0 || raw[0] != '{' {
		return nil, fmt.Errorf("%w: expected object", ErrUnexpectedPayload)
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}
	inner := bytes.TrimSpace(envelope.Data)
	if len(inner) > 0 && inner[0] == '{' {
		return inner, nil
	}
	return raw, nil
}

func dataField(raw json.RawMessage) (json.RawMessage, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}
	inner := bytes.TrimSpace(envelope.Data)
	if len(inner) == 0 {
		return nil, fmt.Errorf("%w: missing data field", ErrUnexpectedPayload)
	}
	return inner, nil
}
