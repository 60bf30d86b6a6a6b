package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"campus-lost-found/internal/item"
)

// envelope is the wrapped response shape {success, data, total, message}.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
}

// DecodeList reads a list response, wrapped or bare. An object must carry a data
// or success field to count as a wrapper.
func DecodeList(body []byte) ([]map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", item.ErrInvalidPayload)
	}

	if body[0] == '[' {
		return decodeArray(body)
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	// A bare record or an unknown wrapper is not a list.
	if env.Data == nil && env.Success == nil {
		return nil, fmt.Errorf("%w: object without data", item.ErrInvalidPayload)
	}
	if isNull(env.Data) {
		return []map[string]any{}, nil
	}
	return decodeArray(env.Data)
}

// DecodeOne reads a single-record response, wrapped or bare. A null data field
// means the record does not exist.
func DecodeOne(body []byte) (map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || isNull(body) {
		return nil, item.ErrNotFound
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", item.ErrInvalidPayload, err)
	}

	if data, wrapped := probe["data"]; wrapped {
		if _, err := decodeEnvelope(body); err != nil {
			return nil, err
		}
		if isNull(data) {
			return nil, item.ErrNotFound
		}
		return decodeObject(data)
	}
	return decodeObject(body)
}

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return env, fmt.Errorf("%w: %v", item.ErrInvalidPayload, err)
	}
	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = "backend reported failure"
		}
		return env, fmt.Errorf("%w: %s", item.ErrInvalidPayload, msg)
	}
	return env, nil
}

func decodeArray(body []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raws []map[string]any
	if err := dec.Decode(&raws); err != nil {
		return nil, fmt.Errorf("%w: %v", item.ErrInvalidPayload, err)
	}
	if raws == nil {
		raws = []map[string]any{}
	}
	return raws, nil
}

func decodeObject(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", item.ErrInvalidPayload, err)
	}
	if raw == nil {
		return nil, item.ErrNotFound
	}
	return raw, nil
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}
