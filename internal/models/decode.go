package models

import "encoding/json"

// listEnvelope is the paginated wrapper some endpoints use instead of a bare
// array.
type listEnvelope struct {
	Results json.RawMessage `json:"results"`
}

// DecodeList normalizes the two list response shapes the backend produces,
// a bare JSON array or an envelope object with a "results" array, into a
// typed slice. Any other shape yields an empty slice, never an error: an
// unrecognized body is treated as "no data" so backend contract drift cannot
// crash a screen.
func DecodeList[T any](data []byte) []T {
	if len(data) == 0 {
		return []T{}
	}

	var bare []T
	if err := json.Unmarshal(data, &bare); err == nil {
		if bare == nil {
			return []T{}
		}
		return bare
	}

	var env listEnvelope
	if err := json.Unmarshal(data, &env); err == nil && len(env.Results) > 0 {
		var wrapped []T
		if err := json.Unmarshal(env.Results, &wrapped); err == nil && wrapped != nil {
			return wrapped
		}
	}

	return []T{}
}

// MutationEnvelope is the {message, data} wrapper mutating endpoints may use
// around the created/updated entity.
type MutationEnvelope[T any] struct {
	Message string `json:"mensaje"`
	Data    *T     `json:"data,omitempty"`
}

// DecodeEntity decodes either a bare entity or a {mensaje, data} envelope
// around one. Shape problems surface as an error here because mutating calls
// must never silently misreport what the backend returned.
func DecodeEntity[T any](data []byte) (*T, string, error) {
	var env MutationEnvelope[T]
	if err := json.Unmarshal(data, &env); err == nil && env.Data != nil {
		return env.Data, env.Message, nil
	}

	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, "", err
	}
	return &entity, "", nil
}
