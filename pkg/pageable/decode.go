package pageable

import (
	"encoding/json"
	"errors"
	"fmt"
)

// shape holds just enough of an envelope to tell the two formats apart.
type shape struct {
	Page     json.RawMessage `json:"page"`
	Pageable json.RawMessage `json:"pageable"`
	Total    json.RawMessage `json:"totalElements"`
}

// Decode parses a page envelope in either format. A top-level "page" object
// selects the current format; "pageable" or a top-level "totalElements"
// selects the legacy one.
func Decode[T any](data []byte) (Page[T], error) {
	var s shape
	if err := json.Unmarshal(data, &s); err != nil {
		return Page[T]{}, errors.Join(ErrDecodeFailed, err)
	}

	switch {
	case isObject(s.Page):
		var p Page[T]
		if err := json.Unmarshal(data, &p); err != nil {
			return Page[T]{}, errors.Join(ErrDecodeFailed, err)
		}
		return p, nil

	case isObject(s.Pageable) || len(s.Total) > 0:
		var l Legacy[T]
		if err := json.Unmarshal(data, &l); err != nil {
			return Page[T]{}, errors.Join(ErrDecodeFailed, err)
		}
		return l.Page(), nil

	default:
		return Page[T]{}, fmt.Errorf("%w: no page metadata", ErrUnknownShape)
	}
}

func isObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}
