package codec

import (
	"encoding/json"
	"fmt"
)

// JSON is the default codec. Strings are stored verbatim, everything else as
// JSON text, so plain text written by other tools reads back unchanged.
// The zero value is ready to use.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Name() string { return "json" }

func (JSON) Encode(v any) ([]byte, error) {
	switch s := v.(type) {
	case string:
		return []byte(s), nil
	case []byte:
		return s, nil
	}
	return json.Marshal(v)
}

func (JSON) Decode(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("json decode: %w", err)
	}
	return v, nil
}
