// Package codec turns record values into stored bytes and back.
//
// Values are Go trees: map[string]any, []any and scalars. Decode must return
// that shape (maps keyed by string) so path reads and writes can walk it.
// A Decode error is not fatal: brainmem falls back to the raw stored text.
package codec

// Codec encodes/decodes record values for storage.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(b []byte) (any, error)
	Name() string
}
