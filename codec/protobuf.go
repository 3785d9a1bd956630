package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Protobuf stores every record as a google.protobuf.Value message.
// Numbers come back as float64, same as JSON.
type Protobuf struct{}

var _ Codec = Protobuf{}

func (Protobuf) Name() string { return "protobuf" }

func (Protobuf) Encode(v any) ([]byte, error) {
	pv, err := structpb.NewValue(v)
	if err != nil {
		// structs and typed maps: normalize through JSON first
		tree, nerr := normalize(v)
		if nerr != nil {
			return nil, fmt.Errorf("protobuf encode: %w", err)
		}
		if pv, err = structpb.NewValue(tree); err != nil {
			return nil, fmt.Errorf("protobuf encode: %w", err)
		}
	}
	return proto.Marshal(pv)
}

func (Protobuf) Decode(b []byte) (any, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(b, &pv); err != nil {
		return nil, fmt.Errorf("protobuf decode: %w", err)
	}
	if pv.GetKind() == nil {
		return nil, fmt.Errorf("protobuf decode: empty value")
	}
	return pv.AsInterface(), nil
}

func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	err = json.Unmarshal(b, &out)
	return out, err
}
