// Package grpcjson registers a JSON codec with gRPC so services can exchange
// plain Go structs. Clients select it with grpc.CallContentSubtype(Name).
package grpcjson

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const Name = "json"

type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(Codec{})
}

// CallOption makes a client call use this codec.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(Name)
}
