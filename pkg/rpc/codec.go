// Package rpc registers the JSON codec the internal gRPC surface runs
// on. The service bindings under rpc/ are hand-maintained plain structs,
// so requests and responses travel as JSON frames instead of protobuf.
// Servers pick the codec up from the registry; clients must dial with
// grpc.CallContentSubtype(rpc.Name).
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const Name = "json"

func init() {
	encoding.RegisterCodec(codec{})
}

type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (codec) Name() string { return Name }
