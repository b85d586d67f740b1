package sherlockapi

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// NewRequest builds a dynamic request message for a method from a map of
// field values. Keys use the wire (camelCase) field names; nested messages
// are nested maps, repeated fields are slices, enum values are given by
// their proto value name.
func NewRequest(m *Method, fields map[string]any) (*dynamicpb.Message, error) {
	msg, err := buildMessage(m.Input(), fields)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", m.RPCPath(), err)
	}
	return msg, nil
}

// buildMessage fills a dynamic message of the given descriptor from a
// generic field map keyed by wire field names.
func buildMessage(desc protoreflect.MessageDescriptor, fields map[string]any) (*dynamicpb.Message, error) {
	msg := dynamicpb.NewMessage(desc)
	if len(fields) == 0 {
		return msg, nil
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Decode converts a response message into a Go value. The target follows
// encoding/json conventions; protojson's field naming (camelCase, matching
// the wire schema) applies.
func Decode(msg proto.Message, out any) error {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ToMap converts a message into a generic map keyed by wire field names.
func ToMap(msg proto.Message) (map[string]any, error) {
	var out map[string]any
	if err := Decode(msg, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Invoke performs one blocking unary call. The request is built from
// fields; the response is decoded into out unless out is nil. Transport
// and server errors are returned as-is (gRPC status errors).
func Invoke(ctx context.Context, conn grpc.ClientConnInterface, m *Method, fields map[string]any, out any) error {
	req, err := NewRequest(m, fields)
	if err != nil {
		return err
	}

	resp := dynamicpb.NewMessage(m.Output())
	if err := conn.Invoke(ctx, m.RPCPath(), req, resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	return Decode(resp, out)
}
