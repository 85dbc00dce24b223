// Package proto defines the wire messages and service descriptors of the
// Auth and Greeting gRPC services.
//
// Messages are plain Go structs encoded in the protobuf binary format, so
// any protobuf client of auth.Auth and greeting.Greeting interoperates. The
// codec below replaces grpc's default "proto" codec: it encodes the
// messages of this package with protowire and hands every other value
// (health checks and the like) to the default codec.
package proto

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/encoding/protowire"
)

func init() {
	encoding.RegisterCodecV2(&codec{base: encoding.GetCodecV2(grpcproto.Name)})
}

// wireMessage is a proto3 message whose fields are all strings numbered
// 1..n in the order returned.
type wireMessage interface {
	wireFields() []*string
}

type codec struct {
	base encoding.CodecV2
}

func (c *codec) Marshal(v any) (mem.BufferSlice, error) {
	m, ok := v.(wireMessage)
	if !ok {
		return c.base.Marshal(v)
	}
	b, err := marshalWire(m)
	if err != nil {
		return nil, err
	}
	return mem.BufferSlice{mem.SliceBuffer(b)}, nil
}

func (c *codec) Unmarshal(data mem.BufferSlice, v any) error {
	m, ok := v.(wireMessage)
	if !ok {
		return c.base.Unmarshal(data, v)
	}
	return unmarshalWire(data.Materialize(), m)
}

func (c *codec) Name() string {
	return grpcproto.Name
}

func marshalWire(m wireMessage) ([]byte, error) {
	var b []byte
	for i, f := range m.wireFields() {
		if *f == "" {
			continue
		}
		if !utf8.ValidString(*f) {
			return nil, fmt.Errorf("proto: field %d of %T contains invalid UTF-8", i+1, m)
		}
		b = protowire.AppendTag(b, protowire.Number(i+1), protowire.BytesType)
		b = protowire.AppendString(b, *f)
	}
	return b, nil
}

// unmarshalWire resets m and decodes b into it. Unknown fields are skipped;
// a repeated field keeps the last value.
func unmarshalWire(b []byte, m wireMessage) error {
	fields := m.wireFields()
	for _, f := range fields {
		*f = ""
	}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("proto: %T: %w", m, protowire.ParseError(n))
		}
		b = b[n:]

		if typ == protowire.BytesType && num >= 1 && int(num) <= len(fields) {
			s, n := protowire.ConsumeString(b)
			if n < 0 {
				return fmt.Errorf("proto: %T field %d: %w", m, num, protowire.ParseError(n))
			}
			if !utf8.ValidString(s) {
				return fmt.Errorf("proto: %T field %d contains invalid UTF-8", m, num)
			}
			*fields[num-1] = s
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return fmt.Errorf("proto: %T field %d: %w", m, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}
