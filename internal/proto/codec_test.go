package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/mem"
	"google.golang.org/protobuf/encoding/protowire"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func protoCodec(t *testing.T) encoding.CodecV2 {
	t.Helper()
	c := encoding.GetCodecV2(grpcproto.Name)
	require.NotNil(t, c)
	_, ok := c.(*codec)
	require.True(t, ok, "default proto codec is not replaced")
	return c
}

func TestCodec_MatchesProtobufEncoding(t *testing.T) {
	c := protoCodec(t)

	want, err := gproto.Marshal(wrapperspb.String("abc"))
	require.NoError(t, err)

	for _, m := range []any{&Token{AccessToken: "abc"}, &GreetRequest{Message: "abc"}, &GreetResponse{Message: "abc"}} {
		got, err := c.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, want, got.Materialize(), "%T", m)
	}
}

func TestCodec_DecodesProtobufEncoding(t *testing.T) {
	c := protoCodec(t)

	b, err := gproto.Marshal(wrapperspb.String("pong"))
	require.NoError(t, err)

	var got GreetResponse
	require.NoError(t, c.Unmarshal(mem.BufferSlice{mem.SliceBuffer(b)}, &got))
	assert.Equal(t, "pong", got.GetMessage())
}

func TestCodec_RoundTripFieldNumbers(t *testing.T) {
	c := protoCodec(t)

	in := &RegisterRequest{Firstname: "A", Lastname: "B", Email: "a@b.c", Password: "p"}
	data, err := c.Marshal(in)
	require.NoError(t, err)

	b := data.Materialize()
	for i, want := range []string{"A", "B", "a@b.c", "p"} {
		num, typ, n := protowire.ConsumeTag(b)
		require.Greater(t, n, 0)
		assert.Equal(t, protowire.Number(i+1), num)
		assert.Equal(t, protowire.BytesType, typ)
		b = b[n:]
		s, n := protowire.ConsumeString(b)
		require.Greater(t, n, 0)
		assert.Equal(t, want, s)
		b = b[n:]
	}
	assert.Empty(t, b)

	var got RegisterRequest
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, *in, got)
}

func TestCodec_EmptyFieldsAreOmitted(t *testing.T) {
	c := protoCodec(t)

	data, err := c.Marshal(&LoginRequest{Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x01, 'p'}, data.Materialize())

	got := LoginRequest{Email: "stale"}
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, LoginRequest{Password: "p"}, got)
}

func TestCodec_SkipsUnknownFields(t *testing.T) {
	c := protoCodec(t)

	var b []byte
	b = protowire.AppendTag(b, 7, protowire.VarintType)
	b = protowire.AppendVarint(b, 42)
	b = protowire.AppendTag(b, 1, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 1)
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "tok")

	var got Token
	require.NoError(t, c.Unmarshal(mem.BufferSlice{mem.SliceBuffer(b)}, &got))
	assert.Equal(t, "tok", got.GetAccessToken())
}

func TestCodec_RejectsMalformedInput(t *testing.T) {
	c := protoCodec(t)

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tag", []byte{0x80}},
		{"truncated length", []byte{0x0a, 0x05, 'a'}},
		{"invalid utf8", []byte{0x0a, 0x01, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Token
			assert.Error(t, c.Unmarshal(mem.BufferSlice{mem.SliceBuffer(tt.data)}, &got))
		})
	}

	_, err := c.Marshal(&GreetRequest{Message: string([]byte{0xff})})
	assert.Error(t, err)
}

func TestCodec_DelegatesOtherMessages(t *testing.T) {
	c := protoCodec(t)

	in, err := structpb.NewStruct(map[string]any{"k": "v"})
	require.NoError(t, err)

	data, err := c.Marshal(in)
	require.NoError(t, err)

	got := &structpb.Struct{}
	require.NoError(t, c.Unmarshal(data, got))
	assert.True(t, gproto.Equal(in, got))
}
