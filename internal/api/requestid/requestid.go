// Package requestid contains utilities for handling the request id.
package requestid

import (
	"context"
	"encoding/binary"

	"github.com/oklog/ulid/v2"
)

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

const entropyBits = 16

// New returns a time-ordered request id: the millisecond ULID timestamp in
// the high bits and ULID entropy in the low 16 bits.
func New() uint64 {
	id := ulid.Make()
	entropy := binary.BigEndian.Uint16(id[6:8])
	return id.Time()<<entropyBits | uint64(entropy)
}

// InjectRequestID injects a given requestID into a context.
func InjectRequestID(ctx context.Context, requestID uint64) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID extracts a requestID from a context if it exists.
// If none is found, then 0 is returned.
func ExtractRequestID(ctx context.Context) uint64 {
	if v, ok := ctx.Value(requestIDKey).(uint64); ok {
		return v
	}
	return 0
}
