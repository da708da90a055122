package mocks

import (
	"context"

	"github.com/user/photoprint/pkg/ports"
)

// Normalizer is a mock implementation of ports.Normalizer. The default
// behavior tags the input bytes so tests can follow which variant landed in
// which slot.
type Normalizer struct {
	CleanFunc      func(ctx context.Context, data []byte) ([]byte, error)
	RotateCW90Func func(ctx context.Context, data []byte) ([]byte, error)

	CleanCalls  int
	RotateCalls int
}

func (m *Normalizer) Clean(ctx context.Context, data []byte) ([]byte, error) {
	m.CleanCalls++
	if m.CleanFunc != nil {
		return m.CleanFunc(ctx, data)
	}
	return append([]byte("clean:"), data...), nil
}

func (m *Normalizer) RotateCW90(ctx context.Context, data []byte) ([]byte, error) {
	m.RotateCalls++
	if m.RotateCW90Func != nil {
		return m.RotateCW90Func(ctx, data)
	}
	return append([]byte("rot90:"), data...), nil
}

var _ ports.Normalizer = (*Normalizer)(nil)
