package mocks

import (
	"context"

	"github.com/user/photoprint/pkg/ports"
)

// BackgroundRemover is a mock implementation of ports.BackgroundRemover.
type BackgroundRemover struct {
	RemoveFunc func(ctx context.Context, image []byte, fileName string) ([]byte, error)

	Calls []string
}

func (m *BackgroundRemover) Remove(ctx context.Context, image []byte, fileName string) ([]byte, error) {
	m.Calls = append(m.Calls, fileName)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, image, fileName)
	}
	return append([]byte("nobg:"), image...), nil
}

var _ ports.BackgroundRemover = (*BackgroundRemover)(nil)
