package mocks

import (
	"fmt"
	"sync"

	"github.com/user/photoprint/pkg/ports"
)

// Logger is a mock implementation of ports.Logger that records messages.
type Logger struct {
	mu sync.Mutex

	DebugMessages []string
	InfoMessages  []string
	WarnMessages  []string
	ErrorMessages []string
}

// NewLogger creates a new recording logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (m *Logger) Debug(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DebugMessages = append(m.DebugMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) Info(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InfoMessages = append(m.InfoMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) Warn(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WarnMessages = append(m.WarnMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) Error(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ErrorMessages = append(m.ErrorMessages, fmt.Sprintf(msg, args...))
}

func (m *Logger) WithComponent(component string) ports.Logger {
	return m
}

var _ ports.Logger = (*Logger)(nil)
