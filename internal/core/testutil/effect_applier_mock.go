package testutil

import (
	"context"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// MockEffectApplier is a mock implementation of the
// ports.EffectApplier interface. Applied effects are recorded in call
// order.
type MockEffectApplier struct {
	ApplyFunc func(ctx context.Context, effect correction.SideEffect) error
	Applied   []correction.SideEffect
}

// Apply mocks the Apply method.
func (m *MockEffectApplier) Apply(ctx context.Context, effect correction.SideEffect) error {
	if m.ApplyFunc != nil {
		if err := m.ApplyFunc(ctx, effect); err != nil {
			return err
		}
	}
	m.Applied = append(m.Applied, effect)
	return nil
}

// Ensure MockEffectApplier implements the ports.EffectApplier interface.
var _ ports.EffectApplier = (*MockEffectApplier)(nil)
