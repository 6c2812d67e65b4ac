package logging

import (
	"time"

	"go.uber.org/zap"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

// ZapDiagnostics writes the pipeline's non-fatal events as structured
// zap records. It implements the ports.Diagnostics interface.
type ZapDiagnostics struct {
	log *zap.Logger
}

// NewDiagnostics creates a zap-backed diagnostics sink. It panics if
// log is nil.
func NewDiagnostics(log *zap.Logger) ports.Diagnostics {
	if log == nil {
		panic("logger cannot be nil")
	}
	return &ZapDiagnostics{log: log}
}

// RuleFault implements the ports.Diagnostics interface.
func (d *ZapDiagnostics) RuleFault(rule, stage string, err error) {
	d.log.Warn("rule fault",
		zap.String("rule", rule),
		zap.String("stage", stage),
		zap.Error(err),
	)
}

// RuleTimeout implements the ports.Diagnostics interface.
func (d *ZapDiagnostics) RuleTimeout(rule string, budget time.Duration) {
	d.log.Warn("rule timeout",
		zap.String("rule", rule),
		zap.Duration("budget", budget),
	)
}
