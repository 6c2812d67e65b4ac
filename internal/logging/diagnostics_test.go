package logging

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewDiagnostics_NilLogger(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewDiagnostics(nil) did not panic")
		}
	}()
	NewDiagnostics(nil)
}

func TestZapDiagnostics_RuleFault(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	diag := NewDiagnostics(zap.New(core))

	ruleErr := errors.New("panic: index out of range")
	diag.RuleFault("no_command", "candidates", ruleErr)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Message != "rule fault" {
		t.Errorf("message = %q, want %q", entry.Message, "rule fault")
	}
	fields := entry.ContextMap()
	if fields["rule"] != "no_command" {
		t.Errorf("rule field = %v, want no_command", fields["rule"])
	}
	if fields["stage"] != "candidates" {
		t.Errorf("stage field = %v, want candidates", fields["stage"])
	}
}

func TestZapDiagnostics_RuleTimeout(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	diag := NewDiagnostics(zap.New(core))

	diag.RuleTimeout("slow_rule", 2*time.Second)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["rule"] != "slow_rule" {
		t.Errorf("rule field = %v, want slow_rule", fields["rule"])
	}
	if fields["budget"] != 2*time.Second {
		t.Errorf("budget field = %v, want 2s", fields["budget"])
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		logger, err := NewLogger("debug", "")
		if err != nil || logger == nil {
			t.Fatalf("NewLogger() = (%v, %v), want a logger", logger, err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Error("debug level not enabled")
		}
	})

	t.Run("bogus level falls back to warn", func(t *testing.T) {
		logger, err := NewLogger("shouting", "")
		if err != nil || logger == nil {
			t.Fatalf("NewLogger() = (%v, %v), want a logger", logger, err)
		}
		if logger.Core().Enabled(zapcore.InfoLevel) {
			t.Error("info level enabled, want warn fallback")
		}
		if !logger.Core().Enabled(zapcore.WarnLevel) {
			t.Error("warn level not enabled")
		}
	})
}
