package history

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
	"github.com/haiphamcoder/thefuck-go/internal/core/testutil"
)

// mockFileFinder is a fixed-result ports.HistoryFileFinder.
type mockFileFinder struct {
	path string
	err  error
}

func (m mockFileFinder) Find() (string, error) {
	return m.path, m.err
}

func TestNewHistoryProvider(t *testing.T) {
	executor := &testutil.MockCommandExecutor{}

	t.Run("nil executor", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/zsh")
		if _, err := NewHistoryProvider(nil, mockFileFinder{path: "/tmp/hist"}); err == nil {
			t.Error("NewHistoryProvider(nil, ...) expected an error, got nil")
		}
	})

	t.Run("missing SHELL", func(t *testing.T) {
		t.Setenv("SHELL", "")
		if _, err := NewHistoryProvider(executor, mockFileFinder{path: "/tmp/hist"}); err == nil {
			t.Error("NewHistoryProvider without SHELL expected an error, got nil")
		}
	})

	t.Run("missing history file is not fatal", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/zsh")
		hp, err := NewHistoryProvider(executor, mockFileFinder{err: errors.New("nothing found")})
		if err != nil {
			t.Fatalf("NewHistoryProvider unexpected error: %v", err)
		}
		if !strings.Contains(hp.GetSourceIdentifier(), "not found") {
			t.Errorf("GetSourceIdentifier() = %q, want a not-found note", hp.GetSourceIdentifier())
		}
		if _, err := hp.LastCommand(); err == nil {
			t.Error("LastCommand() without a history file expected an error, got nil")
		}
	})

	t.Run("found history file", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/zsh")
		hp, err := NewHistoryProvider(executor, mockFileFinder{path: "/home/u/.zsh_history"})
		if err != nil {
			t.Fatalf("NewHistoryProvider unexpected error: %v", err)
		}
		if !strings.Contains(hp.GetSourceIdentifier(), ".zsh_history") {
			t.Errorf("GetSourceIdentifier() = %q, want it to name the file", hp.GetSourceIdentifier())
		}
	})
}

func TestHistoryProvider_LastCommand(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")

	tests := []struct {
		name    string
		tail    string
		want    string
		wantErr bool
	}{
		{
			name: "newest entry",
			tail: "ls -la\ngit stauts\n",
			want: "git stauts",
		},
		{
			name: "skips the corrector's own invocation",
			tail: "git stauts\nthefuck fix\n",
			want: "git stauts",
		},
		{
			name: "skips corrector invoked by path",
			tail: "git stauts\n/usr/local/bin/thefuck fix\n",
			want: "git stauts",
		},
		{
			name: "skips blank lines",
			tail: "git stauts\n\n   \n",
			want: "git stauts",
		},
		{
			name: "strips zsh extended metadata",
			tail: ": 1700000000:0;git stauts\n",
			want: "git stauts",
		},
		{
			name:    "nothing usable",
			tail:    "\nthefuck fix\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := &testutil.MockCommandExecutor{
				ExecuteFunc: func(ctx context.Context, shellName, commandLine string) (ports.ExecutionResult, error) {
					return ports.ExecutionResult{Stdout: tt.tail}, nil
				},
			}
			hp, err := NewHistoryProvider(executor, mockFileFinder{path: "/home/u/.zsh_history"})
			if err != nil {
				t.Fatalf("NewHistoryProvider unexpected error: %v", err)
			}

			got, err := hp.LastCommand()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("LastCommand() = %q, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LastCommand() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LastCommand() = %q, want %q", got, tt.want)
			}
			if len(executor.Calls) != 1 || !strings.Contains(executor.Calls[0], "tail -n 10") {
				t.Errorf("executor calls = %v, want one tail invocation", executor.Calls)
			}
		})
	}

	t.Run("executor failure", func(t *testing.T) {
		executor := &testutil.MockCommandExecutor{
			ExecuteFunc: func(ctx context.Context, shellName, commandLine string) (ports.ExecutionResult, error) {
				return ports.ExecutionResult{}, errors.New("shell unavailable")
			},
		}
		hp, err := NewHistoryProvider(executor, mockFileFinder{path: "/home/u/.zsh_history"})
		if err != nil {
			t.Fatalf("NewHistoryProvider unexpected error: %v", err)
		}
		if _, err := hp.LastCommand(); err == nil {
			t.Error("LastCommand() with a failing executor expected an error, got nil")
		}
	})

	t.Run("tail exits non-zero", func(t *testing.T) {
		executor := &testutil.MockCommandExecutor{
			ExecuteFunc: func(ctx context.Context, shellName, commandLine string) (ports.ExecutionResult, error) {
				return ports.ExecutionResult{ExitCode: 1, Stderr: "tail: cannot open"}, nil
			},
		}
		hp, err := NewHistoryProvider(executor, mockFileFinder{path: "/home/u/.zsh_history"})
		if err != nil {
			t.Fatalf("NewHistoryProvider unexpected error: %v", err)
		}
		if _, err := hp.LastCommand(); err == nil {
			t.Error("LastCommand() with a failing tail expected an error, got nil")
		}
	})
}
