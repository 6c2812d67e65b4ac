package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/testutil"
)

func testSet() correction.RankedSet {
	return correction.NewRankedSet([]correction.Candidate{
		{
			CommandText: "git push --set-upstream origin master",
			SourceRule:  "git_push_set_upstream",
			Score:       0.83,
		},
		{
			CommandText: "cd /tmp/scratch",
			SideEffects: []correction.SideEffect{
				correction.RunCommand("mkdir -p /tmp/scratch"),
				correction.SetEnv("SCRATCH", "/tmp/scratch"),
			},
			SourceRule: "cd_mkdir",
			Score:      0.5,
		},
	})
}

func TestNewSession_NilApplier(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("NewSession did not panic with a nil applier")
		}
		if msg, ok := r.(string); !ok || msg != "applier cannot be nil" {
			t.Errorf("panic value = %v, want %q", r, "applier cannot be nil")
		}
	}()
	NewSession(testSet(), nil)
}

func TestSession_Select_Applied(t *testing.T) {
	applier := &testutil.MockEffectApplier{}
	s := NewSession(testSet(), applier)

	outcome := s.Select(context.Background(), 0)

	if outcome.State != correction.StateApplied {
		t.Fatalf("Select(0).State = %v, want %v", outcome.State, correction.StateApplied)
	}
	if outcome.FinalCommand != "git push --set-upstream origin master" {
		t.Errorf("FinalCommand = %q, want the chosen candidate's text", outcome.FinalCommand)
	}
	if len(outcome.AppliedEffects) != 0 || len(applier.Applied) != 0 {
		t.Errorf("effects applied for an effect-free candidate: %v", applier.Applied)
	}
	if s.State() != correction.StateApplied {
		t.Errorf("session state = %v, want %v", s.State(), correction.StateApplied)
	}
}

func TestSession_Select_AppliesEffectsInOrder(t *testing.T) {
	applier := &testutil.MockEffectApplier{}
	s := NewSession(testSet(), applier)

	outcome := s.Select(context.Background(), 1)

	if outcome.State != correction.StateApplied {
		t.Fatalf("Select(1).State = %v, want %v", outcome.State, correction.StateApplied)
	}
	want := []correction.SideEffect{
		correction.RunCommand("mkdir -p /tmp/scratch"),
		correction.SetEnv("SCRATCH", "/tmp/scratch"),
	}
	if len(applier.Applied) != len(want) {
		t.Fatalf("applied %d effects, want %d", len(applier.Applied), len(want))
	}
	for i := range want {
		if applier.Applied[i] != want[i] {
			t.Errorf("applied[%d] = %+v, want %+v", i, applier.Applied[i], want[i])
		}
	}
	if len(outcome.AppliedEffects) != 2 {
		t.Errorf("outcome lists %d applied effects, want 2", len(outcome.AppliedEffects))
	}
}

func TestSession_Select_PartiallyApplied(t *testing.T) {
	applyErr := errors.New("mkdir exited 1")
	applier := &testutil.MockEffectApplier{
		ApplyFunc: func(ctx context.Context, effect correction.SideEffect) error {
			if effect.Kind == correction.EffectSetEnv {
				return applyErr
			}
			return nil
		},
	}
	s := NewSession(testSet(), applier)

	outcome := s.Select(context.Background(), 1)

	if outcome.State != correction.StatePartiallyApplied {
		t.Fatalf("State = %v, want %v", outcome.State, correction.StatePartiallyApplied)
	}
	// The first effect completed and is never rolled back.
	if len(outcome.AppliedEffects) != 1 || outcome.AppliedEffects[0].Kind != correction.EffectRunCommand {
		t.Errorf("AppliedEffects = %v, want just the completed run-command effect", outcome.AppliedEffects)
	}
	if outcome.Failure == nil {
		t.Fatal("Failure = nil, want detail of the failed effect")
	}
	if outcome.Failure.Index != 1 {
		t.Errorf("Failure.Index = %d, want 1", outcome.Failure.Index)
	}
	if !errors.Is(outcome.Failure, applyErr) {
		t.Errorf("Failure does not wrap the applier error: %v", outcome.Failure)
	}
	if outcome.FinalCommand == "" {
		t.Error("FinalCommand is empty; callers need it to report the partial state")
	}
}

func TestSession_Select_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past the end", 2},
		{"far past the end", 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applier := &testutil.MockEffectApplier{}
			s := NewSession(testSet(), applier)

			outcome := s.Select(context.Background(), tt.index)

			if outcome.State != correction.StateRejected {
				t.Errorf("State = %v, want %v", outcome.State, correction.StateRejected)
			}
			if len(applier.Applied) != 0 {
				t.Errorf("effects applied on a rejected selection: %v", applier.Applied)
			}
			if s.State() != correction.StateRejected {
				t.Errorf("session state = %v, want %v", s.State(), correction.StateRejected)
			}
		})
	}
}

func TestSession_Select_CancelledBeforeEffects(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	applier := &testutil.MockEffectApplier{}
	s := NewSession(testSet(), applier)

	outcome := s.Select(ctx, 1)

	if outcome.State != correction.StateRejected {
		t.Errorf("State = %v, want %v (cancellation before Selected discards the set)", outcome.State, correction.StateRejected)
	}
	if len(applier.Applied) != 0 {
		t.Errorf("effects applied despite pre-selection cancellation: %v", applier.Applied)
	}
}

func TestSession_TerminalStateIsFinal(t *testing.T) {
	applier := &testutil.MockEffectApplier{}
	s := NewSession(testSet(), applier)

	first := s.Select(context.Background(), 0)
	if first.State != correction.StateApplied {
		t.Fatalf("first Select State = %v, want %v", first.State, correction.StateApplied)
	}

	// A second selection on a finished session changes nothing.
	second := s.Select(context.Background(), 1)
	if second.State != correction.StateApplied {
		t.Errorf("second Select State = %v, want the terminal %v", second.State, correction.StateApplied)
	}
	if second.FinalCommand != "" {
		t.Errorf("second Select returned a command: %q", second.FinalCommand)
	}
	if len(applier.Applied) != 0 {
		t.Errorf("second Select applied effects: %v", applier.Applied)
	}

	if got := s.Reject().State; got != correction.StateApplied {
		t.Errorf("Reject after Applied = %v, want %v", got, correction.StateApplied)
	}
}

func TestSession_Reject(t *testing.T) {
	s := NewSession(testSet(), &testutil.MockEffectApplier{})

	outcome := s.Reject()
	if outcome.State != correction.StateRejected {
		t.Fatalf("Reject().State = %v, want %v", outcome.State, correction.StateRejected)
	}
	if got := s.Select(context.Background(), 0).State; got != correction.StateRejected {
		t.Errorf("Select after Reject = %v, want %v", got, correction.StateRejected)
	}
}

func TestSession_Select_EmptySet(t *testing.T) {
	s := NewSession(correction.NewRankedSet(nil), &testutil.MockEffectApplier{})

	if got := s.Select(context.Background(), 0).State; got != correction.StateRejected {
		t.Errorf("Select on empty set = %v, want %v", got, correction.StateRejected)
	}
}
