package ruleregistry

import (
	"errors"
	"testing"

	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
	"github.com/haiphamcoder/thefuck-go/internal/core/testutil"
)

func rule(name string, priority int) *testutil.MockRule {
	return &testutil.MockRule{NameValue: name, PriorityValue: priority}
}

func enabledNames(r ports.RuleRegistry) []string {
	view := r.Enabled()
	names := make([]string, 0, len(view))
	for _, reg := range view {
		names = append(names, reg.Rule.Name())
	}
	return names
}

func TestRegistry_Register(t *testing.T) {
	t.Run("registers and looks up", func(t *testing.T) {
		r := New()
		if err := r.Register(rule("sudo", 100)); err != nil {
			t.Fatalf("Register() unexpected error: %v", err)
		}
		got, err := r.Lookup("sudo")
		if err != nil {
			t.Fatalf("Lookup() unexpected error: %v", err)
		}
		if got.Name() != "sudo" {
			t.Errorf("Lookup() returned rule %q, want %q", got.Name(), "sudo")
		}
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		r := New()
		if err := r.Register(rule("sudo", 100)); err != nil {
			t.Fatalf("Register() unexpected error: %v", err)
		}
		err := r.Register(rule("sudo", 999))
		if !errors.Is(err, ports.ErrDuplicateRule) {
			t.Errorf("Register() error = %v, want ErrDuplicateRule", err)
		}
	})

	t.Run("rejects nil rule", func(t *testing.T) {
		r := New()
		if err := r.Register(nil); err == nil {
			t.Error("Register(nil) expected an error, got nil")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		r := New()
		if err := r.Register(rule("", 100)); err == nil {
			t.Error("Register() with empty name expected an error, got nil")
		}
	})
}

func TestRegistry_EnableDisable(t *testing.T) {
	r := New()
	if err := r.Register(rule("sudo", 100)); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	t.Run("disable removes from enabled view", func(t *testing.T) {
		if err := r.Disable("sudo"); err != nil {
			t.Fatalf("Disable() unexpected error: %v", err)
		}
		if got := enabledNames(r); len(got) != 0 {
			t.Errorf("Enabled() after disable = %v, want empty", got)
		}
	})

	t.Run("disabled rule still listed and resolvable", func(t *testing.T) {
		if _, err := r.Lookup("sudo"); err != nil {
			t.Errorf("Lookup() of disabled rule unexpected error: %v", err)
		}
		all := r.All()
		if len(all) != 1 || all[0].Enabled {
			t.Errorf("All() = %+v, want one disabled entry", all)
		}
	})

	t.Run("re-enable restores", func(t *testing.T) {
		if err := r.Enable("sudo"); err != nil {
			t.Fatalf("Enable() unexpected error: %v", err)
		}
		if got := enabledNames(r); len(got) != 1 || got[0] != "sudo" {
			t.Errorf("Enabled() after re-enable = %v, want [sudo]", got)
		}
	})

	t.Run("unknown name fails only that operation", func(t *testing.T) {
		if err := r.Enable("nope"); !errors.Is(err, ports.ErrUnknownRule) {
			t.Errorf("Enable(nope) error = %v, want ErrUnknownRule", err)
		}
		if err := r.Disable("nope"); !errors.Is(err, ports.ErrUnknownRule) {
			t.Errorf("Disable(nope) error = %v, want ErrUnknownRule", err)
		}
		if _, err := r.Lookup("nope"); !errors.Is(err, ports.ErrUnknownRule) {
			t.Errorf("Lookup(nope) error = %v, want ErrUnknownRule", err)
		}
		// Registry still intact.
		if got := enabledNames(r); len(got) != 1 {
			t.Errorf("Enabled() = %v, want one entry after failed operations", got)
		}
	})
}

func TestRegistry_EnabledOrdering(t *testing.T) {
	r := New()
	// Registered out of priority order; two rules share priority 200
	// and must keep registration order between them.
	for _, mr := range []*testutil.MockRule{
		rule("c", 300),
		rule("a", 200),
		rule("z", 100),
		rule("b", 200),
	} {
		if err := r.Register(mr); err != nil {
			t.Fatalf("Register(%s) unexpected error: %v", mr.NameValue, err)
		}
	}

	want := []string{"z", "a", "b", "c"}
	got := enabledNames(r)
	if len(got) != len(want) {
		t.Fatalf("Enabled() returned %d rules, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Enabled()[%d] = %q, want %q (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestRegistry_EnabledSnapshotIsolation(t *testing.T) {
	r := New()
	if err := r.Register(rule("sudo", 100)); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if err := r.Register(rule("dry", 900)); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	snapshot := r.Enabled()
	if err := r.Disable("sudo"); err != nil {
		t.Fatalf("Disable() unexpected error: %v", err)
	}

	// The snapshot taken before the mutation must be unaffected.
	if len(snapshot) != 2 {
		t.Errorf("earlier snapshot has %d rules after Disable, want 2", len(snapshot))
	}
	if got := enabledNames(r); len(got) != 1 || got[0] != "dry" {
		t.Errorf("Enabled() after Disable = %v, want [dry]", got)
	}
}

func TestRegistry_All(t *testing.T) {
	r := New()
	needsOutput := &testutil.MockRule{NameValue: "git_not_command", PriorityValue: 300, RequiresOutputValue: true}
	if err := r.Register(rule("dry", 900)); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if err := r.Register(needsOutput); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d entries, want 2", len(all))
	}
	// Registration order, not priority order.
	if all[0].Name != "dry" || all[1].Name != "git_not_command" {
		t.Errorf("All() order = [%s %s], want registration order [dry git_not_command]", all[0].Name, all[1].Name)
	}
	if !all[1].RequiresOutput {
		t.Error("All()[1].RequiresOutput = false, want true")
	}
}
