package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
)

func pickerSet() correction.RankedSet {
	return correction.NewRankedSet([]correction.Candidate{
		{CommandText: "git push --set-upstream origin master", SourceRule: "git_push_set_upstream", Score: 0.83},
		{
			CommandText: "cd /tmp/x",
			SourceRule:  "cd_mkdir",
			Score:       0.5,
			SideEffects: []correction.SideEffect{correction.RunCommand("mkdir -p /tmp/x")},
		},
	})
}

func TestPickCandidate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		want       int
		wantCancel bool
		wantErr    bool
	}{
		{"empty input picks the top candidate", "\n", 0, false, false},
		{"explicit first", "1\n", 0, false, false},
		{"explicit second", "2\n", 1, false, false},
		{"whitespace around the number", "  2  \n", 1, false, false},
		{"n cancels", "n\n", 0, true, false},
		{"none cancels", "none\n", 0, true, false},
		{"q cancels", "q\n", 0, true, false},
		{"uppercase N cancels", "N\n", 0, true, false},
		{"zero is out of range", "0\n", 0, false, true},
		{"past the end", "3\n", 0, false, true},
		{"not a number", "abc\n", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := PickCandidate(strings.NewReader(tt.input), &out, pickerSet())

			if tt.wantCancel {
				if !errors.Is(err, ErrPickerCancelled) {
					t.Fatalf("PickCandidate() error = %v, want ErrPickerCancelled", err)
				}
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PickCandidate() = %d, want an error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("PickCandidate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("PickCandidate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPickCandidate_Rendering(t *testing.T) {
	var out bytes.Buffer
	if _, err := PickCandidate(strings.NewReader("\n"), &out, pickerSet()); err != nil {
		t.Fatalf("PickCandidate() unexpected error: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{
		"Did you mean:",
		"1. ",
		"git push --set-upstream origin master",
		"[git_push_set_upstream 0.83]",
		"2. ",
		"+ run mkdir -p /tmp/x",
		"Select [1-2]",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("picker output missing %q:\n%s", want, rendered)
		}
	}
}

func TestPickCandidate_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	if _, err := PickCandidate(strings.NewReader(""), &out, pickerSet()); err == nil {
		t.Error("PickCandidate() on EOF expected an error, got nil")
	}
}

func TestPickCandidate_EOFAfterInput(t *testing.T) {
	// Input without a trailing newline still counts.
	var out bytes.Buffer
	got, err := PickCandidate(strings.NewReader("2"), &out, pickerSet())
	if err != nil {
		t.Fatalf("PickCandidate() unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("PickCandidate() = %d, want 1", got)
	}
}
