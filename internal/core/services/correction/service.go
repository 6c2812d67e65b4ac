/*
Package correction implements the rule matching and ranking pipeline:
it evaluates every enabled rule against a failed-command context with
bounded parallelism, then scores, deduplicates and orders the collected
candidates into a deterministic ranked result set.
*/
package correction

import (
	"context"
	"time"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

const (
	defaultConcurrency   = 4
	defaultRuleTimeout   = 2 * time.Second
	defaultMaxCandidates = 0 // keep all distinct candidates
)

// Config bounds one pipeline run. Zero values fall back to defaults;
// MaxCandidates 0 keeps every distinct candidate.
type Config struct {
	// Concurrency caps how many rules evaluate in parallel.
	Concurrency int

	// RuleTimeout is the per-rule evaluation budget. A rule exceeding
	// it is treated as a non-match and its partial result discarded.
	RuleTimeout time.Duration

	// MaxCandidates truncates the ranked result set. 0 keeps all.
	MaxCandidates int
}

func (c Config) withDefaults() Config {
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	if c.RuleTimeout <= 0 {
		c.RuleTimeout = defaultRuleTimeout
	}
	if c.MaxCandidates < 0 {
		c.MaxCandidates = defaultMaxCandidates
	}
	return c
}

type service struct {
	registry ports.RuleRegistry
	scorer   ports.TextScorer
	diag     ports.Diagnostics
	cfg      Config
}

// NewService creates the correction pipeline. It panics if registry or
// scorer are nil; diag may be nil, in which case events are discarded.
func NewService(
	registry ports.RuleRegistry,
	scorer ports.TextScorer,
	diag ports.Diagnostics,
	cfg Config,
) ports.CorrectionService {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if scorer == nil {
		panic("scorer cannot be nil")
	}
	if diag == nil {
		diag = ports.NopDiagnostics{}
	}
	return &service{
		registry: registry,
		scorer:   scorer,
		diag:     diag,
		cfg:      cfg.withDefaults(),
	}
}

// Correct runs matching and ranking for one failed command. The rule
// snapshot is taken once at the start; later registry mutations do not
// affect the run.
func (s *service) Correct(ctx context.Context, cmd command.Context) (correction.RankedSet, error) {
	snapshot := s.registry.Enabled()

	raw, err := s.collect(ctx, cmd, snapshot)
	if err != nil {
		return correction.RankedSet{}, err
	}

	ranked := s.rank(cmd.Raw(), snapshot, raw)
	return correction.NewRankedSet(ranked), nil
}
