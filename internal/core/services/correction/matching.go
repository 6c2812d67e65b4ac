package correction

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/command"
	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

/*
collect evaluates every rule of the snapshot against cmd with bounded
parallelism. Results land in a slice indexed by snapshot position, so
thread completion order never leaks into the output. The only error
returned is caller cancellation; rule faults and timeouts are recorded
on the diagnostics channel and contribute nothing.
*/
func (s *service) collect(
	ctx context.Context,
	cmd command.Context,
	snapshot []ports.RegisteredRule,
) ([][]correction.Candidate, error) {
	results := make([][]correction.Candidate, len(snapshot))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i, reg := range snapshot {
		i, reg := i, reg
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			// Cheap pre-filter: rules that need output are skipped
			// outright when both streams are empty.
			if reg.Rule.RequiresOutput() && !cmd.HasOutput() {
				return nil
			}
			results[i] = s.evaluate(gctx, reg.Rule, cmd)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type evalResult struct {
	candidates []correction.Candidate
	err        error
}

/*
evaluate runs one rule under the per-rule timeout. The rule goroutine
writes to a buffered channel, so a rule that ignores cancellation
delays only itself; the pipeline moves on once the budget is spent.
Panics, errors and timeouts are all recovered as a non-match.
*/
func (s *service) evaluate(ctx context.Context, rule ports.Rule, cmd command.Context) []correction.Candidate {
	rctx, cancel := context.WithTimeout(ctx, s.cfg.RuleTimeout)
	defer cancel()

	done := make(chan evalResult, 1)
	go func() {
		done <- runRule(rctx, rule, cmd)
	}()

	select {
	case res := <-done:
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) && ctx.Err() == nil {
				s.diag.RuleTimeout(rule.Name(), s.cfg.RuleTimeout)
			} else if ctx.Err() == nil {
				stage := "matches"
				var fault *ruleFault
				if errors.As(res.err, &fault) {
					stage = fault.stage
				}
				s.diag.RuleFault(rule.Name(), stage, res.err)
			}
			return nil
		}
		return s.sanitize(cmd.Raw(), res.candidates)
	case <-rctx.Done():
		if errors.Is(rctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			s.diag.RuleTimeout(rule.Name(), s.cfg.RuleTimeout)
		}
		return nil
	}
}

// ruleFault tags an evaluation error with the stage it came from.
type ruleFault struct {
	stage string
	err   error
}

func (f *ruleFault) Error() string { return fmt.Sprintf("%s: %v", f.stage, f.err) }
func (f *ruleFault) Unwrap() error { return f.err }

// runRule executes Matches and Candidates, converting panics into
// ordinary faults so one misbehaving rule cannot take the pipeline
// down.
func runRule(ctx context.Context, rule ports.Rule, cmd command.Context) (res evalResult) {
	defer func() {
		if r := recover(); r != nil {
			res = evalResult{err: &ruleFault{stage: "matches", err: fmt.Errorf("panic: %v", r)}}
		}
	}()

	matched, err := rule.Matches(ctx, cmd)
	if err != nil {
		return evalResult{err: &ruleFault{stage: "matches", err: err}}
	}
	if !matched {
		return evalResult{}
	}

	candidates, err := rule.Candidates(ctx, cmd)
	if err != nil {
		return evalResult{err: &ruleFault{stage: "candidates", err: err}}
	}
	return evalResult{candidates: candidates}
}

/*
sanitize drops candidates that violate the result invariants: empty
command text, or text identical to the original without any side effect
that would make re-execution meaningfully different.
*/
func (s *service) sanitize(raw string, candidates []correction.Candidate) []correction.Candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if c.CommandText == "" {
			continue
		}
		if c.CommandText == raw && !c.HasSideEffects() {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
