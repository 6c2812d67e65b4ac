package correction

import (
	"sort"

	"github.com/haiphamcoder/thefuck-go/internal/core/domain/correction"
	"github.com/haiphamcoder/thefuck-go/internal/core/ports"
)

/*
priorityWeight maps a rule priority to a multiplier in (0, 1].

Chosen function: 1000 / (1000 + priority). It is strictly decreasing in
the priority number, so at equal similarity a candidate from a
lower-numbered (higher-precedence) rule never scores below one from a
higher-numbered rule, and it keeps the combined score inside [0, 1]
for any non-negative priority.
*/
func priorityWeight(priority int) float64 {
	if priority < 0 {
		priority = 0
	}
	return 1000.0 / (1000.0 + float64(priority))
}

// scored pairs a candidate with its tie-break tuple.
type scored struct {
	candidate correction.Candidate
	priority  int
	ordinal   int
}

/*
rank scores, deduplicates and orders the raw per-rule candidate lists.

Score: priorityWeight(rule priority) * similarity(raw, candidate text).
Total order: score descending, then rule priority ascending, then
registration order ascending, then command text lexicographic. The
tuple is fully determined by the input, so repeated runs over identical
input produce identical ordering.

Duplicates (byte-identical command text) merge into one entry keeping
the highest-scoring duplicate's score and source rule; their side
effects are unioned order-preserving with value duplicates removed.
*/
func (s *service) rank(
	raw string,
	snapshot []ports.RegisteredRule,
	collected [][]correction.Candidate,
) []correction.Candidate {
	merged := make(map[string]*scored)
	order := make([]string, 0, len(collected)) // first-seen order of texts, for stable map walk

	for i, reg := range snapshot {
		for _, c := range collected[i] {
			c.SourceRule = reg.Rule.Name()
			c.Score = priorityWeight(reg.Rule.Priority()) * s.scorer.Similarity(raw, c.CommandText)

			cur, seen := merged[c.CommandText]
			if !seen {
				merged[c.CommandText] = &scored{
					candidate: c,
					priority:  reg.Rule.Priority(),
					ordinal:   reg.Ordinal,
				}
				order = append(order, c.CommandText)
				continue
			}

			// Union side effects before deciding the winner; the merged
			// entry keeps every distinct effect in first-seen order.
			cur.candidate.SideEffects = unionEffects(cur.candidate.SideEffects, c.SideEffects)

			if beats(c.Score, reg.Rule.Priority(), reg.Ordinal, cur) {
				cur.candidate.CommandText = c.CommandText
				cur.candidate.SourceRule = c.SourceRule
				cur.candidate.Score = c.Score
				cur.priority = reg.Rule.Priority()
				cur.ordinal = reg.Ordinal
			}
		}
	}

	out := make([]scored, 0, len(order))
	for _, text := range order {
		out = append(out, *merged[text])
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.candidate.Score != b.candidate.Score {
			return a.candidate.Score > b.candidate.Score
		}
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		if a.ordinal != b.ordinal {
			return a.ordinal < b.ordinal
		}
		return a.candidate.CommandText < b.candidate.CommandText
	})

	if s.cfg.MaxCandidates > 0 && len(out) > s.cfg.MaxCandidates {
		out = out[:s.cfg.MaxCandidates]
	}

	ranked := make([]correction.Candidate, len(out))
	for i, sc := range out {
		ranked[i] = sc.candidate
	}
	return ranked
}

// beats reports whether a duplicate with the given score/tie-break
// tuple replaces the current merged entry. On equal scores the first
// duplicate under the (priority, registration order) tie-break wins.
func beats(score float64, priority, ordinal int, cur *scored) bool {
	if score != cur.candidate.Score {
		return score > cur.candidate.Score
	}
	if priority != cur.priority {
		return priority < cur.priority
	}
	return ordinal < cur.ordinal
}

// unionEffects appends the effects of b not already present in a,
// preserving order. Equality is by value.
func unionEffects(a, b []correction.SideEffect) []correction.SideEffect {
	if len(b) == 0 {
		return a
	}
	out := a
	for _, e := range b {
		dup := false
		for _, have := range out {
			if have == e {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}
