/*
Package settings loads the corrector's configuration: per-rule
enable/disable overrides and the pipeline bounds. Values come from an
optional YAML file with environment variable overrides on top; a
missing file is not an error, it just means defaults.
*/
package settings

import "time"

// Defaults applied when neither file nor environment provide a value.
const (
	DefaultConcurrency   = 4
	DefaultRuleTimeout   = 2 * time.Second
	DefaultMaxCandidates = 0 // keep all distinct candidates
	DefaultLogLevel      = "warn"
)

// Settings is the materialized configuration handed to the bootstrap.
type Settings struct {
	// Rules maps rule name to enabled override. Rules not listed keep
	// their registration default (enabled).
	Rules map[string]bool `yaml:"rules"`

	// Concurrency caps parallel rule evaluation.
	Concurrency int `yaml:"concurrency"`

	// RuleTimeoutMS is the per-rule evaluation budget in milliseconds.
	RuleTimeoutMS int `yaml:"rule_timeout_ms"`

	// MaxCandidates truncates the ranked result set; 0 keeps all.
	MaxCandidates int `yaml:"max_candidates"`

	// RequireConfirmation shows the interactive picker even for a
	// single candidate. Defaults to true.
	RequireConfirmation *bool `yaml:"require_confirmation"`

	// LogLevel and LogFile configure diagnostics logging.
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// RuleTimeout returns the per-rule budget as a duration.
func (s Settings) RuleTimeout() time.Duration {
	if s.RuleTimeoutMS <= 0 {
		return DefaultRuleTimeout
	}
	return time.Duration(s.RuleTimeoutMS) * time.Millisecond
}

// Confirm reports whether selection should be interactive.
func (s Settings) Confirm() bool {
	if s.RequireConfirmation == nil {
		return true
	}
	return *s.RequireConfirmation
}

func defaults() Settings {
	return Settings{
		Rules:         map[string]bool{},
		Concurrency:   DefaultConcurrency,
		MaxCandidates: DefaultMaxCandidates,
		LogLevel:      DefaultLogLevel,
	}
}
