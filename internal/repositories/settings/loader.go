package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	settingsDir      = ".thefuck-go"
	settingsFilename = "settings.yaml"
)

// DefaultPath returns the default settings file location,
// $HOME/.thefuck-go/settings.yaml.
func DefaultPath() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, settingsDir, settingsFilename), nil
}

/*
Load reads settings from the YAML file at path, then applies
environment overrides. A non-existent or empty file yields the
defaults; a malformed file or an unknown field is an error.

Environment overrides:

	THEFUCK_DISABLED_RULES   comma-separated rule names to disable
	THEFUCK_CONCURRENCY      integer
	THEFUCK_RULE_TIMEOUT_MS  integer milliseconds
	THEFUCK_MAX_CANDIDATES   integer
	THEFUCK_LOG_LEVEL        zap level name
	THEFUCK_LOG_FILE         path
*/
func Load(path string) (Settings, error) {
	s := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
		// No file means defaults, same as an empty one.
	} else if len(data) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", path, err)
		}
		if s.Rules == nil {
			s.Rules = map[string]bool{}
		}
	}

	applyEnv(&s)

	if s.Concurrency <= 0 {
		s.Concurrency = DefaultConcurrency
	}
	if s.MaxCandidates < 0 {
		s.MaxCandidates = DefaultMaxCandidates
	}
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s, nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv("THEFUCK_DISABLED_RULES"); v != "" {
		for _, name := range strings.Split(v, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				s.Rules[name] = false
			}
		}
	}
	if n, ok := envInt("THEFUCK_CONCURRENCY"); ok {
		s.Concurrency = n
	}
	if n, ok := envInt("THEFUCK_RULE_TIMEOUT_MS"); ok {
		s.RuleTimeoutMS = n
	}
	if n, ok := envInt("THEFUCK_MAX_CANDIDATES"); ok {
		s.MaxCandidates = n
	}
	if v := os.Getenv("THEFUCK_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv("THEFUCK_LOG_FILE"); v != "" {
		s.LogFile = v
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
