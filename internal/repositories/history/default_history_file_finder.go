package history

import "github.com/haiphamcoder/thefuck-go/internal/core/ports"

// DefaultHistoryFileFinder is the default implementation that uses the
// package-level findUserHistoryFile.
type DefaultHistoryFileFinder struct{}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile()
}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder.
func NewDefaultHistoryFileFinder() ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{}
}
