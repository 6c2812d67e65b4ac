package ports

/*
HistoryProvider supplies the previous command from the user's shell
history. It is a capability owned by the shell collaborator: the core
pipeline never reads history itself, the fix handler uses this as a
fallback when the failed command was not passed on the command line.
*/
type HistoryProvider interface {
	// LastCommand returns the most recent history entry, excluding the
	// corrector invocation itself when detectable.
	LastCommand() (string, error)

	// GetSourceIdentifier describes where history was read from, for
	// user-facing messages.
	GetSourceIdentifier() string
}

// HistoryFileFinder locates the shell history file on disk.
type HistoryFileFinder interface {
	Find() (string, error)
}
