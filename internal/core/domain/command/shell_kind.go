package command

import "strings"

// ShellKind tags a Context with the dialect of the shell that ran the
// failed command. Rules use it for quoting and alias semantics.
type ShellKind int

const (
	KindUnknown ShellKind = iota
	KindBash
	KindZsh
	KindFish
	KindPowerShell
	KindCmd
)

// KindFromString maps a shell name (e.g. the basename of $SHELL) to a
// ShellKind. Unrecognized names map to KindUnknown.
func KindFromString(s string) ShellKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bash":
		return KindBash
	case "zsh":
		return KindZsh
	case "fish":
		return KindFish
	case "powershell", "pwsh":
		return KindPowerShell
	case "cmd", "cmd.exe":
		return KindCmd
	default:
		return KindUnknown
	}
}

// String returns the canonical lowercase name of the shell kind.
func (k ShellKind) String() string {
	switch k {
	case KindBash:
		return "bash"
	case KindZsh:
		return "zsh"
	case KindFish:
		return "fish"
	case KindPowerShell:
		return "powershell"
	case KindCmd:
		return "cmd"
	default:
		return "unknown"
	}
}

// IsPOSIXStyle reports whether the shell follows POSIX-style quoting
// (double/single quotes, backslash escapes).
func (k ShellKind) IsPOSIXStyle() bool {
	switch k {
	case KindBash, KindZsh, KindFish:
		return true
	default:
		return false
	}
}
