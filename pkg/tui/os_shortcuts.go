package tui

import "runtime"

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey is a key binding with OS-specific variations. Default is
// always accepted; the OS variant is the one shown in help.
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string
}

// For returns the shortcut shown on os
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Get returns the shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// Matches reports whether key triggers the shortcut on os
func (s ShortcutKey) Matches(os OSType, key string) bool {
	return key == s.Default || key == s.For(os)
}

// Warning names a known terminal conflict for the shortcut on os
func (s ShortcutKey) Warning(os OSType) string {
	switch os {
	case OSLinux:
		switch s.For(os) {
		case "ctrl+s":
			return "(may need: stty -ixon)"
		case "ctrl+z":
			return "(caution: suspends process)"
		}
	case OSWindows:
		if s.For(os) == "backtab" {
			return "(terminal dependent)"
		}
	}
	return ""
}

// Shortcuts used by the edit form
var Shortcuts = struct {
	Save      ShortcutKey
	NextField ShortcutKey
	PrevField ShortcutKey
	Cancel    ShortcutKey
}{
	Save: ShortcutKey{
		Linux:   "alt+s", // ctrl+s is XOFF in many terminals
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	NextField: ShortcutKey{Default: "tab"},
	PrevField: ShortcutKey{
		Windows: "backtab",
		Default: "shift+tab",
	},
	Cancel: ShortcutKey{Default: "esc"},
}
