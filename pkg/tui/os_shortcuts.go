package tui

import (
	"runtime"
	"strings"
)

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

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.getFor(GetOS())
}

func (s ShortcutKey) getFor(os OSType) string {
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

// Matches reports whether a key message string triggers this shortcut
func (s ShortcutKey) Matches(key string) bool {
	return key == s.Get()
}

// Shortcuts contains the search screen's keyboard shortcuts
var Shortcuts = struct {
	Focus  ShortcutKey
	Close  ShortcutKey
	Submit ShortcutKey
	Select ShortcutKey
	Remove ShortcutKey
	Copy   ShortcutKey
	Up     ShortcutKey
	Down   ShortcutKey
	Quit   ShortcutKey
}{
	Focus: ShortcutKey{
		Default: "/",
	},
	Close: ShortcutKey{
		Default: "esc",
	},
	Submit: ShortcutKey{
		Default: "enter",
	},
	Select: ShortcutKey{
		Default: "tab",
	},
	Remove: ShortcutKey{
		Mac:     "ctrl+d",
		Linux:   "alt+d", // Avoid Ctrl+D EOF signal
		Windows: "alt+d",
		Default: "ctrl+d",
	},
	Copy: ShortcutKey{
		Default: "ctrl+y",
	},
	Up: ShortcutKey{
		Default: "up",
	},
	Down: ShortcutKey{
		Default: "down",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get(), GetOS())
}

func formatShortcut(shortcut string, os OSType) string {
	// M- prefix for Alt is the usual terminal convention off macOS
	if os == OSLinux || os == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	switch shortcut {
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return shortcut
}
