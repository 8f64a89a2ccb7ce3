package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// SafeFilenamePart turns free text into something usable in a download name.
func SafeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
