package store

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SanitizeName makes a title safe for filesystem use. Characters that are
// invalid on common filesystems are removed rather than replaced, control
// characters are stripped, and surrounding whitespace plus trailing dots are
// trimmed. Unicode is preserved but normalized to NFC, so the same title
// always maps to the same directory name regardless of how the feed encoded
// it. The result may be empty.
func SanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		if strings.ContainsRune(`\/:*?"<>|`, r) {
			return -1
		}
		return r
	}, norm.NFC.String(name))

	cleaned = strings.TrimSpace(cleaned)

	return strings.TrimRight(cleaned, ". ")
}
