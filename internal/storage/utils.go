package storage

import "strings"

// SanitizeFilename derives a filesystem-safe name from an uploaded filename.
// Path separators and anything outside [A-Za-z0-9._-] become underscores, so
// the result can never escape the upload directory. Returns an empty string
// when nothing usable remains.
func SanitizeFilename(name string) string {
	// Keep only the last path element of whatever the client sent
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if sanitized == "" {
		return ""
	}
	return sanitized
}
