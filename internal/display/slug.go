package display

import "strings"

// SlugifyLeagueName lowercases name, collapses every run of characters
// outside [a-z0-9] into one '-' and trims leading and trailing dashes.
// A name without any [a-z0-9] character yields "".
func SlugifyLeagueName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
