package format

import "strings"

// bulletMarkers are the prefixes recognized as embedded bullet markers
// inside free-form description text.
var bulletMarkers = []string{"•", "-", "–"}

// HasBulletMarkers reports whether any line of the description starts with a
// bullet marker. Templates use this to decide between a paragraph block and a
// bullet list for the same description text.
func HasBulletMarkers(description string) bool {
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		for _, m := range bulletMarkers {
			if strings.HasPrefix(line, m) {
				return true
			}
		}
	}
	return false
}

// SplitBullets splits a description into display items: one item per non-empty
// line, with any leading bullet marker stripped. The operation is idempotent —
// re-splitting already-split, marker-free text yields the same items, so no
// render path can accumulate stray markers. A single marker-free line comes
// back as a one-element slice (a plain paragraph). Empty input yields nil.
func SplitBullets(description string) []string {
	var items []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		for _, m := range bulletMarkers {
			if rest, ok := strings.CutPrefix(line, m); ok {
				line = strings.TrimSpace(rest)
				break
			}
		}
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}
