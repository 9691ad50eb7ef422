package lang

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Template tokens must survive translation verbatim: double-braced,
// single-braced and angle-bracketed spans, none nested.
var placeholderRe = regexp.MustCompile(`(\{\{[^{}]*\}\}|\{[^{}]*\}|<[^<>]*>)`)

// PlaceholderMap maps a minted marker back to the original substring it
// replaced. Created fresh per translation call and discarded after
// Restore; markers are consumed on first match.
type PlaceholderMap map[string]string

// Protect replaces every template token with a unique @@PHn@@ marker,
// numbered in order of appearance. Text without tokens comes back
// unchanged with an empty map.
func Protect(text string) (string, PlaceholderMap) {
	mapping := PlaceholderMap{}
	guarded := placeholderRe.ReplaceAllStringFunc(text, func(match string) string {
		marker := fmt.Sprintf("@@PH%d@@", len(mapping))
		mapping[marker] = match
		return marker
	})
	return guarded, mapping
}

// Restore replaces markers with their originals. Longer marker keys go
// first so @@PH10@@ is never corrupted by a replace of @@PH1@@.
func Restore(text string, mapping PlaceholderMap) string {
	if len(mapping) == 0 {
		return text
	}
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	out := text
	for _, key := range keys {
		out = strings.ReplaceAll(out, key, mapping[key])
	}
	return out
}
