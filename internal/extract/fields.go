package extract

import (
	"slices"
	"sort"
	"strings"
	"unicode"
)

// minSubstringLen keeps short names such as "AC" or "CP" from matching
// inside unrelated keys like "Background".
const minSubstringLen = 3

// Fields is a form-field name to value mapping read from a fillable sheet
type Fields map[string]string

// LookupField is Fields.Lookup over a plain map
func LookupField(fields map[string]string, candidates ...string) string {
	return Fields(fields).Lookup(candidates...)
}

// Lookup returns the first non-empty value for the candidate names. Every
// candidate is tried by exact key, then every candidate case-insensitively,
// then every candidate as a substring of a key or a key as a substring of it.
// A key only matches inside a candidate on whole words, so "CHA" never
// matches "Character Name". Returns "" when nothing matches.
func (f Fields) Lookup(candidates ...string) string {
	if v := f.Exact(candidates...); v != "" {
		return v
	}
	keys := f.sortedKeys()
	for _, c := range candidates {
		lc := normalizeKey(c)
		if len(lc) < minSubstringLen {
			continue
		}
		for _, k := range keys {
			lk := normalizeKey(k)
			if len(lk) < minSubstringLen {
				continue
			}
			if strings.Contains(lk, lc) || containsWords(c, k) {
				if v := strings.TrimSpace(f[k]); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

// Exact runs only the exact and case-insensitive strategies. Use it where a
// substring match would alias numbered fields such as "Spells 1014".
func (f Fields) Exact(candidates ...string) string {
	for _, c := range candidates {
		if v := strings.TrimSpace(f[c]); v != "" {
			return v
		}
	}
	keys := f.sortedKeys()
	for _, c := range candidates {
		lc := normalizeKey(c)
		if lc == "" {
			continue
		}
		for _, k := range keys {
			if normalizeKey(k) == lc {
				if v := strings.TrimSpace(f[k]); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

// Int looks a value up and parses it with ParseLeadingInt
func (f Fields) Int(def int, candidates ...string) int {
	return ParseLeadingInt(f.Lookup(candidates...), def)
}

// Lines splits the looked up value into trimmed non-empty lines
func (f Fields) Lines(candidates ...string) []string {
	return SplitLines(f.Lookup(candidates...))
}

// Keys returns every field name in sorted order
func (f Fields) Keys() []string {
	return f.sortedKeys()
}

func (f Fields) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// containsWords reports whether the words of part appear as a contiguous run
// among the words of whole.
func containsWords(whole, part string) bool {
	hw, pw := words(whole), words(part)
	if len(pw) == 0 || len(pw) > len(hw) {
		return false
	}
	for i := 0; i+len(pw) <= len(hw); i++ {
		if slices.Equal(hw[i:i+len(pw)], pw) {
			return true
		}
	}
	return false
}

// words splits a field name on separators, letter/digit changes and
// camelCase humps, lowercasing the result: "HPMax 2" is [hp max 2].
func words(name string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	runes := []rune(name)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			switch {
			case unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(r) && (unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower)):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// SplitLines splits text on newlines, trims each line and drops empty ones
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Dedupe drops empty and repeated entries while keeping first-seen order
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
