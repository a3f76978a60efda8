package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

// Converter turns a trimmed capture into a typed value
type Converter[T any] func(string) (T, error)

// ByPattern returns the converted first capture group of the first match of
// re in text, or def when there is no match or conversion fails.
func ByPattern[T any](text string, re *regexp.Regexp, def T, convert Converter[T]) T {
	if re == nil {
		return def
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return def
	}
	value, err := convert(strings.TrimSpace(m[1]))
	if err != nil {
		return def
	}
	return value
}

// String returns the trimmed first capture group or def
func String(text string, re *regexp.Regexp, def string) string {
	return ByPattern(text, re, def, func(s string) (string, error) { return s, nil })
}

// Int returns the first capture group parsed as an integer or def
func Int(text string, re *regexp.Regexp, def int) int {
	return ByPattern(text, re, def, strconv.Atoi)
}

// FirstString tries each pattern in order and returns the first non-empty
// capture.
func FirstString(text, def string, patterns ...*regexp.Regexp) string {
	for _, re := range patterns {
		if v := String(text, re, ""); v != "" {
			return v
		}
	}
	return def
}

// FirstInt tries each pattern in order and returns the first capture that
// parses.
func FirstInt(text string, def int, patterns ...*regexp.Regexp) int {
	for _, re := range patterns {
		if v, ok := intMatch(text, re); ok {
			return v
		}
	}
	return def
}

func intMatch(text string, re *regexp.Regexp) (int, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil {
		return 0, false
	}
	return v, true
}

type abilityPatterns struct {
	primary, abbreviation, fullWord *regexp.Regexp
}

var abilityScorePatterns = buildAbilityPatterns()

func buildAbilityPatterns() map[string]abilityPatterns {
	out := make(map[string]abilityPatterns, len(dnd5e.Abilities))
	for _, ability := range dnd5e.Abilities {
		upper := strings.ToUpper(ability)
		title := strings.ToUpper(ability[:1]) + ability[1:]
		out[ability] = abilityPatterns{
			// "STRENGTH +2 14": the optional signed value is the printed modifier
			primary:      regexp.MustCompile(upper + `\s*(?:\+\d+|\-\d+)?\s*(\d+)`),
			abbreviation: regexp.MustCompile(`\b` + dnd5e.AbilityAbbreviation(ability) + `(?:\s|\()?(\d+)`),
			fullWord:     regexp.MustCompile(title + `(?:\s|\()?(\d+)`),
		}
	}
	return out
}

// AbilityScore reads one ability score from a transcript. The sheet heading
// form is tried first, then "STR 14" and "Strength 14". Unknown abilities and
// misses yield the default score.
func AbilityScore(text, ability string) int {
	p, ok := abilityScorePatterns[ability]
	if !ok {
		return rules.DefaultAbilityScore
	}
	return FirstInt(text, rules.DefaultAbilityScore, p.primary, p.abbreviation, p.fullWord)
}

// ParseLeadingInt keeps the digits of text, plus a minus sign when text
// starts with one, and parses them. "+3" is 3 and "-1" is -1. Every digit is
// kept, so "14 (+2)" parses as 142. Empty or digitless input yields def.
func ParseLeadingInt(text string, def int) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return def
	}
	var b strings.Builder
	if strings.HasPrefix(trimmed, "-") {
		b.WriteByte('-')
	}
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return def
	}
	return v
}

var firstDigits = regexp.MustCompile(`\d+`)

// Level returns the first number embedded in text clamped to 1..20, or 1
func Level(text string) int {
	m := firstDigits.FindString(text)
	if m == "" {
		return rules.DefaultLevel
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return rules.DefaultLevel
	}
	return rules.ClampLevel(v)
}

// ClassLevel splits "Wizard 5" style text into the class name (everything
// before the first digit) and the level. Text with no number is returned
// whole as the class at level 1.
func ClassLevel(text string) (string, int) {
	text = strings.TrimSpace(text)
	loc := firstDigits.FindStringIndex(text)
	if loc == nil {
		return text, rules.DefaultLevel
	}
	class := strings.TrimRight(strings.TrimSpace(text[:loc[0]]), " /-,:(")
	return class, Level(text[loc[0]:])
}
