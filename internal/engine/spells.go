package engine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Treylong00/DND-Companion/internal/entities"
)

// HighLevelBucket groups every spell of 4th level and above for editing
const HighLevelBucket = "4+"

// DefaultHighSpellLevel is assumed for a 4+ entry without a "(Level N)" tag
const DefaultHighSpellLevel = 4

var levelSuffix = regexp.MustCompile(`(?i)\s*\(\s*level\s*(\d+)\s*\)\s*$`)

// ParseSpellLine strips a trailing "(Level N)" tag from a spell line and
// returns the spell at that level. Lines without a valid tag get
// defaultLevel.
func ParseSpellLine(line string, defaultLevel int) entities.Spell {
	line = strings.TrimSpace(line)
	m := levelSuffix.FindStringSubmatchIndex(line)
	if m == nil {
		return entities.Spell{Name: line, Level: defaultLevel}
	}
	name := strings.TrimSpace(line[:m[0]])
	level, err := strconv.Atoi(line[m[2]:m[3]])
	if err != nil || level < 1 || level > entities.MaxSlotLevel {
		level = defaultLevel
	}
	return entities.Spell{Name: name, Level: level}
}

// FormatSpellLine renders a spell for the bucket it belongs to. Spells below
// 4th level are rendered by name; higher spells carry a "(Level N)" tag.
func FormatSpellLine(spell entities.Spell) string {
	if spell.Level >= DefaultHighSpellLevel {
		return spell.Name + " (Level " + strconv.Itoa(spell.Level) + ")"
	}
	return spell.Name
}

// BucketKey returns "1", "2", "3" or "4+" for a spell level
func BucketKey(level int) string {
	if level >= DefaultHighSpellLevel {
		return HighLevelBucket
	}
	return strconv.Itoa(level)
}

// SpellBuckets groups spells into the "1", "2", "3" and "4+" edit lists.
// Every key is present.
func SpellBuckets(spells []entities.Spell) map[string][]string {
	out := map[string][]string{
		"1":             {},
		"2":             {},
		"3":             {},
		HighLevelBucket: {},
	}
	for _, spell := range spells {
		if spell.Level < 1 || spell.Name == "" {
			continue
		}
		key := BucketKey(spell.Level)
		out[key] = append(out[key], FormatSpellLine(spell))
	}
	return out
}

// ParseSpellBuckets is the inverse of SpellBuckets. Unknown keys are ignored
// and the result is ordered by level then input order.
func ParseSpellBuckets(buckets map[string][]string) []entities.Spell {
	var out []entities.Spell
	for _, key := range []string{"1", "2", "3"} {
		level, _ := strconv.Atoi(key)
		for _, line := range buckets[key] {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, entities.Spell{Name: line, Level: level})
			}
		}
	}
	var high []entities.Spell
	for _, line := range buckets[HighLevelBucket] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		high = append(high, ParseSpellLine(line, DefaultHighSpellLevel))
	}
	sort.SliceStable(high, func(i, j int) bool { return high[i].Level < high[j].Level })
	return append(out, high...)
}
