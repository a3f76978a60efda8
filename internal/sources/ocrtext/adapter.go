// Package ocrtext assembles a character record from the flat text transcript
// of a scanned sheet. Every lookup is best effort: a value that cannot be
// found falls back to its default and extraction never fails.
package ocrtext

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/extract"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

// Config holds the adapter's dependencies
type Config struct {
	Engine engine.Engine
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// Adapter reads character sheets from OCR transcripts
type Adapter struct {
	engine engine.Engine
}

// New creates an OCR transcript adapter
func New(cfg *Config) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Adapter{engine: cfg.Engine}, nil
}

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`CHARACTER NAME[:\s]*([^\n]+)`),
		regexp.MustCompile(`Name[:\s]*([^\n]+)`),
	}
	racePattern       = regexp.MustCompile(`RACE[:\s]*([^\n]+)`)
	classLevelPattern = regexp.MustCompile(`CLASS [&+]+ LEVEL[:\s]*([^\n]+)`)
	backgroundPattern = regexp.MustCompile(`BACKGROUND[:\s]*([^\n]+)`)

	hpMaxPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Hit Point Maximum[:\s]*(\d+)`),
		regexp.MustCompile(`HP Max[:\s]*(\d+)`),
	}
	hpCurrentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`CURRENT HIT POINTS[:\s]*(\d+)`),
		regexp.MustCompile(`HP Current[:\s]*(\d+)`),
	}
	armorClassPatterns = []*regexp.Regexp{
		regexp.MustCompile(`ARMOR CLASS[:\s]*(\d+)`),
		regexp.MustCompile(`\bAC[:\s]*(\d+)`),
	}
	proficiencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`PROFICIENCY BONUS[:\s]*\+?(\d+)`),
		regexp.MustCompile(`Prof(?:iciency)? Bonus[:\s]*\+?(\d+)`),
	}

	spellClassPattern   = regexp.MustCompile(`(?i)SPELLCASTING CLASS[:\s]*([^\n]+)`)
	spellAbilityPattern = regexp.MustCompile(`(?i)SPELLCASTING ABILITY[:\s]*([^\n]+)`)
	spellSaveDCPattern  = regexp.MustCompile(`(?i)SPELL SAVE DC[:\s]*(\d+)`)
	spellAttackPattern  = regexp.MustCompile(`(?i)SPELL ATTACK BONUS[:\s]*\+?(-?\d+)`)

	slotsTotalPattern    = regexp.MustCompile(`(?i)SLOTS TOTAL[:\s]*(\d+)`)
	slotsExpendedPattern = regexp.MustCompile(`(?i)SLOTS EXPENDED[:\s]*(\d+)`)
	slotPhrase           = regexp.MustCompile(`(?i)SLOTS (?:TOTAL|EXPENDED)[:\s]*\d*`)

	// leadingMarks strips checkbox glyphs OCR leaves in front of list items.
	// A lone x or o only counts when it stands by itself.
	leadingMarks = regexp.MustCompile(`^(?:[☐☑☒✓✔■●•*+.\[\](){}]|[xXoO](?:[\s\])}]|$))+\s*`)
)

var (
	skillsEnd    = []string{"PASSIVE", "WEAPONS", "ATTACKS", "EQUIPMENT"}
	equipmentEnd = []string{"FEATURES", "TRAITS", "CHARACTER"}
	traitsEnd    = []string{"IDEALS", "BONDS", "FLAWS"}
	spellsEnd    = []string{"CANTRIPS", "SLOTS", "CLASS"}
	spellPageEnd = []string{
		"PERSONALITY TRAITS", "EQUIPMENT", "FEATURES",
		"SPELLCASTING", "SPELL SAVE DC", "SPELL ATTACK BONUS",
	}
)

// Extract builds a record from a transcript. The record has no ID.
func (a *Adapter) Extract(transcript string) (*entities.Character, error) {
	text := Normalize(transcript)

	class, level := extract.ClassLevel(extract.String(text, classLevelPattern, ""))
	c := &entities.Character{
		Name:       extract.FirstString(text, "", namePatterns...),
		Race:       extract.String(text, racePattern, ""),
		Class:      class,
		Level:      level,
		Background: extract.String(text, backgroundPattern, ""),
	}

	for _, ability := range dnd5e.Abilities {
		c.Abilities.Set(ability, extract.AbilityScore(text, ability))
	}
	c.AbilityModifiers = engine.Modifiers(c.Abilities)

	c.HP.Max = extract.FirstInt(text, rules.DefaultHitPoints, hpMaxPatterns...)
	c.HP.Current = extract.FirstInt(text, c.HP.Max, hpCurrentPatterns...)
	c.ArmorClass = extract.FirstInt(text, rules.DefaultArmorClass, armorClassPatterns...)
	c.ProficiencyBonus = extract.FirstInt(text, rules.DefaultProficiencyBonus, proficiencyPatterns...)

	c.Skills = a.engine.ResolveSkills(&engine.ResolveSkillsInput{
		Modifiers:        c.AbilityModifiers,
		ProficiencyBonus: c.ProficiencyBonus,
		Detector:         engine.MarkedTextProficiency{Section: extract.Section(text, "SKILLS", skillsEnd...)},
	}).Skills

	c.Equipment = listLines(extract.Section(text, "EQUIPMENT", equipmentEnd...), "EQUIPMENT")
	c.Traits = extract.Section(text, "PERSONALITY TRAITS", traitsEnd...)

	spells := readSpells(text)
	c.Spellcasting = a.engine.ResolveSpellcasting(&engine.ResolveSpellcastingInput{
		Source: spells.source(c),
	}).Spellcasting
	if c.Spellcasting == nil {
		c.Spells = extract.Dedupe(spells.generic)
	}

	return c, nil
}

// Normalize folds compatibility characters (ligatures, full-width digits)
// and line endings so the patterns see plain text.
func Normalize(transcript string) string {
	text := norm.NFKC.String(transcript)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// levelHeading returns the sheet heading for a spell level, e.g. "3RD LEVEL"
func levelHeading(level int) string {
	suffix := "TH"
	switch level {
	case 1:
		suffix = "ST"
	case 2:
		suffix = "ND"
	case 3:
		suffix = "RD"
	}
	return fmt.Sprintf("%d%s LEVEL", level, suffix)
}

// spellText is everything spell related found in the transcript
type spellText struct {
	class       string
	ability     string
	saveDC      *int
	attackBonus *int
	slots       entities.SpellSlots
	cantrips    []string
	leveled     []entities.Spell
	generic     []string
}

func readSpells(text string) spellText {
	st := spellText{
		class:       extract.String(text, spellClassPattern, ""),
		ability:     extract.String(text, spellAbilityPattern, ""),
		saveDC:      optionalInt(text, spellSaveDCPattern),
		attackBonus: optionalInt(text, spellAttackPattern),
		slots:       make(entities.SpellSlots, entities.MaxSlotLevel),
	}

	headings := make([]string, 0, entities.MaxSlotLevel+1)
	headings = append(headings, "CANTRIPS")
	for level := 1; level <= entities.MaxSlotLevel; level++ {
		headings = append(headings, levelHeading(level))
	}

	st.cantrips = listLines(extract.Section(text, "CANTRIPS", append(headings[1:], spellPageEnd...)...), "CANTRIPS")

	for level := 1; level <= entities.MaxSlotLevel; level++ {
		heading := levelHeading(level)
		section := extract.Section(text, heading, append(without(headings, heading), spellPageEnd...)...)
		usage := entities.SlotUsage{
			Total: extract.Int(section, slotsTotalPattern, 0),
			Used:  extract.Int(section, slotsExpendedPattern, 0),
		}
		st.slots[entities.SlotKey(level)] = usage
		for _, line := range listLines(slotPhrase.ReplaceAllString(section, ""), heading) {
			st.leveled = append(st.leveled, engine.ParseSpellLine(line, level))
		}
	}

	if len(st.leveled) == 0 {
		st.generic = listLines(extract.Section(text, "SPELLS", spellsEnd...), "SPELLS")
	}
	return st
}

func (st spellText) explicit() bool {
	return st.class != "" || st.ability != "" || st.saveDC != nil || st.attackBonus != nil ||
		!rules.SlotTotals(st.slots.Totals()).IsZero() || len(st.cantrips) > 0 || len(st.leveled) > 0
}

func (st spellText) source(c *entities.Character) engine.SpellcastingSource {
	class := st.class
	if class == "" {
		class = c.Class
	}
	spells := append([]entities.Spell(nil), st.leveled...)
	for _, line := range st.generic {
		spells = append(spells, engine.ParseSpellLine(line, 1))
	}
	return engine.SpellcastingSource{
		Class:            class,
		Level:            c.Level,
		ProficiencyBonus: c.ProficiencyBonus,
		Modifiers:        c.AbilityModifiers,
		Explicit:         st.explicit(),
		Ability:          st.ability,
		SaveDC:           st.saveDC,
		AttackBonus:      st.attackBonus,
		Slots:            st.slots,
		Cantrips:         st.cantrips,
		Spells:           spells,
	}
}

// listLines splits a section into items with checkbox marks removed,
// dropping a repeated heading line and duplicates.
func listLines(section, heading string) []string {
	var out []string
	for _, line := range extract.SplitLines(section) {
		line = strings.TrimSpace(leadingMarks.ReplaceAllString(line, ""))
		if line == "" || strings.EqualFold(line, heading) {
			continue
		}
		out = append(out, line)
	}
	return extract.Dedupe(out)
}

func optionalInt(text string, re *regexp.Regexp) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := extract.ParseLeadingInt(m[1], 0)
	return &v
}

func without(items []string, drop string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != drop {
			out = append(out, item)
		}
	}
	return out
}
