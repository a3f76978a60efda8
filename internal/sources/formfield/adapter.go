// Package formfield turns the field map of a fillable character sheet into a
// character record.
package formfield

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

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

// Adapter reads character sheets from form fields
type Adapter struct {
	engine engine.Engine
}

// New creates a form-field adapter
func New(cfg *Config) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Adapter{engine: cfg.Engine}, nil
}

// Extract builds a record from a field name to value map. An empty map is a
// NoFormFields failure; anything else yields a record with defaults where
// fields are missing. The record has no ID.
func (a *Adapter) Extract(fields map[string]string) (*entities.Character, error) {
	if len(fields) == 0 {
		return nil, errors.NoFormFields("no fillable form fields found")
	}
	f := extract.Fields(fields)

	class, level := extract.ClassLevel(f.Lookup(classLevelFields...))
	if class == "" {
		class = f.Exact("Class", "CharacterClass", "Character Class")
	}
	if level == rules.DefaultLevel {
		if v := f.Exact("Level", "CharacterLevel", "Character Level"); v != "" {
			level = rules.ClampLevel(extract.ParseLeadingInt(v, rules.DefaultLevel))
		}
	}

	c := &entities.Character{
		Name:       f.Lookup("CharacterName", "Character Name"),
		Race:       f.Lookup("Race", "Species"),
		Class:      class,
		Level:      level,
		Background: f.Lookup("Background"),
	}

	for _, ability := range dnd5e.Abilities {
		c.Abilities.Set(ability, extract.ParseLeadingInt(f.Exact(abilityFields(ability)...), rules.DefaultAbilityScore))
	}
	c.AbilityModifiers = engine.Modifiers(c.Abilities)

	c.HP.Max = f.Int(rules.DefaultHitPoints, "HPMax", "HP Max", "Hit Point Maximum", "MaxHP")
	c.HP.Current = f.Int(c.HP.Max, "HPCurrent", "HP Current", "Current Hit Points", "CurrentHP")
	c.ArmorClass = f.Int(rules.DefaultArmorClass, "AC", "ArmorClass", "Armor Class")
	c.ProficiencyBonus = f.Int(rules.DefaultProficiencyBonus, "ProfBonus", "Proficiency Bonus", "ProficiencyBonus")

	c.Skills = a.engine.ResolveSkills(&engine.ResolveSkillsInput{
		Modifiers:        c.AbilityModifiers,
		ProficiencyBonus: c.ProficiencyBonus,
		Detector:         engine.FormFieldProficiency{Fields: f},
	}).Skills

	c.Equipment = equipment(f)
	c.Traits = traits(f)

	spells := readSpells(f)
	c.Spellcasting = a.engine.ResolveSpellcasting(&engine.ResolveSpellcastingInput{
		Source: spells.source(c),
	}).Spellcasting
	if c.Spellcasting == nil {
		c.Spells = extract.Dedupe(spells.generic)
	}

	return c, nil
}

var classLevelFields = []string{"ClassLevel", "Class Level", "Class & Level", "CLASS & LEVEL"}

func abilityFields(ability string) []string {
	abbr := dnd5e.AbilityAbbreviation(ability)
	title := strings.ToUpper(ability[:1]) + ability[1:]
	return []string{abbr, title, title + " Score", abbr + "Score"}
}

var currencies = []struct {
	field string
	name  string
}{
	{"CP", "Copper"},
	{"SP", "Silver"},
	{"EP", "Electrum"},
	{"GP", "Gold"},
	{"PP", "Platinum"},
}

var equipmentFields = []string{
	"Weapons1", "Weapons2", "Weapons3",
	"Wpn Name", "Wpn Name 2", "Wpn Name 3",
	"Equipment1", "Equipment2", "Equipment3", "Equipment4",
}

func equipment(f extract.Fields) []string {
	var items []string
	items = append(items, extract.SplitLines(f.Exact("Equipment"))...)
	for _, cur := range currencies {
		if v := f.Exact(cur.field); v != "" {
			items = append(items, fmt.Sprintf("%s %s pieces", v, cur.name))
		}
	}
	for _, name := range equipmentFields {
		if v := f.Exact(name); v != "" {
			items = append(items, v)
		}
	}
	items = append(items, extract.SplitLines(f.Exact("EquipmentNotes", "Equipment Notes"))...)
	return extract.Dedupe(items)
}

var traitFields = []struct {
	label string
	names []string
}{
	{"PersonalityTraits", []string{"PersonalityTraits", "Personality Traits"}},
	{"Ideals", []string{"Ideals"}},
	{"Bonds", []string{"Bonds"}},
	{"Flaws", []string{"Flaws"}},
	{"Features", []string{"Features", "Features and Traits", "Features & Traits"}},
	{"Traits", []string{"Traits"}},
	{"CharacterNotes", []string{"CharacterNotes", "Character Notes"}},
}

func traits(f extract.Fields) string {
	var parts []string
	for _, t := range traitFields {
		if v := f.Exact(t.names...); v != "" {
			parts = append(parts, t.label+": "+v)
		}
	}
	return strings.Join(parts, "\n\n")
}

var (
	cantripKey    = regexp.MustCompile(`(?i)cantrip`)
	levelSpellKey = regexp.MustCompile(`(?i)^(?:spells?[\s_-]*level[\s_-]*([1-9])|level[\s_-]*([1-9])[\s_-]*spells?)\b`)
)

// spellFields is everything spell related read from the form
type spellFields struct {
	class       string
	ability     string
	saveDC      *int
	attackBonus *int
	slots       entities.SpellSlots
	cantrips    []string
	leveled     []entities.Spell
	generic     []string
}

func readSpells(f extract.Fields) spellFields {
	sf := spellFields{
		class:       f.Exact("SpellcastingClass", "Spellcasting Class", "Spellcasting Class 2"),
		ability:     f.Exact("SpellcastingAbility", "Spellcasting Ability", "SpellcastingAbility 2"),
		saveDC:      optionalInt(f.Exact("SpellSaveDC", "Spell Save DC", "SpellSaveDC  2")),
		attackBonus: optionalInt(f.Exact("SpellAtkBonus", "Spell Attack Bonus", "SpellAtkBonus 2")),
		slots:       make(entities.SpellSlots, entities.MaxSlotLevel),
	}

	for level := 1; level <= entities.MaxSlotLevel; level++ {
		total := extract.ParseLeadingInt(f.Exact(slotTotalFields(level)...), 0)
		used := extract.ParseLeadingInt(f.Exact(slotUsedFields(level)...), 0)
		sf.slots[entities.SlotKey(level)] = entities.SlotUsage{Total: max(total, 0), Used: max(used, 0)}
	}

	for _, key := range f.Keys() {
		value := f[key]
		if strings.TrimSpace(value) == "" {
			continue
		}
		lower := strings.ToLower(key)
		switch {
		case cantripKey.MatchString(key):
			sf.cantrips = append(sf.cantrips, extract.SplitLines(value)...)
		case levelSpellKey.MatchString(key):
			level := spellKeyLevel(key)
			for _, line := range extract.SplitLines(value) {
				sf.leveled = append(sf.leveled, engine.ParseSpellLine(line, level))
			}
		case strings.Contains(lower, "spell") && !isSpellcastingScalar(lower):
			sf.generic = append(sf.generic, extract.SplitLines(value)...)
		}
	}
	sf.cantrips = extract.Dedupe(sf.cantrips)
	return sf
}

func (sf spellFields) explicit() bool {
	return sf.class != "" || sf.ability != "" || sf.saveDC != nil || sf.attackBonus != nil ||
		!rules.SlotTotals(sf.slots.Totals()).IsZero() || len(sf.cantrips) > 0 || len(sf.leveled) > 0
}

// source merges form spell fields with the record already read. Generic
// spell lines are taken as 1st level unless tagged with "(Level N)".
func (sf spellFields) source(c *entities.Character) engine.SpellcastingSource {
	class := sf.class
	if class == "" {
		class = c.Class
	}
	spells := append([]entities.Spell(nil), sf.leveled...)
	for _, line := range extract.Dedupe(sf.generic) {
		spells = append(spells, engine.ParseSpellLine(line, 1))
	}
	return engine.SpellcastingSource{
		Class:            class,
		Level:            c.Level,
		ProficiencyBonus: c.ProficiencyBonus,
		Modifiers:        c.AbilityModifiers,
		Explicit:         sf.explicit(),
		Ability:          sf.ability,
		SaveDC:           sf.saveDC,
		AttackBonus:      sf.attackBonus,
		Slots:            sf.slots,
		Cantrips:         sf.cantrips,
		Spells:           dedupeSpells(spells),
	}
}

// slotTotalFields lists names for a level's slot total. The official sheet
// numbers them "SlotsTotal 19" through "SlotsTotal 27".
func slotTotalFields(level int) []string {
	return []string{
		fmt.Sprintf("SlotsTotal %d", 18+level),
		fmt.Sprintf("SpellSlots%d", level),
		fmt.Sprintf("Slots%dTotal", level),
		fmt.Sprintf("Level%dSlots", level),
	}
}

// slotUsedFields lists names for a level's expended slots. The official
// sheet's "SlotsRemaining" box is labelled "slots expended".
func slotUsedFields(level int) []string {
	return []string{
		fmt.Sprintf("SlotsRemaining %d", 18+level),
		fmt.Sprintf("SpellSlots%dUsed", level),
		fmt.Sprintf("Slots%dUsed", level),
		fmt.Sprintf("Level%dUsed", level),
	}
}

func spellKeyLevel(key string) int {
	m := levelSpellKey.FindStringSubmatch(key)
	for _, g := range m[1:] {
		if v, err := strconv.Atoi(g); err == nil {
			return v
		}
	}
	return 1
}

func isSpellcastingScalar(lowerKey string) bool {
	for _, marker := range []string{"spellcasting", "save", "atk", "attack", "slot"} {
		if strings.Contains(lowerKey, marker) {
			return true
		}
	}
	return false
}

func optionalInt(text string) *int {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	v := extract.ParseLeadingInt(text, 0)
	return &v
}

func dedupeSpells(spells []entities.Spell) []entities.Spell {
	seen := make(map[string]struct{}, len(spells))
	out := make([]entities.Spell, 0, len(spells))
	for _, s := range spells {
		if s.Name == "" {
			continue
		}
		key := strings.ToLower(s.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
