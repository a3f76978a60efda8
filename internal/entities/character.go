// Package entities provides the character record produced by an import and
// persisted by the repositories.
package entities

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
)

// EntityTypeCharacter is the rpg-toolkit entity type for imported characters
const EntityTypeCharacter = "character"

// PlaceholderName is used when a source yields no character name
const PlaceholderName = "Imported Character"

// Character is a normalized D&D 5e character sheet.
// Text fields are never absent; they default to the empty string.
type Character struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Race             string        `json:"race"`
	Class            string        `json:"class"`
	Level            int           `json:"level"`
	Abilities        AbilityScores `json:"abilities"`
	AbilityModifiers AbilityScores `json:"ability_modifiers"`
	HP               HitPoints     `json:"hp"`
	ArmorClass       int           `json:"armor_class"`
	ProficiencyBonus int           `json:"proficiency_bonus"`
	Skills           []Skill       `json:"skills"`
	Equipment        []string      `json:"equipment"`
	// Spells is the flat spell list kept for non-casters only.
	Spells       []string      `json:"spells,omitempty"`
	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`
	Background   string        `json:"background"`
	Traits       string        `json:"traits"`
}

var _ core.Entity = (*Character)(nil)

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// AbilityScores holds one value per core ability. It is used for both raw
// scores and their modifiers.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the value for a lowercase ability name, or 0 when unknown
func (a AbilityScores) Get(ability string) int {
	switch ability {
	case dnd5e.AbilityStrength:
		return a.Strength
	case dnd5e.AbilityDexterity:
		return a.Dexterity
	case dnd5e.AbilityConstitution:
		return a.Constitution
	case dnd5e.AbilityIntelligence:
		return a.Intelligence
	case dnd5e.AbilityWisdom:
		return a.Wisdom
	case dnd5e.AbilityCharisma:
		return a.Charisma
	}
	return 0
}

// Set stores the value for a lowercase ability name. It reports false for an
// unknown name.
func (a *AbilityScores) Set(ability string, value int) bool {
	switch ability {
	case dnd5e.AbilityStrength:
		a.Strength = value
	case dnd5e.AbilityDexterity:
		a.Dexterity = value
	case dnd5e.AbilityConstitution:
		a.Constitution = value
	case dnd5e.AbilityIntelligence:
		a.Intelligence = value
	case dnd5e.AbilityWisdom:
		a.Wisdom = value
	case dnd5e.AbilityCharisma:
		a.Charisma = value
	default:
		return false
	}
	return true
}

// HitPoints tracks maximum and current hit points
type HitPoints struct {
	Max     int `json:"max"`
	Current int `json:"current"`
}

// Skill is one of the eighteen canonical skills with its resolved bonus
type Skill struct {
	Name       string `json:"name"`
	Ability    string `json:"ability"`
	Proficient bool   `json:"proficient"`
	Bonus      int    `json:"bonus"`
}

// Spellcasting holds the resources of a spellcasting character
type Spellcasting struct {
	Class            string     `json:"class"`
	Ability          string     `json:"ability"`
	SpellSaveDC      int        `json:"spell_save_dc"`
	SpellAttackBonus int        `json:"spell_attack_bonus"`
	SpellSlots       SpellSlots `json:"spell_slots"`
	Cantrips         []string   `json:"cantrips"`
	Spells           []Spell    `json:"spells"`
}

// Spell is a known or prepared spell of level 1 or higher
type Spell struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SlotUsage is the total and expended count for one slot level
type SlotUsage struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// SpellSlots maps slot level keys "1" through "9" to their usage
type SpellSlots map[string]SlotUsage

// MaxSlotLevel is the highest spell slot level
const MaxSlotLevel = 9

// SlotKey returns the map key for a slot level
func SlotKey(level int) string {
	return strconv.Itoa(level)
}

// NewSpellSlots builds a slot map with all nine levels present
func NewSpellSlots(totals [MaxSlotLevel]int) SpellSlots {
	slots := make(SpellSlots, MaxSlotLevel)
	for i, total := range totals {
		slots[SlotKey(i+1)] = SlotUsage{Total: total}
	}
	return slots
}

// Totals returns the per-level totals, index 0 being level 1
func (s SpellSlots) Totals() [MaxSlotLevel]int {
	var out [MaxSlotLevel]int
	for i := range out {
		out[i] = s[SlotKey(i+1)].Total
	}
	return out
}

// Get returns the usage for a slot level and whether that level is tracked
func (s SpellSlots) Get(level int) (SlotUsage, bool) {
	usage, ok := s[SlotKey(level)]
	return usage, ok
}

// Fill adds zeroed entries for any missing level
func (s SpellSlots) Fill() SpellSlots {
	if s == nil {
		s = make(SpellSlots, MaxSlotLevel)
	}
	for level := 1; level <= MaxSlotLevel; level++ {
		if _, ok := s[SlotKey(level)]; !ok {
			s[SlotKey(level)] = SlotUsage{}
		}
	}
	return s
}
