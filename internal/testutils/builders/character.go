// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/Treylong00/DND-Companion/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances.
// Build returns the raw record; derived fields are left for the engine.
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:        "char-test-123",
			Name:      "Test Character",
			Level:     1,
			Abilities: entities.AbilityScores{Strength: 10, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10, Charisma: 10},
			Equipment: []string{},
		},
	}
}

// WithID sets the record ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithRace sets the race
func (b *CharacterBuilder) WithRace(race string) *CharacterBuilder {
	b.character.Race = race
	return b
}

// WithClass sets class and level
func (b *CharacterBuilder) WithClass(class string, level int) *CharacterBuilder {
	b.character.Class = class
	b.character.Level = level
	return b
}

// WithBackground sets the background
func (b *CharacterBuilder) WithBackground(background string) *CharacterBuilder {
	b.character.Background = background
	return b
}

// WithAbilityScores sets all six scores in STR, DEX, CON, INT, WIS, CHA order
func (b *CharacterBuilder) WithAbilityScores(str, dex, con, intel, wis, cha int) *CharacterBuilder {
	b.character.Abilities = entities.AbilityScores{
		Strength:     str,
		Dexterity:    dex,
		Constitution: con,
		Intelligence: intel,
		Wisdom:       wis,
		Charisma:     cha,
	}
	return b
}

// WithHitPoints sets maximum and current hit points
func (b *CharacterBuilder) WithHitPoints(maxHP, current int) *CharacterBuilder {
	b.character.HP = entities.HitPoints{Max: maxHP, Current: current}
	return b
}

// WithArmorClass sets the armor class
func (b *CharacterBuilder) WithArmorClass(ac int) *CharacterBuilder {
	b.character.ArmorClass = ac
	return b
}

// WithProficiencyBonus sets the proficiency bonus
func (b *CharacterBuilder) WithProficiencyBonus(bonus int) *CharacterBuilder {
	b.character.ProficiencyBonus = bonus
	return b
}

// WithEquipment replaces the equipment list
func (b *CharacterBuilder) WithEquipment(items ...string) *CharacterBuilder {
	b.character.Equipment = append([]string{}, items...)
	return b
}

// WithSpellcasting starts a spellcasting block with the given class and ability.
// Slot totals come from the given per-level counts, level 1 first.
func (b *CharacterBuilder) WithSpellcasting(class, ability string, slotTotals ...int) *CharacterBuilder {
	var totals [entities.MaxSlotLevel]int
	copy(totals[:], slotTotals)
	b.character.Spellcasting = &entities.Spellcasting{
		Class:      class,
		Ability:    ability,
		SpellSlots: entities.NewSpellSlots(totals),
		Cantrips:   []string{},
		Spells:     []entities.Spell{},
	}
	return b
}

// WithCantrips adds cantrips to the spellcasting block
func (b *CharacterBuilder) WithCantrips(names ...string) *CharacterBuilder {
	if b.character.Spellcasting != nil {
		b.character.Spellcasting.Cantrips = append(b.character.Spellcasting.Cantrips, names...)
	}
	return b
}

// WithSpell adds a leveled spell to the spellcasting block
func (b *CharacterBuilder) WithSpell(name string, level int) *CharacterBuilder {
	if b.character.Spellcasting != nil {
		b.character.Spellcasting.Spells = append(b.character.Spellcasting.Spells, entities.Spell{Name: name, Level: level})
	}
	return b
}

// WithSlotsUsed marks slots of one level as expended
func (b *CharacterBuilder) WithSlotsUsed(level, used int) *CharacterBuilder {
	if b.character.Spellcasting == nil {
		return b
	}
	key := entities.SlotKey(level)
	usage := b.character.Spellcasting.SpellSlots[key]
	usage.Used = used
	b.character.Spellcasting.SpellSlots[key] = usage
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}
