package testutils

import (
	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
	"github.com/Treylong00/DND-Companion/internal/testutils/builders"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Elara Moonwhisper"

	// TestCharacterID is the default record id for test fixtures
	TestCharacterID = "char_3f1c2a9e-8d4b-4c6e-9a51-2b7d0e4f6a13"
)

// CreateTestWizard returns a fully derived level 5 wizard record with
// Arcana and History proficiency and a 1st level slot expended.
func CreateTestWizard(id string) *entities.Character {
	c := builders.NewCharacterBuilder().
		WithID(id).
		WithName(TestCharacterName).
		WithRace("High Elf").
		WithClass("Wizard", 5).
		WithBackground("Sage").
		WithAbilityScores(8, 14, 12, 18, 10, 11).
		WithHitPoints(27, 27).
		WithArmorClass(12).
		WithProficiencyBonus(3).
		WithEquipment("Spellbook", "Dagger").
		WithSpellcasting("Wizard", dnd5e.AbilityIntelligence, 4, 3, 2).
		WithCantrips("Fire Bolt", "Mage Hand").
		WithSpell("Magic Missile", 1).
		WithSpell("Fireball", 3).
		WithSlotsUsed(1, 1).
		Build()
	return engine.Recompute(c, []string{dnd5e.SkillArcana, dnd5e.SkillHistory})
}

// CreateTestFighter returns a level 3 fighter with no spellcasting
func CreateTestFighter(id string) *entities.Character {
	c := builders.NewCharacterBuilder().
		WithID(id).
		WithName("Brom Ironfist").
		WithRace("Mountain Dwarf").
		WithClass("Fighter", 3).
		WithAbilityScores(16, 12, 15, 10, 11, 8).
		WithHitPoints(31, 31).
		WithArmorClass(18).
		WithProficiencyBonus(2).
		WithEquipment("Longsword", "Chain mail").
		Build()
	return engine.Recompute(c, []string{dnd5e.SkillAthletics})
}

// LegacyRecordJSON is a record as the manual entry form used to save it:
// skills as a list of names, no modifiers, blank list entries.
const LegacyRecordJSON = `{
  "id": "20240101120000",
  "name": "Old Timer",
  "race": "Human",
  "class": "Rogue",
  "level": 2,
  "abilities": {"strength": 10, "dexterity": 16, "constitution": 12, "intelligence": 13, "wisdom": 10, "charisma": 14},
  "hp": {"max": 15, "current": 15},
  "armor_class": 14,
  "proficiency_bonus": 2,
  "skills": ["Stealth", "Deception"],
  "equipment": ["Shortsword", "", "Thieves' tools", "  "],
  "spells": [""],
  "background": "Criminal",
  "traits": ""
}`
