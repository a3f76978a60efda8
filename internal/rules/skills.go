package rules

import (
	"fmt"

	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
)

// SkillDefinition binds a canonical skill to its governing ability and the
// names fillable sheets use for its proficiency box.
type SkillDefinition struct {
	Name    string
	Ability string
	// FieldKey is the name with spaces removed, as used in field names such as
	// "SleightOfHandProf".
	FieldKey string
	// ShortKey is the truncated form some sheets use after a "Skills" prefix.
	ShortKey string
	// SheetCheckbox is the box number on the official fillable sheet.
	SheetCheckbox int
}

// CheckboxField returns the official sheet field name, e.g. "Check Box 23"
func (d SkillDefinition) CheckboxField() string {
	return fmt.Sprintf("Check Box %d", d.SheetCheckbox)
}

var skillTable = []SkillDefinition{
	{dnd5e.SkillAcrobatics, dnd5e.AbilityDexterity, "Acrobatics", "Acrobatics", 23},
	{dnd5e.SkillAnimalHandling, dnd5e.AbilityWisdom, "AnimalHandling", "Animal", 24},
	{dnd5e.SkillArcana, dnd5e.AbilityIntelligence, "Arcana", "Arcana", 25},
	{dnd5e.SkillAthletics, dnd5e.AbilityStrength, "Athletics", "Athletics", 26},
	{dnd5e.SkillDeception, dnd5e.AbilityCharisma, "Deception", "Deception", 27},
	{dnd5e.SkillHistory, dnd5e.AbilityIntelligence, "History", "History", 28},
	{dnd5e.SkillInsight, dnd5e.AbilityWisdom, "Insight", "Insight", 29},
	{dnd5e.SkillIntimidation, dnd5e.AbilityCharisma, "Intimidation", "Intimidation", 30},
	{dnd5e.SkillInvestigation, dnd5e.AbilityIntelligence, "Investigation", "Investigation", 31},
	{dnd5e.SkillMedicine, dnd5e.AbilityWisdom, "Medicine", "Medicine", 32},
	{dnd5e.SkillNature, dnd5e.AbilityIntelligence, "Nature", "Nature", 33},
	{dnd5e.SkillPerception, dnd5e.AbilityWisdom, "Perception", "Perception", 34},
	{dnd5e.SkillPerformance, dnd5e.AbilityCharisma, "Performance", "Performance", 35},
	{dnd5e.SkillPersuasion, dnd5e.AbilityCharisma, "Persuasion", "Persuasion", 36},
	{dnd5e.SkillReligion, dnd5e.AbilityIntelligence, "Religion", "Religion", 37},
	{dnd5e.SkillSleightOfHand, dnd5e.AbilityDexterity, "SleightOfHand", "Sleight", 38},
	{dnd5e.SkillStealth, dnd5e.AbilityDexterity, "Stealth", "Stealth", 39},
	{dnd5e.SkillSurvival, dnd5e.AbilityWisdom, "Survival", "Survival", 40},
}

// Skills returns the eighteen canonical skills in canonical order. The slice
// is a copy.
func Skills() []SkillDefinition {
	out := make([]SkillDefinition, len(skillTable))
	copy(out, skillTable)
	return out
}

// SkillCount is the number of canonical skills
const SkillCount = 18

// LookupSkill finds a skill by exact canonical name
func LookupSkill(name string) (SkillDefinition, bool) {
	for _, def := range skillTable {
		if def.Name == name {
			return def, true
		}
	}
	return SkillDefinition{}, false
}
