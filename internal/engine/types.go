package engine

import (
	"github.com/Treylong00/DND-Companion/internal/entities"
)

// ResolveSkillsInput carries what skill resolution depends on
type ResolveSkillsInput struct {
	Modifiers        entities.AbilityScores
	ProficiencyBonus int
	Detector         ProficiencyDetector
}

// ResolveSkillsOutput holds all eighteen skills
type ResolveSkillsOutput struct {
	Skills []entities.Skill
}

// ResolveSpellcastingInput wraps the adapter's spellcasting reading
type ResolveSpellcastingInput struct {
	Source SpellcastingSource
}

// ResolveSpellcastingOutput holds the block, nil for non-casters
type ResolveSpellcastingOutput struct {
	Spellcasting *entities.Spellcasting
}

// RecomputeInput is an edited record. ProficientSkills replaces the
// record's proficiencies when non-nil.
type RecomputeInput struct {
	Character        *entities.Character
	ProficientSkills []string
}

// RecomputeOutput is a new record with derived values brought in line
type RecomputeOutput struct {
	Character *entities.Character
}

// ValidateSlotUpdateInput describes a change in expended slots
type ValidateSlotUpdateInput struct {
	Spellcasting *entities.Spellcasting
	Level        int
	Used         int
}
