// Package dnd5e holds the fixed vocabulary of the 5th edition rules that
// imported records are expressed in.
package dnd5e

// Ability names as they appear in stored records
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// Abilities lists the six abilities in sheet order
var Abilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityAbbreviation returns the three letter sheet abbreviation (STR, DEX...)
func AbilityAbbreviation(ability string) string {
	switch ability {
	case AbilityStrength:
		return "STR"
	case AbilityDexterity:
		return "DEX"
	case AbilityConstitution:
		return "CON"
	case AbilityIntelligence:
		return "INT"
	case AbilityWisdom:
		return "WIS"
	case AbilityCharisma:
		return "CHA"
	}
	return ""
}

// Skill names in canonical (alphabetical) order
const (
	SkillAcrobatics     = "Acrobatics"
	SkillAnimalHandling = "Animal Handling"
	SkillArcana         = "Arcana"
	SkillAthletics      = "Athletics"
	SkillDeception      = "Deception"
	SkillHistory        = "History"
	SkillInsight        = "Insight"
	SkillIntimidation   = "Intimidation"
	SkillInvestigation  = "Investigation"
	SkillMedicine       = "Medicine"
	SkillNature         = "Nature"
	SkillPerception     = "Perception"
	SkillPerformance    = "Performance"
	SkillPersuasion     = "Persuasion"
	SkillReligion       = "Religion"
	SkillSleightOfHand  = "Sleight of Hand"
	SkillStealth        = "Stealth"
	SkillSurvival       = "Survival"
)

// Caster archetypes
const (
	CasterFull    = "full"
	CasterHalf    = "half"
	CasterThird   = "third"
	CasterWarlock = "warlock"
	CasterNone    = "none"
)
