package rules

// Defaults applied when a source yields no value
const (
	DefaultAbilityScore     = 10
	DefaultHitPoints        = 10
	DefaultArmorClass       = 10
	DefaultProficiencyBonus = 2
	DefaultLevel            = 1

	MinLevel = 1
	MaxLevel = 20
)

// AbilityModifier returns floor((score-10)/2). Go's integer division truncates
// toward zero, so odd scores below 10 are adjusted down.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// ClampLevel bounds a character level to 1..20
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// SpellSaveDC is 8 + proficiency + governing modifier
func SpellSaveDC(proficiency, modifier int) int {
	return 8 + proficiency + modifier
}

// SpellAttackBonus is proficiency + governing modifier
func SpellAttackBonus(proficiency, modifier int) int {
	return proficiency + modifier
}
