package rules

import (
	"strings"

	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
)

var (
	fullCasters    = []string{"wizard", "sorcerer", "bard", "cleric", "druid"}
	halfCasters    = []string{"paladin", "ranger", "artificer"}
	warlockCasters = []string{"warlock"}
	thirdCasters   = []string{"eldritch knight", "arcane trickster"}
)

var archetypeOrder = []struct {
	archetype string
	classes   []string
}{
	{dnd5e.CasterFull, fullCasters},
	{dnd5e.CasterHalf, halfCasters},
	{dnd5e.CasterWarlock, warlockCasters},
	{dnd5e.CasterThird, thirdCasters},
}

var governingAbility = []struct {
	ability string
	classes []string
}{
	{dnd5e.AbilityIntelligence, []string{"wizard", "artificer", "eldritch knight", "arcane trickster"}},
	{dnd5e.AbilityWisdom, []string{"cleric", "druid", "ranger"}},
	{dnd5e.AbilityCharisma, []string{"bard", "sorcerer", "paladin", "warlock"}},
}

// CasterArchetype classifies a free-form class name. Matching is a
// case-insensitive substring test so "Wizard 5" and "Fighter (Eldritch
// Knight)" both classify. Returns dnd5e.CasterNone for non-casters.
func CasterArchetype(className string) string {
	lower := strings.ToLower(className)
	if strings.TrimSpace(lower) == "" {
		return dnd5e.CasterNone
	}
	for _, group := range archetypeOrder {
		if containsAny(lower, group.classes) {
			return group.archetype
		}
	}
	return dnd5e.CasterNone
}

// IsCaster reports whether the class has any spell slot progression
func IsCaster(className string) bool {
	return CasterArchetype(className) != dnd5e.CasterNone
}

// SpellcastingAbility returns the ability that governs casting for a class,
// or "" when none applies.
func SpellcastingAbility(className string) string {
	lower := strings.ToLower(className)
	if strings.TrimSpace(lower) == "" {
		return ""
	}
	for _, group := range governingAbility {
		if containsAny(lower, group.classes) {
			return group.ability
		}
	}
	return ""
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
