package character

import (
	"strings"

	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
	"github.com/Treylong00/DND-Companion/internal/rules"
	"github.com/Treylong00/DND-Companion/internal/services/character"
)

// applyEdit returns a copy of c with the submitted fields replaced. Derived
// values are left for Recompute.
func applyEdit(c *entities.Character, edit *character.CharacterEdit) *entities.Character {
	out := *c
	previousLevel, previousClass := c.Level, c.Class

	setString(&out.Name, edit.Name)
	setString(&out.Race, edit.Race)
	setString(&out.Class, edit.Class)
	setString(&out.Background, edit.Background)
	setString(&out.Traits, edit.Traits)
	setInt(&out.Level, edit.Level)
	setInt(&out.HP.Max, edit.HPMax)
	setInt(&out.HP.Current, edit.HPCurrent)
	setInt(&out.ArmorClass, edit.ArmorClass)
	setInt(&out.ProficiencyBonus, edit.ProficiencyBonus)
	if edit.Abilities != nil {
		out.Abilities = *edit.Abilities
	}
	if edit.Equipment != nil {
		out.Equipment = trimLines(edit.Equipment)
	}
	if strings.TrimSpace(out.Name) == "" {
		out.Name = entities.PlaceholderName
	}

	if c.Spellcasting != nil {
		block := *c.Spellcasting
		block.SpellSlots = copySlots(c.Spellcasting.SpellSlots)
		out.Spellcasting = &block
	}
	if se := edit.Spellcasting; se != nil {
		if out.Spellcasting == nil {
			out.Spellcasting = &entities.Spellcasting{}
		}
		out.Spellcasting.Class = strings.TrimSpace(se.Class)
		if ability := engine.NormalizeAbility(se.Ability); ability != "" {
			out.Spellcasting.Ability = ability
		}
		if se.Cantrips != nil {
			out.Spellcasting.Cantrips = trimLines(se.Cantrips)
		}
		if se.SpellBuckets != nil {
			out.Spellcasting.Spells = engine.ParseSpellBuckets(se.SpellBuckets)
		}
	}

	// A new level or class makes the class table authoritative again
	if out.Spellcasting != nil && (out.Level != previousLevel || !strings.EqualFold(out.Class, previousClass)) {
		if rules.CasterArchetype(spellcastingClass(&out)) != dnd5e.CasterNone {
			out.Spellcasting.SpellSlots = withoutTotals(out.Spellcasting.SpellSlots)
		}
	}
	return &out
}

func spellcastingClass(c *entities.Character) string {
	if c.Spellcasting != nil && c.Spellcasting.Class != "" {
		return c.Spellcasting.Class
	}
	return c.Class
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// trimLines drops blank entries, which edit forms submit for empty lines
func trimLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func copySlots(in entities.SpellSlots) entities.SpellSlots {
	out := make(entities.SpellSlots, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// withoutTotals keeps usage so the recomputed totals can cap it
func withoutTotals(in entities.SpellSlots) entities.SpellSlots {
	out := make(entities.SpellSlots, len(in))
	for k, v := range in {
		out[k] = entities.SlotUsage{Used: v.Used}
	}
	return out
}
