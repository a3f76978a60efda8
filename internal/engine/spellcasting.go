package engine

import (
	"strings"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

// SpellcastingSource is what an adapter managed to read about spellcasting.
// Pointer fields are nil when the source did not carry the value.
type SpellcastingSource struct {
	Class            string
	Level            int
	ProficiencyBonus int
	Modifiers        entities.AbilityScores

	// Explicit is set when spellcasting-specific fields were found, which
	// yields a block even for a class that does not cast.
	Explicit    bool
	Ability     string
	SaveDC      *int
	AttackBonus *int
	Slots       entities.SpellSlots
	Cantrips    []string
	Spells      []entities.Spell
}

// ResolveSpellcasting builds the spellcasting block, or returns nil for a
// non-caster without explicit spellcasting fields.
//
// Slot totals read from the source always win. Totals are computed from the
// class tables only when every source total is zero.
func ResolveSpellcasting(src SpellcastingSource) *entities.Spellcasting {
	archetype := rules.CasterArchetype(src.Class)
	if archetype == dnd5e.CasterNone && !src.Explicit {
		return nil
	}

	ability := NormalizeAbility(src.Ability)
	if ability == "" {
		ability = rules.SpellcastingAbility(src.Class)
	}

	slots := copySlots(src.Slots)
	if archetype != dnd5e.CasterNone && rules.SlotTotals(slots.Totals()).IsZero() {
		slots = computedSlots(archetype, src.Level, slots)
	}

	block := &entities.Spellcasting{
		Class:      src.Class,
		Ability:    ability,
		SpellSlots: slots,
		Cantrips:   nonNilStrings(src.Cantrips),
		Spells:     nonNilSpells(src.Spells),
	}

	modifier := src.Modifiers.Get(ability)
	switch {
	case src.SaveDC != nil:
		block.SpellSaveDC = *src.SaveDC
	case ability != "":
		block.SpellSaveDC = rules.SpellSaveDC(src.ProficiencyBonus, modifier)
	}
	switch {
	case src.AttackBonus != nil:
		block.SpellAttackBonus = *src.AttackBonus
	case ability != "":
		block.SpellAttackBonus = rules.SpellAttackBonus(src.ProficiencyBonus, modifier)
	}
	return block
}

// NormalizeAbility maps "INT", "Int" or "intelligence" to the stored
// lowercase name. Unrecognized text yields "".
func NormalizeAbility(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ""
	}
	for _, ability := range dnd5e.Abilities {
		if lower == ability || lower == strings.ToLower(dnd5e.AbilityAbbreviation(ability)) {
			return ability
		}
	}
	for _, ability := range dnd5e.Abilities {
		if strings.HasPrefix(lower, ability) {
			return ability
		}
	}
	return ""
}

// computedSlots replaces totals with the class table, keeping any recorded
// usage that still fits.
func computedSlots(archetype string, level int, current entities.SpellSlots) entities.SpellSlots {
	totals := rules.SpellSlotsFor(archetype, rules.ClampLevel(level))
	out := entities.NewSpellSlots(totals)
	for key, usage := range out {
		used := current[key].Used
		if used > usage.Total {
			used = usage.Total
		}
		if used < 0 {
			used = 0
		}
		usage.Used = used
		out[key] = usage
	}
	return out
}

// copySlots keeps only levels 1..9 and fills the gaps
func copySlots(in entities.SpellSlots) entities.SpellSlots {
	out := make(entities.SpellSlots, entities.MaxSlotLevel)
	for level := 1; level <= entities.MaxSlotLevel; level++ {
		if usage, ok := in.Get(level); ok {
			out[entities.SlotKey(level)] = usage
		}
	}
	return out.Fill()
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilSpells(in []entities.Spell) []entities.Spell {
	if in == nil {
		return []entities.Spell{}
	}
	return in
}

// SpellcastingSlotTotalsZero reports whether a block tracks no slots at all
func SpellcastingSlotTotalsZero(block *entities.Spellcasting) bool {
	return block == nil || rules.SlotTotals(block.SpellSlots.Totals()).IsZero()
}
