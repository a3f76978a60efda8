package rules

import (
	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
)

// SlotTotals is a per-rank slot count, index 0 being 1st-level slots
type SlotTotals [9]int

// fullCasterSlots is the standard progression for levels 1..20
var fullCasterSlots = [MaxLevel]SlotTotals{
	{2},
	{3},
	{4, 2},
	{4, 3},
	{4, 3, 2},
	{4, 3, 3},
	{4, 3, 3, 1},
	{4, 3, 3, 2},
	{4, 3, 3, 3, 1},
	{4, 3, 3, 3, 2},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// pactSlot is the warlock's slot count and the single rank they are cast at
type pactSlot struct {
	count int
	rank  int
}

var warlockPactSlots = [MaxLevel]pactSlot{
	{1, 1}, {2, 1}, {2, 2}, {2, 2}, {2, 3},
	{2, 3}, {2, 4}, {2, 4}, {2, 5}, {2, 5},
	{3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5},
	{3, 5}, {4, 5}, {4, 5}, {4, 5}, {4, 5},
}

// mysticArcanum maps the unlocking warlock level to the rank it grants
var mysticArcanum = []struct {
	level int
	rank  int
}{
	{11, 6},
	{13, 7},
	{15, 8},
	{17, 9},
}

// FullCasterSlots returns the full caster row for a level. Levels above 20
// use the level 20 row; levels below 1 have no slots.
func FullCasterSlots(level int) SlotTotals {
	if level < MinLevel {
		return SlotTotals{}
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return fullCasterSlots[level-1]
}

// HalfCasterEffectiveLevel is floor((level-1)/2)+1, or 0 at level 1 and below
func HalfCasterEffectiveLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level-1)/2 + 1
}

// ThirdCasterEffectiveLevel is floor(level/3)
func ThirdCasterEffectiveLevel(level int) int {
	if level < 0 {
		return 0
	}
	return level / 3
}

// WarlockSlots returns pact slots at their single rank plus any Mystic
// Arcanum ranks unlocked at the given level.
func WarlockSlots(level int) SlotTotals {
	var out SlotTotals
	if level < MinLevel {
		return out
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	pact := warlockPactSlots[level-1]
	out[pact.rank-1] = pact.count
	for _, arcanum := range mysticArcanum {
		if level >= arcanum.level {
			out[arcanum.rank-1] = 1
		}
	}
	return out
}

// SpellSlotsFor computes slot totals for an archetype at a character level
func SpellSlotsFor(archetype string, level int) SlotTotals {
	switch archetype {
	case dnd5e.CasterFull:
		return FullCasterSlots(level)
	case dnd5e.CasterHalf:
		return capRank(FullCasterSlots(HalfCasterEffectiveLevel(level)), 5)
	case dnd5e.CasterThird:
		return capRank(FullCasterSlots(ThirdCasterEffectiveLevel(level)), 4)
	case dnd5e.CasterWarlock:
		return WarlockSlots(level)
	}
	return SlotTotals{}
}

// SpellSlotsForClass classifies the class then computes its slot totals
func SpellSlotsForClass(className string, level int) SlotTotals {
	return SpellSlotsFor(CasterArchetype(className), level)
}

// capRank zeroes every rank above maxRank
func capRank(totals SlotTotals, maxRank int) SlotTotals {
	for i := maxRank; i < len(totals); i++ {
		totals[i] = 0
	}
	return totals
}

// IsZero reports whether every rank has a zero total
func (t SlotTotals) IsZero() bool {
	return t == SlotTotals{}
}
