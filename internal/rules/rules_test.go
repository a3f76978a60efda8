package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func (s *RulesTestSuite) TestAbilityModifierFloors() {
	testCases := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{15, 2},
		{20, 5},
		{30, 10},
	}

	for _, tc := range testCases {
		s.Assert().Equal(tc.expected, rules.AbilityModifier(tc.score), "score %d", tc.score)
	}
}

func (s *RulesTestSuite) TestAbilityModifierLaw() {
	for score := -10; score <= 40; score++ {
		expected := (score - 10) / 2
		if (score-10)%2 != 0 && score < 10 {
			expected--
		}
		s.Assert().Equal(expected, rules.AbilityModifier(score), "score %d", score)
		s.Assert().LessOrEqual(2*rules.AbilityModifier(score), score-10)
		s.Assert().Greater(2*rules.AbilityModifier(score)+2, score-10)
	}
}

func (s *RulesTestSuite) TestSkillTable() {
	skills := rules.Skills()
	s.Require().Len(skills, rules.SkillCount)

	seen := make(map[string]bool)
	for i, def := range skills {
		s.Assert().False(seen[def.Name], "duplicate %s", def.Name)
		seen[def.Name] = true
		s.Assert().Equal(23+i, def.SheetCheckbox)
		s.Assert().NotEmpty(def.Ability)
	}

	athletics, ok := rules.LookupSkill(dnd5e.SkillAthletics)
	s.Require().True(ok)
	s.Assert().Equal(dnd5e.AbilityStrength, athletics.Ability)
	s.Assert().Equal("Check Box 26", athletics.CheckboxField())

	arcana, ok := rules.LookupSkill(dnd5e.SkillArcana)
	s.Require().True(ok)
	s.Assert().Equal(dnd5e.AbilityIntelligence, arcana.Ability)

	_, ok = rules.LookupSkill("Basket Weaving")
	s.Assert().False(ok)
}

func (s *RulesTestSuite) TestCasterArchetype() {
	testCases := []struct {
		class    string
		expected string
	}{
		{"Wizard", dnd5e.CasterFull},
		{"high elf WIZARD", dnd5e.CasterFull},
		{"Cleric", dnd5e.CasterFull},
		{"Paladin", dnd5e.CasterHalf},
		{"Artificer", dnd5e.CasterHalf},
		{"Warlock", dnd5e.CasterWarlock},
		{"Fighter (Eldritch Knight)", dnd5e.CasterThird},
		{"Rogue - Arcane Trickster", dnd5e.CasterThird},
		{"Fighter", dnd5e.CasterNone},
		{"", dnd5e.CasterNone},
	}

	for _, tc := range testCases {
		s.Run(tc.class, func() {
			s.Assert().Equal(tc.expected, rules.CasterArchetype(tc.class))
		})
	}
}

func (s *RulesTestSuite) TestSpellcastingAbility() {
	s.Assert().Equal(dnd5e.AbilityIntelligence, rules.SpellcastingAbility("Wizard"))
	s.Assert().Equal(dnd5e.AbilityIntelligence, rules.SpellcastingAbility("Eldritch Knight"))
	s.Assert().Equal(dnd5e.AbilityWisdom, rules.SpellcastingAbility("Ranger"))
	s.Assert().Equal(dnd5e.AbilityCharisma, rules.SpellcastingAbility("warlock"))
	s.Assert().Equal("", rules.SpellcastingAbility("Barbarian"))
}

func (s *RulesTestSuite) TestFullCasterSlots() {
	s.Assert().Equal(rules.SlotTotals{2}, rules.FullCasterSlots(1))
	s.Assert().Equal(rules.SlotTotals{4, 3, 2}, rules.FullCasterSlots(5))
	s.Assert().Equal(rules.SlotTotals{4, 3, 3, 3, 3, 2, 2, 1, 1}, rules.FullCasterSlots(20))
	s.Assert().Equal(rules.FullCasterSlots(20), rules.FullCasterSlots(27))
	s.Assert().True(rules.FullCasterSlots(0).IsZero())
}

func (s *RulesTestSuite) TestHalfAndThirdCasters() {
	s.Assert().True(rules.SpellSlotsFor(dnd5e.CasterHalf, 1).IsZero())
	s.Assert().Equal(rules.SlotTotals{2}, rules.SpellSlotsFor(dnd5e.CasterHalf, 2))
	s.Assert().Equal(rules.SlotTotals{4, 2}, rules.SpellSlotsFor(dnd5e.CasterHalf, 5))
	s.Assert().Equal(rules.SlotTotals{4, 3, 3, 3, 2}, rules.SpellSlotsFor(dnd5e.CasterHalf, 20))

	s.Assert().True(rules.SpellSlotsFor(dnd5e.CasterThird, 2).IsZero())
	s.Assert().Equal(rules.SlotTotals{2}, rules.SpellSlotsFor(dnd5e.CasterThird, 3))
	s.Assert().Equal(rules.SlotTotals{4, 3, 3}, rules.SpellSlotsFor(dnd5e.CasterThird, 20))
}

func (s *RulesTestSuite) TestWarlockLevelEleven() {
	slots := rules.SpellSlotsForClass("Warlock", 11)
	s.Assert().Equal(3, slots[4])
	s.Assert().Equal(1, slots[5])
	s.Assert().Equal(0, slots[6])
	s.Assert().Equal(0, slots[7])
	s.Assert().Equal(0, slots[8])
	s.Assert().Equal(0, slots[0])
}

func (s *RulesTestSuite) TestWarlockArcanumProgression() {
	s.Assert().Equal(rules.SlotTotals{1}, rules.WarlockSlots(1))
	s.Assert().Equal(rules.SlotTotals{0, 2}, rules.WarlockSlots(3))
	s.Assert().Equal(rules.SlotTotals{0, 0, 0, 0, 3, 1, 1, 1}, rules.WarlockSlots(16))
	s.Assert().Equal(rules.SlotTotals{0, 0, 0, 0, 4, 1, 1, 1, 1}, rules.WarlockSlots(17))
	s.Assert().Equal(rules.SlotTotals{0, 0, 0, 0, 4, 1, 1, 1, 1}, rules.WarlockSlots(20))
}

func (s *RulesTestSuite) TestSlotTotalInvariant() {
	archetypes := []string{dnd5e.CasterFull, dnd5e.CasterHalf, dnd5e.CasterThird, dnd5e.CasterWarlock, dnd5e.CasterNone}
	for _, archetype := range archetypes {
		for level := 1; level <= 20; level++ {
			slots := rules.SpellSlotsFor(archetype, level)
			for rank, total := range slots {
				s.Assert().GreaterOrEqual(total, 0, "%s level %d rank %d", archetype, level, rank+1)
				if archetype == dnd5e.CasterHalf && rank >= 5 {
					s.Assert().Zero(total, "half caster level %d rank %d", level, rank+1)
				}
				if archetype == dnd5e.CasterThird && rank >= 4 {
					s.Assert().Zero(total, "third caster level %d rank %d", level, rank+1)
				}
			}
			if archetype == dnd5e.CasterNone {
				s.Assert().True(slots.IsZero())
			}
		}
	}
}

func (s *RulesTestSuite) TestDerivedSpellValues() {
	s.Assert().Equal(15, rules.SpellSaveDC(3, 4))
	s.Assert().Equal(7, rules.SpellAttackBonus(3, 4))
	s.Assert().Equal(1, rules.ClampLevel(-4))
	s.Assert().Equal(20, rules.ClampLevel(99))
}
