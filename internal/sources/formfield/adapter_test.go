package formfield_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/sources/formfield"
)

type AdapterTestSuite struct {
	suite.Suite
	adapter *formfield.Adapter
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	e, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	a, err := formfield.New(&formfield.Config{Engine: e})
	s.Require().NoError(err)
	s.adapter = a
}

func (s *AdapterTestSuite) TestNewValidatesConfig() {
	_, err := formfield.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = formfield.New(&formfield.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestEmptyFieldsIsNoFormFields() {
	c, err := s.adapter.Extract(map[string]string{})
	s.Assert().Nil(c)
	s.Assert().True(errors.IsNoFormFields(err))
}

func (s *AdapterTestSuite) TestWizardSheet() {
	c, err := s.adapter.Extract(map[string]string{
		"CharacterName":       "Elara",
		"ClassLevel":          "Wizard 5",
		"Race ":               "High Elf",
		"Background":          "Sage",
		"STR":                 "8",
		"DEX":                 "14",
		"CON":                 "12",
		"INT":                 "18",
		"WIS":                 "10",
		"CHA":                 "11",
		"HPMax":               "27",
		"HPCurrent":           "",
		"AC":                  "12",
		"ProfBonus":           "+3",
		"Check Box 25":        "Yes",
		"HistoryProf":         "/Yes",
		"SpellcastingAbility": "INT",
		"SpellSaveDC":         "15",
		"SlotsTotal 19":       "4",
		"SlotsRemaining 19":   "1",
		"SlotsTotal 20":       "3",
		"SlotsTotal 21":       "2",
		"Cantrips":            "Fire Bolt\nMage Hand",
		"Spells 1014":         "Magic Missile\nShield",
		"Spells 1015":         "Fireball (Level 3)",
		"GP":                  "25",
		"Equipment":           "Spellbook\nDagger",
		"Wpn Name":            "Dagger",
		"PersonalityTraits":   "Curious",
		"Ideals":              "Knowledge",
	})
	s.Require().NoError(err)

	s.Assert().Empty(c.ID)
	s.Assert().Equal("Elara", c.Name)
	s.Assert().Equal("Wizard", c.Class)
	s.Assert().Equal(5, c.Level)
	s.Assert().Equal("High Elf", c.Race)
	s.Assert().Equal("Sage", c.Background)

	s.Assert().Equal(18, c.Abilities.Intelligence)
	s.Assert().Equal(4, c.AbilityModifiers.Intelligence)
	s.Assert().Equal(-1, c.AbilityModifiers.Strength)
	s.Assert().Equal(entities.HitPoints{Max: 27, Current: 27}, c.HP)
	s.Assert().Equal(12, c.ArmorClass)
	s.Assert().Equal(3, c.ProficiencyBonus)

	s.Require().Len(c.Skills, 18)
	s.Assert().True(c.Skills[2].Proficient, "arcana")
	s.Assert().Equal(7, c.Skills[2].Bonus)
	s.Assert().True(c.Skills[5].Proficient, "history")
	s.Assert().False(c.Skills[0].Proficient)
	s.Assert().Equal(2, c.Skills[0].Bonus)

	s.Assert().Equal([]string{"Spellbook", "Dagger", "25 Gold pieces"}, c.Equipment)
	s.Assert().Equal("PersonalityTraits: Curious\n\nIdeals: Knowledge", c.Traits)

	sc := c.Spellcasting
	s.Require().NotNil(sc)
	s.Assert().Nil(c.Spells)
	s.Assert().Equal("Wizard", sc.Class)
	s.Assert().Equal("intelligence", sc.Ability)
	s.Assert().Equal(15, sc.SpellSaveDC)
	s.Assert().Equal(7, sc.SpellAttackBonus)
	s.Assert().Equal(entities.SlotUsage{Total: 4, Used: 1}, sc.SpellSlots["1"])
	s.Assert().Equal(entities.SlotUsage{Total: 3}, sc.SpellSlots["2"])
	s.Assert().Equal(entities.SlotUsage{Total: 2}, sc.SpellSlots["3"])
	s.Assert().Equal(entities.SlotUsage{}, sc.SpellSlots["4"])
	s.Assert().Equal([]string{"Fire Bolt", "Mage Hand"}, sc.Cantrips)
	s.Assert().Equal([]entities.Spell{
		{Name: "Magic Missile", Level: 1},
		{Name: "Shield", Level: 1},
		{Name: "Fireball", Level: 3},
	}, sc.Spells)
}

func (s *AdapterTestSuite) TestDefaultsForUnknownFields() {
	c, err := s.adapter.Extract(map[string]string{"Unrelated": "x"})
	s.Require().NoError(err)

	s.Assert().Empty(c.Name)
	s.Assert().Equal(1, c.Level)
	s.Assert().Equal(10, c.Abilities.Wisdom)
	s.Assert().Equal(0, c.AbilityModifiers.Wisdom)
	s.Assert().Equal(entities.HitPoints{Max: 10, Current: 10}, c.HP)
	s.Assert().Equal(10, c.ArmorClass)
	s.Assert().Equal(2, c.ProficiencyBonus)
	s.Assert().Len(c.Skills, 18)
	s.Assert().Nil(c.Spellcasting)
	s.Assert().Empty(c.Spells)
}

func (s *AdapterTestSuite) TestBlankNameAndHitPointsIgnoreAbilityBoxes() {
	c, err := s.adapter.Extract(map[string]string{
		"CharacterName": "",
		"STR":           "8",
		"INT":           "18",
		"CHA":           "11",
		"HPMax":         "",
		"HPCurrent":     "",
	})
	s.Require().NoError(err)

	s.Assert().Equal("", c.Name)
	s.Assert().Equal(entities.HitPoints{Max: 10, Current: 10}, c.HP)
	s.Assert().Equal(18, c.Abilities.Intelligence)
	s.Assert().Equal(11, c.Abilities.Charisma)
}

func (s *AdapterTestSuite) TestSeparateClassAndLevelFields() {
	c, err := s.adapter.Extract(map[string]string{
		"Class": "Cleric",
		"Level": "3",
		"WIS":   "16",
	})
	s.Require().NoError(err)

	s.Assert().Equal("Cleric", c.Class)
	s.Assert().Equal(3, c.Level)
	s.Require().NotNil(c.Spellcasting)
	s.Assert().Equal("wisdom", c.Spellcasting.Ability)
	s.Assert().Equal(4, c.Spellcasting.SpellSlots["1"].Total)
	s.Assert().Equal(2, c.Spellcasting.SpellSlots["2"].Total)
	s.Assert().Equal(13, c.Spellcasting.SpellSaveDC)
}

func (s *AdapterTestSuite) TestNonCasterKeepsFlatSpellList() {
	c, err := s.adapter.Extract(map[string]string{
		"ClassLevel":  "Fighter 4",
		"Spells 1014": "Cure Wounds\nCure Wounds",
	})
	s.Require().NoError(err)

	s.Assert().Nil(c.Spellcasting)
	s.Assert().Equal([]string{"Cure Wounds"}, c.Spells)
}

func (s *AdapterTestSuite) TestLeveledSpellFieldMakesBlock() {
	c, err := s.adapter.Extract(map[string]string{
		"ClassLevel":   "Rogue 7",
		"SpellsLevel2": "Misty Step",
	})
	s.Require().NoError(err)

	s.Require().NotNil(c.Spellcasting)
	s.Assert().Equal([]entities.Spell{{Name: "Misty Step", Level: 2}}, c.Spellcasting.Spells)
	s.Assert().True(c.Spellcasting.SpellSlots["1"] == entities.SlotUsage{})
}
