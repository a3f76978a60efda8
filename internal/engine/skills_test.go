package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/entities/dnd5e"
	"github.com/Treylong00/DND-Companion/internal/extract"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

type SkillsTestSuite struct {
	suite.Suite
	modifiers entities.AbilityScores
}

func TestSkillsSuite(t *testing.T) {
	suite.Run(t, new(SkillsTestSuite))
}

func (s *SkillsTestSuite) SetupTest() {
	s.modifiers = engine.Modifiers(entities.AbilityScores{
		Strength:     8,
		Dexterity:    14,
		Constitution: 12,
		Intelligence: 17,
		Wisdom:       10,
		Charisma:     9,
	})
}

func (s *SkillsTestSuite) skill(skills []entities.Skill, name string) entities.Skill {
	for _, sk := range skills {
		if sk.Name == name {
			return sk
		}
	}
	s.FailNow("skill not found", name)
	return entities.Skill{}
}

func (s *SkillsTestSuite) TestAlwaysEighteenWithoutDetector() {
	skills := engine.ResolveSkills(s.modifiers, 2, nil)
	s.Require().Len(skills, rules.SkillCount)
	s.Assert().Empty(engine.ProficientSkillNames(skills))
	s.Assert().Equal(-1, s.skill(skills, dnd5e.SkillAthletics).Bonus)
}

func (s *SkillsTestSuite) TestBonusConsistency() {
	detector := engine.NamedProficiency{"arcana", "Stealth "}
	skills := engine.ResolveSkills(s.modifiers, 3, detector)

	s.Require().Len(skills, rules.SkillCount)
	for _, sk := range skills {
		expected := s.modifiers.Get(sk.Ability)
		if sk.Proficient {
			expected += 3
		}
		s.Assert().Equal(expected, sk.Bonus, sk.Name)
	}
	s.Assert().Equal(6, s.skill(skills, dnd5e.SkillArcana).Bonus)
	s.Assert().Equal(5, s.skill(skills, dnd5e.SkillStealth).Bonus)
	s.Assert().Equal([]string{dnd5e.SkillArcana, dnd5e.SkillStealth}, engine.ProficientSkillNames(skills))
}

func (s *SkillsTestSuite) TestFormFieldProficiency() {
	fields := extract.Fields{
		"AcrobaticsProf":    "Yes",
		"SkillsAnimal":      "On",
		"Skill-CB-Arcana":   "TRUE",
		"Check Box 26":      "/Yes",
		"History":           "+5",
		"Insight":           "1",
		"Medicine":          "yes",
		"PerceptionProf":    "Off",
		"SleightOfHandProf": "1",
		"StealthProf":       "",
	}
	detector := engine.FormFieldProficiency{Fields: fields}
	skills := engine.ResolveSkills(s.modifiers, 2, detector)

	s.Assert().Equal([]string{
		dnd5e.SkillAcrobatics,
		dnd5e.SkillAnimalHandling,
		dnd5e.SkillArcana,
		dnd5e.SkillAthletics,
		dnd5e.SkillMedicine,
		dnd5e.SkillSleightOfHand,
	}, engine.ProficientSkillNames(skills))
}

func (s *SkillsTestSuite) TestMarkedTextProficiency() {
	section := "X Acrobatics\n" +
		"O Animal Handling\n" +
		"  Arcana\n" +
		"● Athletics\n" +
		"(x) Deception\n" +
		"+5 History\n" +
		"[X]Insight\n" +
		"Notes to Intimidation\n" +
		"* investigation\n" +
		"[ ] Medicine\n" +
		"Sleight of Hand\n" +
		"✓Stealth"
	detector := engine.MarkedTextProficiency{Section: section}
	skills := engine.ResolveSkills(s.modifiers, 2, detector)

	s.Assert().Equal([]string{
		dnd5e.SkillAcrobatics,
		dnd5e.SkillAnimalHandling,
		dnd5e.SkillAthletics,
		dnd5e.SkillDeception,
		dnd5e.SkillInsight,
		dnd5e.SkillInvestigation,
		dnd5e.SkillStealth,
	}, engine.ProficientSkillNames(skills))
}

func (s *SkillsTestSuite) TestMarkedTextEmptySection() {
	skills := engine.ResolveSkills(s.modifiers, 2, engine.MarkedTextProficiency{})
	s.Assert().Len(skills, rules.SkillCount)
	s.Assert().Empty(engine.ProficientSkillNames(skills))
}

func (s *SkillsTestSuite) TestIsTruthy() {
	for _, v := range []string{"yes", "YES", "True", "1", "on", "/On", " Yes "} {
		s.Assert().True(engine.IsTruthy(v), v)
	}
	for _, v := range []string{"", "no", "Off", "0", "x", "/Off"} {
		s.Assert().False(engine.IsTruthy(v), v)
	}
}
