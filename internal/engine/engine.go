package engine

import (
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

type engine struct{}

// Config configures the rules engine. It has no settings today.
type Config struct{}

// Validate validates the config
func (cfg *Config) Validate() error {
	return nil
}

// New creates a rules engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) ResolveSkills(input *ResolveSkillsInput) *ResolveSkillsOutput {
	if input == nil {
		input = &ResolveSkillsInput{}
	}
	return &ResolveSkillsOutput{
		Skills: ResolveSkills(input.Modifiers, input.ProficiencyBonus, input.Detector),
	}
}

func (e *engine) ResolveSpellcasting(input *ResolveSpellcastingInput) *ResolveSpellcastingOutput {
	if input == nil {
		return &ResolveSpellcastingOutput{}
	}
	return &ResolveSpellcastingOutput{
		Spellcasting: ResolveSpellcasting(input.Source),
	}
}

func (e *engine) Recompute(input *RecomputeInput) (*RecomputeOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	return &RecomputeOutput{Character: Recompute(input.Character, input.ProficientSkills)}, nil
}

func (e *engine) ValidateSlotUpdate(input *ValidateSlotUpdateInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Spellcasting == nil {
		return errors.FailedPrecondition("character has no spellcasting")
	}

	usage, ok := input.Spellcasting.SpellSlots.Get(input.Level)
	if !ok {
		return errors.InvalidArgumentf("spell slot level %d is not tracked", input.Level).
			WithMeta("level", input.Level)
	}
	if input.Used < 0 || input.Used > usage.Total {
		return errors.InvalidArgumentf("used must be between 0 and %d", usage.Total).
			WithMeta("level", input.Level).
			WithMeta("used", input.Used).
			WithMeta("total", usage.Total)
	}
	return nil
}

// Recompute returns a copy of c with level clamped and modifiers, skill
// bonuses and spell save values derived again. proficient replaces the
// trained skills when non-nil. A class that casts gains a spellcasting block
// and any flat spell list moves into it.
func Recompute(c *entities.Character, proficient []string) *entities.Character {
	out := *c
	out.Level = rules.ClampLevel(c.Level)
	out.AbilityModifiers = Modifiers(c.Abilities)

	if proficient == nil {
		proficient = ProficientSkillNames(c.Skills)
	}
	out.Skills = ResolveSkills(out.AbilityModifiers, out.ProficiencyBonus, NamedProficiency(proficient))
	out.Equipment = nonNilStrings(c.Equipment)

	var src SpellcastingSource
	if c.Spellcasting != nil {
		class := c.Spellcasting.Class
		if class == "" {
			class = c.Class
		}
		src = SpellcastingSource{
			Explicit: true,
			Class:    class,
			Ability:  c.Spellcasting.Ability,
			Slots:    c.Spellcasting.SpellSlots,
			Cantrips: append([]string(nil), c.Spellcasting.Cantrips...),
			Spells:   append([]entities.Spell(nil), c.Spellcasting.Spells...),
		}
	} else {
		src = SpellcastingSource{Class: c.Class}
	}
	src.Level = out.Level
	src.ProficiencyBonus = out.ProficiencyBonus
	src.Modifiers = out.AbilityModifiers

	out.Spellcasting = ResolveSpellcasting(src)
	if out.Spellcasting != nil {
		for _, line := range c.Spells {
			out.Spellcasting.Spells = append(out.Spellcasting.Spells, ParseSpellLine(line, 1))
		}
		out.Spells = nil
	} else {
		out.Spells = append([]string(nil), c.Spells...)
	}
	return &out
}
