package engine

import (
	"regexp"
	"strings"

	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/extract"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

// ProficiencyDetector decides whether a character is trained in a skill
type ProficiencyDetector interface {
	Proficient(skill rules.SkillDefinition) bool
}

// FormFieldProficiency reads checkbox fields from a fillable sheet
type FormFieldProficiency struct {
	Fields extract.Fields
}

// Proficient checks the vendor naming conventions for the skill's box.
// The bare skill name is also a text field on some sheets that holds the
// bonus, so a "1" there is not taken as a checked box.
func (d FormFieldProficiency) Proficient(skill rules.SkillDefinition) bool {
	checkboxes := []string{
		skill.FieldKey + "Prof",
		"Skills" + skill.ShortKey,
		"Skills" + skill.FieldKey,
		"Skill-CB-" + skill.FieldKey,
		skill.CheckboxField(),
	}
	for _, name := range checkboxes {
		if IsTruthy(d.Fields.Exact(name)) {
			return true
		}
	}
	bare := strings.ToLower(d.Fields.Exact(skill.FieldKey, skill.Name))
	return bare == "yes" || bare == "true" || bare == "on"
}

// IsTruthy reports whether a field value marks a checked box
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(value), "/")) {
	case "yes", "true", "1", "on":
		return true
	}
	return false
}

// markGlyphs are characters OCR produces for a filled proficiency circle
const markGlyphs = `☑☒✓✔■●•xo*+.\[({`

var markedSkillPatterns = buildMarkedSkillPatterns()

func buildMarkedSkillPatterns() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, rules.SkillCount)
	for _, skill := range rules.Skills() {
		// a glyph cluster that starts a token, optional spaces, then the name
		out[skill.Name] = regexp.MustCompile(
			`(?i)(?:^|\s)[` + markGlyphs + `][` + markGlyphs + `\])}]{0,2}[ \t]*` +
				regexp.QuoteMeta(skill.Name) + `\b`,
		)
	}
	return out
}

// MarkedTextProficiency scans the SKILLS section of a transcript for names
// directly preceded by a checkbox-like glyph.
type MarkedTextProficiency struct {
	Section string
}

// Proficient reports whether the skill name is marked in the section
func (d MarkedTextProficiency) Proficient(skill rules.SkillDefinition) bool {
	re, ok := markedSkillPatterns[skill.Name]
	if !ok || d.Section == "" {
		return false
	}
	return re.MatchString(d.Section)
}

// NamedProficiency is a set of proficient skill names, matched
// case-insensitively. Edits and legacy records express proficiency this way.
type NamedProficiency []string

// Proficient reports whether the skill is in the set
func (d NamedProficiency) Proficient(skill rules.SkillDefinition) bool {
	for _, name := range d {
		if strings.EqualFold(strings.TrimSpace(name), skill.Name) {
			return true
		}
	}
	return false
}

// ResolveSkills always returns all eighteen skills with bonus equal to the
// governing modifier plus the proficiency bonus when proficient.
func ResolveSkills(modifiers entities.AbilityScores, proficiencyBonus int, detector ProficiencyDetector) []entities.Skill {
	defs := rules.Skills()
	out := make([]entities.Skill, 0, len(defs))
	for _, def := range defs {
		proficient := detector != nil && detector.Proficient(def)
		bonus := modifiers.Get(def.Ability)
		if proficient {
			bonus += proficiencyBonus
		}
		out = append(out, entities.Skill{
			Name:       def.Name,
			Ability:    def.Ability,
			Proficient: proficient,
			Bonus:      bonus,
		})
	}
	return out
}

// ProficientSkillNames lists the names of trained skills in order
func ProficientSkillNames(skills []entities.Skill) []string {
	var names []string
	for _, s := range skills {
		if s.Proficient {
			names = append(names, s.Name)
		}
	}
	return names
}

// Modifiers derives every ability modifier from the scores
func Modifiers(scores entities.AbilityScores) entities.AbilityScores {
	return entities.AbilityScores{
		Strength:     rules.AbilityModifier(scores.Strength),
		Dexterity:    rules.AbilityModifier(scores.Dexterity),
		Constitution: rules.AbilityModifier(scores.Constitution),
		Intelligence: rules.AbilityModifier(scores.Intelligence),
		Wisdom:       rules.AbilityModifier(scores.Wisdom),
		Charisma:     rules.AbilityModifier(scores.Charisma),
	}
}
