package character

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
	"github.com/Treylong00/DND-Companion/internal/errors"
	"github.com/Treylong00/DND-Companion/internal/rules"
)

// storedRecord overlays the fields older documents stored differently.
// Records created by hand used to keep skills as a list of proficient names
// and had no ability_modifiers.
type storedRecord struct {
	entities.Character
	Skills           json.RawMessage         `json:"skills"`
	AbilityModifiers *entities.AbilityScores `json:"ability_modifiers"`
}

// Decode reads a stored document and upgrades legacy shapes in memory.
// Upgraded reports whether the result differs from what was stored.
func Decode(data []byte) (c *entities.Character, upgraded bool, err error) {
	var rec storedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, errors.Wrap(err, "failed to unmarshal character record")
	}
	out := rec.Character

	if rec.AbilityModifiers == nil {
		out.AbilityModifiers = engine.Modifiers(out.Abilities)
		upgraded = true
	} else {
		out.AbilityModifiers = *rec.AbilityModifiers
	}

	skills, proficient, flat := decodeSkills(rec.Skills)
	if flat || len(skills) != rules.SkillCount {
		out.Skills = engine.ResolveSkills(out.AbilityModifiers, out.ProficiencyBonus, engine.NamedProficiency(proficient))
		upgraded = true
	} else {
		out.Skills = skills
	}

	if level := rules.ClampLevel(out.Level); level != out.Level {
		out.Level = level
		upgraded = true
	}

	var dropped bool
	if out.Equipment, dropped = nonBlank(out.Equipment); dropped {
		upgraded = true
	}
	if out.Spells != nil {
		if out.Spells, dropped = nonBlank(out.Spells); dropped {
			upgraded = true
		}
	}
	if out.Spellcasting != nil {
		out.Spellcasting.SpellSlots = out.Spellcasting.SpellSlots.Fill()
	}

	return &out, upgraded, nil
}

// Encode renders a record the way every store writes it
func Encode(c *entities.Character) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character record")
	}
	return data, nil
}

// decodeSkills accepts the current object list or the legacy name list
func decodeSkills(raw json.RawMessage) (skills []entities.Skill, proficient []string, flat bool) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil, false
	}
	if err := json.Unmarshal(raw, &skills); err == nil {
		return skills, engine.ProficientSkillNames(skills), false
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err == nil {
		return nil, names, true
	}
	return nil, nil, false
}

func nonBlank(items []string) ([]string, bool) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, len(out) != len(items)
}
