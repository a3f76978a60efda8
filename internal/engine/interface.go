// Package engine resolves the derived parts of a character record: skill
// bonuses, the spellcasting block and the values an edit must keep in step.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/Treylong00/DND-Companion/internal/engine Engine

// Engine applies the 5e rules to extracted or edited character data.
// Implementations hold no state between calls.
type Engine interface {
	// Derivation used by the source adapters
	ResolveSkills(input *ResolveSkillsInput) *ResolveSkillsOutput
	ResolveSpellcasting(input *ResolveSpellcastingInput) *ResolveSpellcastingOutput

	// Consistency after a manual edit
	Recompute(input *RecomputeInput) (*RecomputeOutput, error)

	// ValidateSlotUpdate checks a spell slot usage change against the record
	ValidateSlotUpdate(input *ValidateSlotUpdateInput) error
}
