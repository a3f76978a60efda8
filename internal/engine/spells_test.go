package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Treylong00/DND-Companion/internal/engine"
	"github.com/Treylong00/DND-Companion/internal/entities"
)

func TestParseSpellLine(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		def      int
		expected entities.Spell
	}{
		{"tagged", "Polymorph (Level 4)", 4, entities.Spell{Name: "Polymorph", Level: 4}},
		{"tagged higher", "Wall of Force (Level 5)", 4, entities.Spell{Name: "Wall of Force", Level: 5}},
		{"lowercase tag", "Wish (level 9) ", 4, entities.Spell{Name: "Wish", Level: 9}},
		{"untagged defaults", "Banishment", 4, entities.Spell{Name: "Banishment", Level: 4}},
		{"tag out of range", "Odd (Level 12)", 4, entities.Spell{Name: "Odd", Level: 4}},
		{"tag not trailing", "Tasha's (Level 5) Laughter", 1, entities.Spell{Name: "Tasha's (Level 5) Laughter", Level: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, engine.ParseSpellLine(tc.line, tc.def))
		})
	}
}

func TestSpellBucketsRoundTrip(t *testing.T) {
	spells := []entities.Spell{
		{Name: "Shield", Level: 1},
		{Name: "Misty Step", Level: 2},
		{Name: "Fireball", Level: 3},
		{Name: "Polymorph", Level: 4},
		{Name: "Cone of Cold", Level: 5},
	}

	buckets := engine.SpellBuckets(spells)
	assert.Equal(t, []string{"Shield"}, buckets["1"])
	assert.Equal(t, []string{"Misty Step"}, buckets["2"])
	assert.Equal(t, []string{"Fireball"}, buckets["3"])
	assert.Equal(t, []string{"Polymorph (Level 4)", "Cone of Cold (Level 5)"}, buckets[engine.HighLevelBucket])

	assert.Equal(t, spells, engine.ParseSpellBuckets(buckets))
}

func TestSpellBucketsEmpty(t *testing.T) {
	buckets := engine.SpellBuckets(nil)
	assert.Len(t, buckets, 4)
	for _, lines := range buckets {
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	}
	assert.Nil(t, engine.ParseSpellBuckets(buckets))
}

func TestParseSpellBucketsOrdersHighLevels(t *testing.T) {
	spells := engine.ParseSpellBuckets(map[string][]string{
		"4+":    {"Wish (Level 9)", "Banishment", " "},
		"1":     {"Sleep", ""},
		"bogus": {"Ignored"},
	})
	assert.Equal(t, []entities.Spell{
		{Name: "Sleep", Level: 1},
		{Name: "Banishment", Level: 4},
		{Name: "Wish", Level: 9},
	}, spells)
}
