// Package rules holds the fixed 5th edition tables the import pipeline derives
// values from: ability modifiers, the skill to ability binding, caster
// archetypes and spell slot progressions.
//
// Everything here is a pure function over constant data and is safe for
// concurrent use.
package rules
