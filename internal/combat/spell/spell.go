// Package spell holds the static catalog CastSpell validates and executes
// against. It is a deliberately small subset of a full spell system: each
// definition only carries the fields the encounter engine's CastSpell
// action actually reads.
package spell

// Definition describes one castable spell.
type Definition struct {
	SpellID   string
	Name      string
	Level     int
	// UsableBy lists the caster class IDs allowed to cast this spell.
	UsableBy []string
	// DamageDie is the damage notation rolled per target; empty means the
	// spell deals no direct damage (a condition-only or utility spell).
	DamageDie string
	// NumTargets is how many target IDs CastSpell must supply; 0 means the
	// spell takes no target (it affects the caster or the environment).
	NumTargets int
	// AutoHit means the spell's damage/condition applies without an
	// attack roll (true of a classic OSR magic missile).
	AutoHit bool
	// ConditionID, if non-empty, is applied to every target on a
	// successful cast.
	ConditionID string
	// ConditionDuration is in rounds; 0 means indefinite/until removed.
	ConditionDuration int
}

var catalog = map[string]Definition{
	"magic_missile": {
		SpellID:    "magic_missile",
		Name:       "Magic Missile",
		Level:      1,
		UsableBy:   []string{"magic_user", "elf"},
		DamageDie:  "1d6+1",
		NumTargets: 1,
		AutoHit:    true,
	},
	"sleep": {
		SpellID:           "sleep",
		Name:              "Sleep",
		Level:             1,
		UsableBy:          []string{"magic_user", "elf"},
		NumTargets:        1,
		AutoHit:           true,
		ConditionID:       "asleep",
		ConditionDuration: 0,
	},
	"hold_person": {
		SpellID:           "hold_person",
		Name:              "Hold Person",
		Level:             2,
		UsableBy:          []string{"cleric"},
		NumTargets:        1,
		AutoHit:           true,
		ConditionID:       "held",
		ConditionDuration: 0,
	},
	"cure_light_wounds": {
		SpellID:    "cure_light_wounds",
		Name:       "Cure Light Wounds",
		Level:      1,
		UsableBy:   []string{"cleric"},
		NumTargets: 1,
		AutoHit:    true,
	},
	"shield": {
		SpellID:    "shield",
		Name:       "Shield",
		Level:      1,
		UsableBy:   []string{"magic_user", "elf"},
		NumTargets: 0,
		AutoHit:    true,
	},
}

// Get looks up a spell by ID.
func Get(id string) (Definition, bool) {
	d, ok := catalog[id]
	return d, ok
}
