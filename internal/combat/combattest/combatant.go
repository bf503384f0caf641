// Package combattest provides a minimal, fully in-memory implementation of
// context.Combatant (and context.SpellcasterCombatant) for tests across
// the combat packages, plus a fluent builder in the style of the
// project's other test data builders.
package combattest

import (
	"github.com/osrapps/osr-combat/internal/combat/encstate"
)

// Combatant is a bare-bones stand-in for a PC or monster, holding just
// enough state for the encounter engine's Combatant contract.
type Combatant struct {
	id                 string
	name               string
	side               encstate.Side
	hp                 int
	maxHP              int
	ac                 int
	thac0              int
	strMod             int
	dexMod             int
	attackCount        int
	meleeDie           string
	rangedDie          string
	hasRanged          bool
	classID            string
	spellSlots         map[int]int
}

// ID implements context.Combatant.
func (c *Combatant) ID() string { return c.id }

// Name implements context.Combatant.
func (c *Combatant) Name() string { return c.name }

// Side implements context.Combatant.
func (c *Combatant) Side() encstate.Side { return c.side }

// IsAlive implements context.Combatant.
func (c *Combatant) IsAlive() bool { return c.hp > 0 }

// HP implements context.Combatant.
func (c *Combatant) HP() int { return c.hp }

// MaxHP implements context.Combatant.
func (c *Combatant) MaxHP() int { return c.maxHP }

// ArmorClass implements context.Combatant.
func (c *Combatant) ArmorClass() int { return c.ac }

// THAC0 implements context.Combatant.
func (c *Combatant) THAC0() int { return c.thac0 }

// StrengthModifier implements context.Combatant.
func (c *Combatant) StrengthModifier() int { return c.strMod }

// DexterityModifier implements context.Combatant.
func (c *Combatant) DexterityModifier() int { return c.dexMod }

// AttackCount implements context.Combatant.
func (c *Combatant) AttackCount() int { return c.attackCount }

// MeleeDamageDie implements context.Combatant.
func (c *Combatant) MeleeDamageDie() string { return c.meleeDie }

// RangedDamageDie implements context.Combatant.
func (c *Combatant) RangedDamageDie() (string, bool) { return c.rangedDie, c.hasRanged }

// ApplyDamage implements context.Combatant.
func (c *Combatant) ApplyDamage(amount int) {
	c.hp -= amount
	if c.hp < 0 {
		c.hp = 0
	}
}

// ClassID implements context.SpellcasterCombatant.
func (c *Combatant) ClassID() string { return c.classID }

// SpellSlotMax implements context.SpellcasterCombatant.
func (c *Combatant) SpellSlotMax(level int) int { return c.spellSlots[level] }

// Builder fluently constructs a Combatant for a test.
type Builder struct {
	c *Combatant
}

// NewBuilder creates a builder with reasonable, non-spellcasting
// defaults: a 1-HD fighter-shaped combatant with a single melee attack.
func NewBuilder(id, name string, side encstate.Side) *Builder {
	return &Builder{c: &Combatant{
		id:          id,
		name:        name,
		side:        side,
		hp:          8,
		maxHP:       8,
		ac:          7,
		thac0:       19,
		attackCount: 1,
		meleeDie:    "1d8",
		spellSlots:  make(map[int]int),
	}}
}

func (b *Builder) WithHP(hp int) *Builder {
	b.c.hp = hp
	b.c.maxHP = hp
	return b
}

func (b *Builder) WithArmorClass(ac int) *Builder {
	b.c.ac = ac
	return b
}

func (b *Builder) WithTHAC0(thac0 int) *Builder {
	b.c.thac0 = thac0
	return b
}

func (b *Builder) WithStrengthModifier(mod int) *Builder {
	b.c.strMod = mod
	return b
}

func (b *Builder) WithDexterityModifier(mod int) *Builder {
	b.c.dexMod = mod
	return b
}

func (b *Builder) WithAttackCount(n int) *Builder {
	b.c.attackCount = n
	return b
}

func (b *Builder) WithMeleeDamageDie(die string) *Builder {
	b.c.meleeDie = die
	return b
}

func (b *Builder) WithRangedDamageDie(die string) *Builder {
	b.c.rangedDie = die
	b.c.hasRanged = true
	return b
}

func (b *Builder) WithClass(classID string) *Builder {
	b.c.classID = classID
	return b
}

func (b *Builder) WithSpellSlots(level, count int) *Builder {
	b.c.spellSlots[level] = count
	return b
}

// Build returns the constructed Combatant.
func (b *Builder) Build() *Combatant {
	return b.c
}
