package context

import "fmt"

// NewPCID builds the canonical identifier for a party member.
func NewPCID(name string) string {
	return fmt.Sprintf("pc:%s", name)
}

// NewMonsterID builds the canonical identifier for an opposition monster,
// index being its 0-based position within same-named monsters (so the
// second goblin in an encounter is monster:Goblin:1).
func NewMonsterID(name string, index int) string {
	return fmt.Sprintf("monster:%s:%d", name, index)
}
