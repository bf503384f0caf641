// Package dice provides the abstraction every probabilistic decision in the
// encounter engine rolls through: to-hit rolls, damage rolls, surprise and
// initiative checks, and tactical-provider choices. Swapping the
// implementation the engine is constructed with is the only way to make an
// encounter reproducible.
package dice

import (
	"regexp"
	"strconv"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/osrapps/osr-combat/internal/errors"
)

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/osrapps/osr-combat/internal/combat/dice Service

// Service is the collaborator every component that needs randomness takes
// a dependency on instead of reaching for math/rand directly.
type Service interface {
	// Roll evaluates dice notation ("1d6", "2d8+1", "3") and returns the
	// total.
	Roll(notation string) (int, error)
	// D20 rolls a single d20, the shape every to-hit check needs.
	D20() int
	// Index returns a pseudo-random index in [0, n). It backs the generic
	// Choose helper below.
	Index(n int) int
}

var notationRegex = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// parseNotation splits "NdS+M" into its count, sides, and modifier parts.
// A bare integer ("3") is also accepted as a fixed constant with 0 dice.
func parseNotation(notation string) (count, sides, modifier int, err error) {
	if n, convErr := strconv.Atoi(notation); convErr == nil {
		return 0, 0, n, nil
	}

	m := notationRegex.FindStringSubmatch(notation)
	if m == nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s", notation)
	}

	count = 1
	if m[1] != "" {
		count, err = strconv.Atoi(m[1])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
		}
	}

	sides, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	if count <= 0 || sides <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	return count, sides, modifier, nil
}

// ProductionService rolls dice with the rpg-toolkit roller, the same
// dependency the teacher's dice orchestrator wraps.
type ProductionService struct{}

// NewProductionService constructs a Service backed by true randomness.
func NewProductionService() *ProductionService {
	return &ProductionService{}
}

// Roll implements Service.
func (s *ProductionService) Roll(notation string) (int, error) {
	count, sides, modifier, err := parseNotation(notation)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return modifier, nil
	}

	roll, err := toolkitdice.NewRoll(count, sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", notation)
	}
	return roll.GetValue() + modifier, nil
}

// D20 implements Service.
func (s *ProductionService) D20() int {
	v, _ := s.Roll("1d20")
	return v
}

// Index implements Service.
func (s *ProductionService) Index(n int) int {
	if n <= 0 {
		return 0
	}
	roll, err := toolkitdice.NewRoll(1, n)
	if err != nil {
		return 0
	}
	return roll.GetValue() - 1
}

// Choose picks a uniformly random element from items using the given
// service. It is a free function rather than a Service method because Go
// interface methods cannot be generic.
func Choose[T any](svc Service, items []T) T {
	return items[svc.Index(len(items))]
}

// Must rolls notation and panics if the service errors (notably, when a
// FixedService's recorded sequence underflows). The encounter engine
// recovers any such panic during Step and turns it into an
// EncounterFaulted event, so a scripted scenario that runs out of
// recorded rolls fails loudly as an engine fault rather than silently.
func Must(svc Service, notation string) int {
	v, err := svc.Roll(notation)
	if err != nil {
		panic(err)
	}
	return v
}
