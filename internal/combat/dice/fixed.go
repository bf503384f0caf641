package dice

import "github.com/osrapps/osr-combat/internal/errors"

// FixedService is the deterministic Service used in tests and the demo
// CLI's scripted mode. It consumes a pre-recorded sequence of raw die
// values in call order. Unlike the original engine this is ported from,
// it does not cycle when the sequence runs out: exhausting the sequence is
// a test-authoring bug, so it fails loudly instead of silently repeating
// values and masking a miscounted scenario.
type FixedService struct {
	values []int
	index  int
}

// NewFixedService builds a deterministic service from a raw value
// sequence. Each value stands in for one die's raw result (so a "2d6"
// roll consumes two values from the sequence, one per die).
func NewFixedService(values ...int) *FixedService {
	return &FixedService{values: values}
}

func (s *FixedService) next() (int, error) {
	if s.index >= len(s.values) {
		return 0, errors.FailedPreconditionf("fixed dice sequence exhausted after %d values", len(s.values))
	}
	v := s.values[s.index]
	s.index++
	return v, nil
}

// Roll implements Service by summing one consumed value per die in the
// notation, plus any static modifier.
func (s *FixedService) Roll(notation string) (int, error) {
	count, _, modifier, err := parseNotation(notation)
	if err != nil {
		return 0, err
	}

	total := modifier
	for i := 0; i < count; i++ {
		v, err := s.next()
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// D20 implements Service.
func (s *FixedService) D20() int {
	v, err := s.next()
	if err != nil {
		panic(err)
	}
	return v
}

// Index implements Service. The recorded value is taken as a 1-based raw
// result, matching D20/Roll, and reduced into [0, n).
func (s *FixedService) Index(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := s.next()
	if err != nil {
		panic(err)
	}
	return (v - 1) % n
}

// Remaining reports how many values are left unconsumed, useful in tests
// that want to assert a scenario consumed exactly its scripted rolls.
func (s *FixedService) Remaining() int {
	return len(s.values) - s.index
}
