package services

import (
	"math/rand/v2"

	"github.com/xvierd/pomodomate/internal/domain"
	"github.com/xvierd/pomodomate/internal/ports"
)

// PhrasePicker draws uniformly from the fixed phrase lists.
type PhrasePicker struct {
	rnd ports.RandomSource
}

// NewPhrasePicker creates a picker. A nil source uses the global generator.
func NewPhrasePicker(rnd ports.RandomSource) *PhrasePicker {
	if rnd == nil {
		rnd = globalRandom{}
	}
	return &PhrasePicker{rnd: rnd}
}

// Motivational returns a mascot phrase.
func (p *PhrasePicker) Motivational() string {
	return p.pick(domain.MotivationalPhrases)
}

// Celebration returns a completion headline.
func (p *PhrasePicker) Celebration() string {
	return p.pick(domain.CelebrationPhrases)
}

func (p *PhrasePicker) pick(phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[p.rnd.Intn(len(phrases))]
}

type globalRandom struct{}

func (globalRandom) Intn(n int) int {
	return rand.IntN(n)
}

// SeededRandom is a deterministic RandomSource.
type SeededRandom struct {
	r *rand.Rand
}

// NewSeededRandom returns a source that yields the same sequence for the same seed.
func NewSeededRandom(seed uint64) *SeededRandom {
	return &SeededRandom{r: rand.New(rand.NewPCG(seed, seed))}
}

// Intn implements ports.RandomSource.
func (s *SeededRandom) Intn(n int) int {
	return s.r.IntN(n)
}
