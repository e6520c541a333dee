package motion

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-drift/dxmotion/pkg/animation"
)

// Scramble defaults.
const (
	DefaultScrambleDuration   = 2 * time.Second
	DefaultScrambleCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
)

// ScrambleOptions configures [Scramble].
type ScrambleOptions struct {
	Duration   time.Duration
	Characters string
	// Rand supplies the random glyphs. Nil uses the global source.
	Rand *rand.Rand
}

// Scrambler reveals text left to right while the hidden tail shows random
// glyphs.
type Scrambler struct {
	Value  *Value[string]
	ticker *animation.Ticker
	done   chan struct{}
	once   sync.Once
}

// Stop ends the effect early, leaving the current text in place.
func (s *Scrambler) Stop() {
	s.once.Do(func() {
		s.ticker.Stop()
		close(s.done)
	})
}

// Done is closed when the text is fully revealed or Stop is called.
func (s *Scrambler) Done() <-chan struct{} {
	return s.done
}

// Scramble starts revealing text over opts.Duration. Character i is shown
// once progress exceeds i/len(text).
func Scramble(store *Store, s *animation.Scheduler, text string, opts ScrambleOptions) *Scrambler {
	if opts.Duration <= 0 {
		opts.Duration = DefaultScrambleDuration
	}
	glyphs := []rune(opts.Characters)
	if len(glyphs) == 0 {
		glyphs = []rune(DefaultScrambleCharacters)
	}
	intn := rand.IntN
	if opts.Rand != nil {
		intn = opts.Rand.IntN
	}

	runes := []rune(text)
	out := &Scrambler{Value: NewValue(store, text), done: make(chan struct{})}
	out.ticker = animation.NewTicker(s, func(elapsed time.Duration) {
		p := animation.Clamp(0, 1, float64(elapsed)/float64(opts.Duration))
		frame := make([]rune, len(runes))
		for i, r := range runes {
			if p > float64(i)/float64(len(runes)) {
				frame[i] = r
			} else {
				frame[i] = glyphs[intn(len(glyphs))]
			}
		}
		out.Value.Set(string(frame))
		if p >= 1 {
			out.Stop()
		}
	})
	out.ticker.Start()
	return out
}
