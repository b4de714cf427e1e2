// Package wordsource holds a word list and picks random practice words from it.
package wordsource

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/rtyping/internal/model"
)

// Source is an immutable word list with its own random generator.
type Source struct {
	words []string
	rnd   *rand.Rand
}

// Option configures a Source.
type Option func(*Source)

// WithRand replaces the time-seeded generator, mostly for tests.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Source) {
		if rnd != nil {
			s.rnd = rnd
		}
	}
}

// New splits text on line breaks into words. Lines are kept verbatim, so an
// empty line becomes an empty word. A list without any non-empty word is
// rejected.
func New(text string, opts ...Option) (*Source, error) {
	words := strings.Split(text, "\n")
	if !hasWord(words) {
		return nil, fmt.Errorf("word list is empty: %w", model.ErrInvalidInput)
	}
	s := &Source{
		words: words,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Len returns the number of entries, empty lines included.
func (s *Source) Len() int {
	return len(s.words)
}

// Generate picks count words uniformly at random, with replacement.
func (s *Source) Generate(count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("word count must be > 0, got %d: %w", count, model.ErrInvalidInput)
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, s.words[s.rnd.Intn(len(s.words))])
	}
	return result, nil
}

// GenerateWeighted picks count words with a bias toward words containing
// characters from weakSet. Each weak character adds factor to a word's weight.
func (s *Source) GenerateWeighted(count int, weakSet map[rune]struct{}, factor float64) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("word count must be > 0, got %d: %w", count, model.ErrInvalidInput)
	}
	if len(weakSet) == 0 || factor <= 0 {
		return s.Generate(count)
	}
	weights := make([]float64, len(s.words))
	total := 0.0
	for i, word := range s.words {
		weakCount := 0
		for _, r := range word {
			if _, ok := weakSet[r]; ok {
				weakCount++
			}
		}
		w := 1.0 + float64(weakCount)*factor
		weights[i] = w
		total += w
	}

	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		r := s.rnd.Float64() * total
		acc := 0.0
		idx := len(weights) - 1
		for j, w := range weights {
			acc += w
			if r < acc {
				idx = j
				break
			}
		}
		result = append(result, s.words[idx])
	}
	return result, nil
}

func hasWord(words []string) bool {
	for _, w := range words {
		if w != "" {
			return true
		}
	}
	return false
}
