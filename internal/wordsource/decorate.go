package wordsource

import (
	"math/rand"
	"unicode"
	"unicode/utf8"
)

// Decoration adds optional capitalization and trailing punctuation to words.
// The zero value leaves words untouched. Empty words come from empty lines of
// the list and are never decorated.
type Decoration struct {
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Enabled reports whether the decoration can change any word.
func (d Decoration) Enabled() bool {
	return d.CapsPct > 0 || d.punctEnabled()
}

func (d Decoration) punctEnabled() bool {
	return d.PunctPct > 0 && len(d.PunctSet) > 0
}

// Apply decorates words in place and returns them.
func (d Decoration) Apply(rnd *rand.Rand, words []string) []string {
	if !d.Enabled() {
		return words
	}
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = d.punctuate(rnd, d.capitalize(rnd, word))
	}
	return words
}

// capitalize upper-cases the first rune of word with probability CapsPct.
func (d Decoration) capitalize(rnd *rand.Rand, word string) string {
	if d.CapsPct <= 0 || rnd.Float64() > d.CapsPct {
		return word
	}
	first, size := utf8.DecodeRuneInString(word)
	upper := unicode.ToUpper(first)
	if upper == first {
		return word
	}
	return string(upper) + word[size:]
}

// punctuate appends a rune from PunctSet with probability PunctPct.
func (d Decoration) punctuate(rnd *rand.Rand, word string) string {
	if !d.punctEnabled() || rnd.Float64() > d.PunctPct {
		return word
	}
	return word + string(d.PunctSet[rnd.Intn(len(d.PunctSet))])
}
