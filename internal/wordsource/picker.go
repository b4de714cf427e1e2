package wordsource

// Picker combines a Source with decoration and weak-character focus. It is the
// text source handed to a typing session.
type Picker struct {
	src        *Source
	deco       Decoration
	weakSet    map[rune]struct{}
	weakFactor float64
}

// NewPicker wraps src. A zero Decoration and an empty weak set make the picker
// behave exactly like src.Generate.
func NewPicker(src *Source, deco Decoration, weakFactor float64) *Picker {
	return &Picker{
		src:        src,
		deco:       deco,
		weakSet:    map[rune]struct{}{},
		weakFactor: weakFactor,
	}
}

// SetWeakSet replaces the characters the picker biases toward.
func (p *Picker) SetWeakSet(set map[rune]struct{}) {
	if set == nil {
		set = map[rune]struct{}{}
	}
	p.weakSet = set
}

// WeakSet returns the current weak characters.
func (p *Picker) WeakSet() map[rune]struct{} {
	return p.weakSet
}

// Generate picks count words and decorates them.
func (p *Picker) Generate(count int) ([]string, error) {
	var (
		words []string
		err   error
	)
	if len(p.weakSet) > 0 {
		words, err = p.src.GenerateWeighted(count, p.weakSet, p.weakFactor)
	} else {
		words, err = p.src.Generate(count)
	}
	if err != nil {
		return nil, err
	}
	return p.deco.Apply(p.src.rnd, words), nil
}
