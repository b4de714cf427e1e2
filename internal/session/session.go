// Package session implements the typing state machine: a target text, a
// cursor and a statistics accumulator driven one key event at a time.
//
// A Session is not safe for concurrent use. It is owned by the controller that
// delivers key events, which calls into it synchronously.
package session

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/rtyping/internal/model"
)

// ErrEmptyTarget is returned when regeneration keeps producing an empty
// target, which happens with word lists made mostly of empty lines.
var ErrEmptyTarget = fmt.Errorf("generated target is empty: %w", model.ErrInvalidInput)

const (
	separator             = " "
	maxRegenerateAttempts = 16
)

// TextSource produces the words for a new target.
type TextSource interface {
	Generate(count int) ([]string, error)
}

// State is the coarse session state.
type State int

const (
	// Idle means no key has been pressed on the current target yet.
	Idle State = iota
	// Active means at least one key was processed on the current target.
	Active
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Outcome describes what a single key event did.
type Outcome struct {
	// Matched is true when the key equals the expected character.
	Matched bool
	// Completed holds the sample of the target the key finished. The session
	// keeps no copy; the caller archives it.
	Completed *Sample
	// Regenerated is true when a new target replaced the old one.
	Regenerated bool
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// Session is a typing session over regenerating targets.
type Session struct {
	src   TextSource
	words int
	clock Clock

	text   []Character
	cursor int
	state  State
	stats  Accumulator
}

// New creates a session producing targets of words words and generates the
// first target.
func New(src TextSource, words int, opts ...Option) (*Session, error) {
	if src == nil {
		return nil, fmt.Errorf("text source is nil: %w", model.ErrInvalidInput)
	}
	if words <= 0 {
		return nil, fmt.Errorf("word count must be > 0, got %d: %w", words, model.ErrInvalidInput)
	}
	s := &Session{
		src:   src,
		words: words,
		clock: SystemClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate replaces the target with freshly generated text and resets the
// cursor and the per-session statistics. On a generator error the current
// target is left untouched. When every attempt joins to an empty string the
// target becomes empty, the statistics are reset and ErrEmptyTarget is
// returned; the next key then retries.
func (s *Session) Regenerate() error {
	var target string
	for attempt := 0; attempt < maxRegenerateAttempts && target == ""; attempt++ {
		words, err := s.src.Generate(s.words)
		if err != nil {
			return fmt.Errorf("failed to generate words: %w", err)
		}
		target = strings.Join(words, separator)
	}

	text := make([]Character, 0, len(target))
	for _, r := range target {
		text = append(text, Character{Char: r, Status: Untyped})
	}
	s.text = text
	s.cursor = 0
	s.state = Idle
	s.stats.Reset(s.clock.Now())
	if len(s.text) == 0 {
		return ErrEmptyTarget
	}
	return nil
}

// KeyPressed processes one typed character.
//
// A key arriving while the cursor is already past the end (left over from a
// failed regeneration) is consumed and triggers regeneration.
func (s *Session) KeyPressed(r rune) (Outcome, error) {
	if s.cursor >= len(s.text) {
		if err := s.Regenerate(); err != nil {
			return Outcome{}, err
		}
		return Outcome{Regenerated: true}, nil
	}

	now := s.clock.Now()
	s.state = Active
	pos := &s.text[s.cursor]
	if r != pos.Char {
		// Retries at the same position are not counted again.
		if pos.Status == Untyped {
			s.stats.RecordError(pos.Char)
		}
		pos.Status = Incorrect
		return Outcome{}, nil
	}

	pos.Status = Correct
	s.stats.RecordCorrect(r, now)
	s.cursor++
	out := Outcome{Matched: true}
	if s.cursor < len(s.text) {
		return out, nil
	}

	sample := s.stats.Sample(now)
	out.Completed = &sample
	if err := s.Regenerate(); err != nil {
		return out, err
	}
	out.Regenerated = true
	return out, nil
}

// Update drains slot and processes its key, if any. The bool result reports
// whether a key was processed.
func (s *Session) Update(slot *KeySlot) (Outcome, bool, error) {
	r, ok := slot.Take()
	if !ok {
		return Outcome{}, false, nil
	}
	out, err := s.KeyPressed(r)
	return out, true, err
}

// Snapshot returns the current speed and error count.
func (s *Session) Snapshot() Snapshot {
	return s.stats.Snapshot(s.clock.Now())
}

// Text returns a copy of the target characters with their statuses.
func (s *Session) Text() []Character {
	return append([]Character(nil), s.text...)
}

// Target returns the target as a plain string.
func (s *Session) Target() string {
	runes := make([]rune, len(s.text))
	for i, c := range s.text {
		runes[i] = c.Char
	}
	return string(runes)
}

// Cursor returns the index of the next expected character.
func (s *Session) Cursor() int {
	return s.cursor
}

// Len returns the target length in characters.
func (s *Session) Len() int {
	return len(s.text)
}

// State returns whether typing has started on the current target.
func (s *Session) State() State {
	return s.state
}

// WordCount returns the number of words per target.
func (s *Session) WordCount() int {
	return s.words
}
