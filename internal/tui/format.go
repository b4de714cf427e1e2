package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/rtyping/internal/session"
)

// MaxDisplaySpeed caps the speed label. Right after the first keystroke the
// elapsed time is tiny and the raw rate is meaningless.
const MaxDisplaySpeed = 1000.0

// FormatSpeed renders the speed label with one decimal.
func FormatSpeed(speed float64) string {
	if math.IsNaN(speed) || speed < 0 {
		speed = 0
	}
	return fmt.Sprintf("Speed: %.1f cpm", math.Min(speed, MaxDisplaySpeed))
}

// FormatErrors renders the error label.
func FormatErrors(errors int) string {
	return fmt.Sprintf("Errors: %d", errors)
}

// FormatProgress renders the number of finished texts and whether typing has
// started on the current one.
func FormatProgress(completed int, state session.State) string {
	return fmt.Sprintf("Texts: %d (%s)", completed, state)
}

// FormatFocus lists the weak characters the picker currently favors, or
// returns "" when there are none.
func FormatFocus(weak map[rune]struct{}) string {
	if len(weak) == 0 {
		return ""
	}
	runes := make([]rune, 0, len(weak))
	for r := range weak {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(session.DisplayRune(r))
	}
	return "Focus: " + strings.Join(parts, " ")
}
