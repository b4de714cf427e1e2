package session

import "time"

// Snapshot is a read-only view of the running statistics.
type Snapshot struct {
	// Speed is correct keystrokes per minute since the session start.
	Speed   float64
	Errors  int
	Correct int
	Elapsed time.Duration
}

// Sample is one completed target with its aggregated statistics.
type Sample struct {
	Start      time.Time
	Timings    map[rune][]time.Duration
	Errors     map[rune]int
	Length     int
	Duration   time.Duration
	ErrorCount int
}

// Accumulator collects statistics for the current target.
type Accumulator struct {
	start       time.Time
	lastCorrect time.Time
	correct     int
	errors      int
	timings     map[rune][]time.Duration
	keyErrors   map[rune]int
}

// Reset clears the per-session fields and starts timing at now.
func (a *Accumulator) Reset(now time.Time) {
	a.start = now
	a.lastCorrect = now
	a.correct = 0
	a.errors = 0
	a.timings = map[rune][]time.Duration{}
	a.keyErrors = map[rune]int{}
}

// RecordCorrect stores the latency for ch, measured from the previous correct
// keystroke or from the session start for the first one.
func (a *Accumulator) RecordCorrect(ch rune, now time.Time) {
	if a.timings == nil {
		a.timings = map[rune][]time.Duration{}
	}
	delta := now.Sub(a.lastCorrect)
	if delta < 0 {
		delta = 0
	}
	a.timings[ch] = append(a.timings[ch], delta)
	a.lastCorrect = now
	a.correct++
}

// RecordError counts a first miss at a position where expected was due.
func (a *Accumulator) RecordError(expected rune) {
	if a.keyErrors == nil {
		a.keyErrors = map[rune]int{}
	}
	a.keyErrors[expected]++
	a.errors++
}

// Snapshot computes the current speed and error count. It never mutates a.
func (a *Accumulator) Snapshot(now time.Time) Snapshot {
	elapsed := now.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	snap := Snapshot{
		Errors:  a.errors,
		Correct: a.correct,
		Elapsed: elapsed,
	}
	minutes := elapsed.Minutes()
	if a.correct > 0 && minutes > 0 {
		snap.Speed = float64(a.correct) / minutes
	}
	return snap
}

// Sample freezes the accumulator into an archived sample ending at now.
func (a *Accumulator) Sample(now time.Time) Sample {
	timings := make(map[rune][]time.Duration, len(a.timings))
	for ch, ds := range a.timings {
		timings[ch] = append([]time.Duration(nil), ds...)
	}
	keyErrors := make(map[rune]int, len(a.keyErrors))
	for ch, n := range a.keyErrors {
		keyErrors[ch] = n
	}
	duration := now.Sub(a.start)
	if duration < 0 {
		duration = 0
	}
	return Sample{
		Start:      a.start,
		Timings:    timings,
		Errors:     keyErrors,
		Length:     a.correct,
		Duration:   duration,
		ErrorCount: a.errors,
	}
}
