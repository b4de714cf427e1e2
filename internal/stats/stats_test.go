package stats

import (
	"testing"
	"time"

	"github.com/verte-zerg/rtyping/internal/model"
	"github.com/verte-zerg/rtyping/internal/session"
)

func TestSampleMetrics(t *testing.T) {
	tests := []struct {
		name       string
		correct    int
		incorrect  int
		durationMs int64
		cpm        float64
		wpm        float64
		acc        float64
	}{
		{name: "zero duration", correct: 10, durationMs: 0},
		{name: "one minute", correct: 300, incorrect: 0, durationMs: 60000, cpm: 300, wpm: 60, acc: 1},
		{name: "with misses", correct: 30, incorrect: 10, durationMs: 30000, cpm: 60, wpm: 12, acc: 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpm, wpm, acc := SampleMetrics(tt.correct, tt.incorrect, tt.durationMs)
			if cpm != tt.cpm || wpm != tt.wpm || acc != tt.acc {
				t.Fatalf("got %v/%v/%v, want %v/%v/%v", cpm, wpm, acc, tt.cpm, tt.wpm, tt.acc)
			}
		})
	}
}

func TestSelectWeakChars(t *testing.T) {
	aggs := []model.CharAggregate{
		{Char: "a", Correct: 9, Incorrect: 1},
		{Char: "b", Correct: 1, Incorrect: 1},
		{Char: "c", Correct: 5, Incorrect: 0},
		{Char: " ", Correct: 0, Incorrect: 9},
		{Char: "d", Correct: 3, Incorrect: 1},
	}
	weak := SelectWeakChars(aggs, 2)
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak chars, got %v", weak)
	}
	for _, r := range []rune{'b', 'd'} {
		if _, ok := weak[r]; !ok {
			t.Fatalf("expected %q in weak set %v", r, weak)
		}
	}
	if len(SelectWeakChars(nil, 3)) != 0 {
		t.Fatalf("expected empty set for no aggregates")
	}
}

func TestFromSample(t *testing.T) {
	start := time.Unix(100, 0)
	sample := session.Sample{
		Start: start,
		Timings: map[rune][]time.Duration{
			'a': {100 * time.Millisecond, 300 * time.Millisecond},
			'b': {50 * time.Millisecond},
		},
		Errors:     map[rune]int{'b': 2, 'c': 1},
		Length:     3,
		Duration:   2 * time.Second,
		ErrorCount: 3,
	}
	stats, chars := FromSample(sample, 1)
	if stats.Correct != 3 || stats.Incorrect != 3 || stats.DurationMs != 2000 || stats.Words != 1 {
		t.Fatalf("unexpected sample stats %+v", stats)
	}
	if !stats.EndedAt.Equal(start.Add(2 * time.Second)) {
		t.Fatalf("unexpected end %v", stats.EndedAt)
	}
	want := []model.CharStats{
		{Char: "a", Correct: 2, LatencySumMs: 400, LatencyCount: 2},
		{Char: "b", Correct: 1, Incorrect: 2, LatencySumMs: 50, LatencyCount: 1},
		{Char: "c", Incorrect: 1},
	}
	if len(chars) != len(want) {
		t.Fatalf("expected %d chars, got %d", len(want), len(chars))
	}
	for i := range want {
		if chars[i] != want[i] {
			t.Fatalf("char %d: got %+v, want %+v", i, chars[i], want[i])
		}
	}
}
