package stats

import (
	"sort"

	"github.com/verte-zerg/rtyping/internal/model"
	"github.com/verte-zerg/rtyping/internal/session"
)

// FromSample converts a session sample into rows for the store. Characters
// are sorted so inserts are deterministic.
func FromSample(sample session.Sample, words int) (model.SampleStats, []model.CharStats) {
	stats := model.SampleStats{
		StartedAt:  sample.Start,
		EndedAt:    sample.Start.Add(sample.Duration),
		Words:      words,
		Length:     sample.Length,
		Correct:    sample.Length,
		Incorrect:  sample.ErrorCount,
		DurationMs: sample.Duration.Milliseconds(),
	}

	byChar := map[rune]*model.CharStats{}
	entry := func(ch rune) *model.CharStats {
		cs, ok := byChar[ch]
		if !ok {
			cs = &model.CharStats{Char: string(ch)}
			byChar[ch] = cs
		}
		return cs
	}
	for ch, timings := range sample.Timings {
		cs := entry(ch)
		cs.Correct += len(timings)
		for _, d := range timings {
			cs.LatencySumMs += d.Milliseconds()
			cs.LatencyCount++
		}
	}
	for ch, n := range sample.Errors {
		entry(ch).Incorrect += n
	}

	chars := make([]model.CharStats, 0, len(byChar))
	for _, cs := range byChar {
		chars = append(chars, *cs)
	}
	sort.Slice(chars, func(i, j int) bool {
		return chars[i].Char < chars[j].Char
	})
	return stats, chars
}
