// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Words        int
	WordListPath string
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	FocusWeak    bool
	WeakTop      int
	WeakWindow   int
	WeakFactor   float64
}

// SampleStats captures a completed typing sample for archiving.
type SampleStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Words      int
	Length     int
	Correct    int
	Incorrect  int
	DurationMs int64
}

// CharStats stores per-character stats for a sample.
type CharStats struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// CharAggregate aggregates character stats across samples.
type CharAggregate struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// SampleAggregate summarizes an archived sample for reporting.
type SampleAggregate struct {
	SampleID   int64
	EndedAt    time.Time
	Correct    int
	Incorrect  int
	DurationMs int64
}
