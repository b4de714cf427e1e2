// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/verte-zerg/rtyping/internal/model"
)

// SampleMetrics computes CPM, WPM, and accuracy for a sample.
func SampleMetrics(correct, incorrect int, durationMs int64) (cpm, wpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	cpm = float64(correct) / minutes
	wpm = cpm / 5.0
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return cpm, wpm, accuracy
}

// RenderSummary prints a summary of the archived samples.
func RenderSummary(w io.Writer, samples []model.SampleAggregate) error {
	if len(samples) == 0 {
		_, err := fmt.Fprintln(w, "No completed samples.")
		return err
	}
	var totalCPM, totalAcc float64
	bestCPM := 0.0
	missed := 0
	for _, s := range samples {
		cpm, _, acc := SampleMetrics(s.Correct, s.Incorrect, s.DurationMs)
		totalCPM += cpm
		totalAcc += acc
		missed += s.Incorrect
		if cpm > bestCPM {
			bestCPM = cpm
		}
	}
	count := float64(len(samples))
	lines := []string{
		"Summary",
		fmt.Sprintf("Samples: %d", len(samples)),
		fmt.Sprintf("Avg speed: %.1f cpm (%.1f wpm)", totalCPM/count, totalCPM/count/5.0),
		fmt.Sprintf("Best speed: %.1f cpm", bestCPM),
		fmt.Sprintf("Errors: %d", missed),
		fmt.Sprintf("Avg accuracy: %.2f%%", (totalAcc/count)*100),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCharTable prints per-character aggregates, lowest accuracy first.
func RenderCharTable(w io.Writer, aggs []model.CharAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No character stats found.")
		return err
	}
	type row struct {
		char      string
		acc       float64
		latency   float64
		correct   int
		incorrect int
	}
	rows := make([]row, 0, len(aggs))
	for _, agg := range aggs {
		charLabel := agg.Char
		if charLabel == " " {
			charLabel = "<space>"
		}
		lat := 0.0
		if agg.LatencyCount > 0 {
			lat = float64(agg.LatencySumMs) / float64(agg.LatencyCount)
		}
		rows = append(rows, row{
			char:      charLabel,
			acc:       accuracy(agg),
			latency:   lat,
			correct:   agg.Correct,
			incorrect: agg.Incorrect,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].acc == rows[j].acc {
			return rows[i].char < rows[j].char
		}
		return rows[i].acc < rows[j].acc
	})

	if _, err := fmt.Fprintln(w, "Per-Character"); err != nil {
		return err
	}
	tbl := newTable(
		column{title: "Char"},
		column{title: "Accuracy", right: true},
		column{title: "Avg Latency (ms)", right: true},
		column{title: "Correct", right: true},
		column{title: "Incorrect", right: true},
	)
	for _, r := range rows {
		tbl.addRow(
			r.char,
			fmt.Sprintf("%.2f%%", r.acc*100),
			fmt.Sprintf("%.1f", r.latency),
			fmt.Sprintf("%d", r.correct),
			fmt.Sprintf("%d", r.incorrect),
		)
	}
	return tbl.render(w)
}
