package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/verte-zerg/rtyping/internal/model"
	"github.com/verte-zerg/rtyping/internal/store"
)

// Report contains precomputed data for the end-of-run summary.
type Report struct {
	Samples  []model.SampleAggregate
	CharAggs []model.CharAggregate
}

// BuildReport loads every archived sample and its character aggregates.
func BuildReport(ctx context.Context, st *store.Store) (Report, error) {
	samples, err := st.ListSamples(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list samples: %w", err)
	}
	ids := make([]int64, len(samples))
	for i, s := range samples {
		ids[i] = s.SampleID
	}
	charAggs, err := st.ListCharAggregatesForSamples(ctx, ids)
	if err != nil {
		return Report{}, fmt.Errorf("failed to aggregate characters: %w", err)
	}
	return Report{Samples: samples, CharAggs: charAggs}, nil
}

// Render writes the summary followed by the per-character table. Nothing is
// written when the report holds no samples.
func (r Report) Render(w io.Writer) error {
	if len(r.Samples) == 0 {
		return nil
	}
	if err := RenderSummary(w, r.Samples); err != nil {
		return err
	}
	return RenderCharTable(w, r.CharAggs)
}
