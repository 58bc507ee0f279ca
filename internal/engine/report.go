package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/linea-labs/linea/pkg/anomaly"
	"github.com/linea-labs/linea/pkg/impact"
	"github.com/linea-labs/linea/pkg/lineage"
	"github.com/linea-labs/linea/pkg/metrics"
	"github.com/linea-labs/linea/pkg/validate"
)

// ReportOptions selects the sections of a combined report.
type ReportOptions struct {
	// GroundTruth enables the validation section when non-nil.
	GroundTruth map[string][]string
	// ChangedID and ChangeType enable the impact section when ChangedID is
	// set.
	ChangedID  string
	ChangeType lineage.ChangeType
	// HistorySize bounds the snapshot history used for anomaly detection.
	HistorySize int
	// Feeds are the external monitoring figures for the metrics rollup.
	Feeds metrics.Feeds
}

// Report is a combined health report over one graph snapshot.
type Report struct {
	Metrics    metrics.Report   `json:"metrics"`
	Anomalies  anomaly.Report   `json:"anomalies"`
	Validation *validate.Result `json:"validation,omitempty"`
	Impact     *impact.Analysis `json:"impact,omitempty"`
}

// Report runs the selected query operations concurrently against one graph
// snapshot. The operations are pure reads over an immutable graph, so they
// need no coordination beyond collecting their results.
func (e *Engine) Report(ctx context.Context, opts ReportOptions) (*Report, error) {
	g, err := e.Graph()
	if err != nil {
		return nil, err
	}

	var report Report
	grp, _ := errgroup.WithContext(ctx)

	grp.Go(func() error {
		report.Metrics = metrics.Aggregate(g, opts.Feeds)
		return nil
	})

	grp.Go(func() error {
		// Snapshot history comes from the store, which is the one I/O-bound
		// section of the report.
		rep, err := e.detectAnomalies(g, opts.HistorySize)
		if err != nil {
			return err
		}
		report.Anomalies = rep
		return nil
	})

	if opts.GroundTruth != nil {
		grp.Go(func() error {
			res := validate.Validate(g, opts.GroundTruth)
			report.Validation = &res
			return nil
		})
	}

	if opts.ChangedID != "" {
		grp.Go(func() error {
			a := impact.Analyze(g, opts.ChangedID, opts.ChangeType)
			report.Impact = &a
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return &report, nil
}
