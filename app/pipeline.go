package app

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wissalouarda6/data-warehouse-mining-project/analytics"
	"github.com/wissalouarda6/data-warehouse-mining-project/config"
	"github.com/wissalouarda6/data-warehouse-mining-project/export"
	"github.com/wissalouarda6/data-warehouse-mining-project/generator"
	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// RunPipeline executes the analytical stages over an already-built dataset:
// join, derived metrics, grouped summaries, RFM, clustering, anomaly flags,
// KPIs and chart series. The rng drives k-means restarts only; with the same
// dataset and rng state the report is identical. Errors carry the failing
// stage.
func RunPipeline(ds generator.Dataset, cfg config.AnalyticsConfig, rng *rand.Rand) (*export.Report, error) {
	builder := warehouse.NewBuilder(warehouse.JoinPolicy(cfg.JoinPolicy))
	rows, err := builder.Build(ds.Clients, ds.Products, ds.Stores, ds.Days, ds.Sales)
	if err != nil {
		return nil, fmt.Errorf("warehouse build: %w", err)
	}

	report := &export.Report{}

	if report.Categories, err = analytics.AggregateByCategory(rows); err != nil {
		return nil, fmt.Errorf("category aggregation: %w", err)
	}
	if report.Months, err = analytics.AggregateByMonth(rows); err != nil {
		return nil, fmt.Errorf("monthly aggregation: %w", err)
	}
	if report.Stores, err = analytics.AggregateByStore(rows); err != nil {
		return nil, fmt.Errorf("store aggregation: %w", err)
	}
	if report.RFM, err = analytics.BuildRFM(rows, time.Time{}); err != nil {
		return nil, fmt.Errorf("rfm: %w", err)
	}

	profiles, err := analytics.BuildClientProfiles(rows)
	if err != nil {
		return nil, fmt.Errorf("client profiles: %w", err)
	}
	opts := analytics.KMeansOptions{
		K:             cfg.ClusterCount,
		Restarts:      cfg.Restarts,
		MaxIterations: cfg.MaxIterations,
	}
	if report.Clusters, err = analytics.ClusterClients(profiles, opts, rng); err != nil {
		return nil, fmt.Errorf("clustering: %w", err)
	}

	if report.Anomalies, err = analytics.DetectAnomalies(rows, cfg.AnomalyThreshold); err != nil {
		return nil, fmt.Errorf("anomaly detection: %w", err)
	}
	if report.KPIs, err = analytics.ComputeKPIs(rows); err != nil {
		return nil, fmt.Errorf("kpi: %w", err)
	}

	report.ChartSeries = []analytics.ChartSeries{
		analytics.CategorySeries(report.Categories),
		analytics.MonthlySeries(report.Months),
		analytics.StoreSeries(report.Stores),
		analytics.SegmentShareSeries(rows),
	}

	return report, nil
}
