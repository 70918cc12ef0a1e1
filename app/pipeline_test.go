package app

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wissalouarda6/data-warehouse-mining-project/config"
	"github.com/wissalouarda6/data-warehouse-mining-project/generator"
	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

func testAnalyticsConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		ClusterCount:     3,
		Restarts:         25,
		MaxIterations:    300,
		AnomalyThreshold: 3.0,
		JoinPolicy:       "fail",
	}
}

func testDataset(seed int64) generator.Dataset {
	rng := rand.New(rand.NewSource(seed))
	return generator.New(rng).Generate(
		generator.Sizes{Clients: 40, Products: 15, Stores: 5, Sales: 800},
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	)
}

func TestRunPipelineEndToEnd(t *testing.T) {
	ds := testDataset(42)

	report, err := RunPipeline(ds, testAnalyticsConfig(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.NotEmpty(t, report.Categories)
	require.NotEmpty(t, report.Months)
	require.NotEmpty(t, report.Stores)
	require.NotEmpty(t, report.RFM)
	require.NotNil(t, report.Clusters)
	require.NotNil(t, report.KPIs)
	require.Len(t, report.ChartSeries, 4)

	// conservation: category totals sum to total revenue
	total := 0.0
	for _, s := range report.Categories {
		total += s.TotalAmount
	}
	assert.InDelta(t, report.KPIs.TotalRevenue, total, 1e-6)

	// every sale lands in exactly one month bucket
	saleCount := 0
	for _, s := range report.Months {
		saleCount += s.SaleCount
	}
	assert.Equal(t, len(ds.Sales), saleCount)

	// every client with a sale gets an RFM row and a cluster
	assert.Equal(t, report.KPIs.ClientCount, len(report.RFM))
	assert.Equal(t, report.KPIs.ClientCount, len(report.Clusters.Assignments))

	clustered := 0
	for _, size := range report.Clusters.Sizes {
		clustered += size
	}
	assert.Equal(t, report.KPIs.ClientCount, clustered)
}

func TestRunPipelineDeterministic(t *testing.T) {
	first, err := RunPipeline(testDataset(42), testAnalyticsConfig(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := RunPipeline(testDataset(42), testAnalyticsConfig(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, first.RFM, second.RFM)
	assert.Equal(t, first.Clusters, second.Clusters)
	assert.Equal(t, first.Anomalies, second.Anomalies)
	assert.Equal(t, first.KPIs, second.KPIs)
}

func TestRunPipelineFailsOnDanglingReference(t *testing.T) {
	ds := testDataset(42)
	ds.Sales[17].ProductID = 9999

	_, err := RunPipeline(ds, testAnalyticsConfig(), rand.New(rand.NewSource(42)))
	require.Error(t, err)

	var mre *warehouse.MissingReferenceError
	assert.ErrorAs(t, err, &mre)
}

func TestRunPipelineDropPolicyTolerates(t *testing.T) {
	ds := testDataset(42)
	ds.Sales[17].ProductID = 9999

	cfg := testAnalyticsConfig()
	cfg.JoinPolicy = "drop"

	report, err := RunPipeline(ds, cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, len(ds.Sales)-1, report.KPIs.TransactionCount)
}
