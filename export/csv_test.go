package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wissalouarda6/data-warehouse-mining-project/analytics"
)

func sampleReport() *Report {
	return &Report{
		RunID: "test-run",
		Categories: []analytics.CategorySummary{
			{Category: "Electronics", TotalAmount: 1234.5, SaleCount: 10},
			{Category: "Home", TotalAmount: 200, SaleCount: 4},
		},
		Months: []analytics.MonthSummary{
			{Year: 2024, Month: 1, MonthName: "January", TotalAmount: 700, SaleCount: 14},
		},
		Stores: []analytics.StoreSummary{
			{StoreID: 1, StoreName: "Store 1", City: "Rabat", TotalAmount: 700, NetProfit: 120, SaleCount: 14, SurfaceArea: 350, SalesPerArea: 2},
		},
		RFM: []analytics.ClientRFM{
			{ClientID: 3, ClientName: "Sara Ziani", Segment: "Premium", RecencyDays: 4, Frequency: 6, Monetary: 999.99},
		},
		Clusters: &analytics.ClusteringResult{
			Assignments: []analytics.ClusterAssignment{{ClientID: 3, Cluster: 1}},
			Centroids:   [][]float64{{0.1, 0.2, 0.3, 0.4}, {-1, 0, 1, 0}, {0, 0, 0, 0}},
			Sizes:       []int{1, 0, 0},
		},
		Anomalies: []analytics.AnomalyFlag{
			{SaleID: 77, TotalAmount: 90000, ZScore: 5.2},
		},
		KPIs: &analytics.KPIReport{TotalRevenue: 900, TransactionCount: 14, ClientCount: 3},
		ChartSeries: []analytics.ChartSeries{
			{Name: "revenue_by_category", Labels: []string{"Electronics", "Home"}, Values: []float64{1234.5, 200}},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	files, err := WriteCSV(dir, sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		_, err := os.Stat(path)
		assert.NoError(t, err, "missing export file %s", path)
	}

	f, err := os.Open(filepath.Join(dir, "category_summary.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 categories
	assert.Equal(t, []string{"category", "total_amount", "sale_count"}, records[0])
	assert.Equal(t, []string{"Electronics", "1234.50", "10"}, records[1])
}

func TestWriteCSVRFMColumns(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteCSV(dir, sampleReport())
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "client_rfm.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"client_id", "client_name", "segment", "recency_days", "frequency", "monetary"}, records[0])
	assert.Equal(t, []string{"3", "Sara Ziani", "Premium", "4", "6", "999.99"}, records[1])
}

func TestWriteExcelWorkbook(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteExcel(dir, sampleReport())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
