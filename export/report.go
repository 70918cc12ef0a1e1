// Package export serializes the pipeline outputs: one CSV file per output
// table and one Excel workbook per run. It only formats what the analytics
// package produced; no computation happens here.
package export

import (
	"fmt"
	"strconv"

	"github.com/wissalouarda6/data-warehouse-mining-project/analytics"
)

// Report bundles every output of one pipeline run for the export adapters.
type Report struct {
	RunID string

	Categories  []analytics.CategorySummary
	Months      []analytics.MonthSummary
	Stores      []analytics.StoreSummary
	RFM         []analytics.ClientRFM
	Clusters    *analytics.ClusteringResult
	Anomalies   []analytics.AnomalyFlag
	KPIs        *analytics.KPIReport
	ChartSeries []analytics.ChartSeries
}

// tables flattens the report into named (header, rows) blocks shared by the
// CSV and Excel writers.
func (r *Report) tables() []table {
	var tables []table

	t := table{name: "category_summary", header: []string{"category", "total_amount", "sale_count"}}
	for _, s := range r.Categories {
		t.rows = append(t.rows, []string{s.Category, formatFloat(s.TotalAmount), strconv.Itoa(s.SaleCount)})
	}
	tables = append(tables, t)

	t = table{name: "month_summary", header: []string{"year", "month", "month_name", "total_amount", "sale_count"}}
	for _, s := range r.Months {
		t.rows = append(t.rows, []string{strconv.Itoa(s.Year), strconv.Itoa(s.Month), s.MonthName, formatFloat(s.TotalAmount), strconv.Itoa(s.SaleCount)})
	}
	tables = append(tables, t)

	t = table{name: "store_summary", header: []string{"store_id", "store_name", "city", "total_amount", "net_profit", "sale_count", "surface_area", "sales_per_area"}}
	for _, s := range r.Stores {
		t.rows = append(t.rows, []string{
			strconv.Itoa(s.StoreID), s.StoreName, s.City,
			formatFloat(s.TotalAmount), formatFloat(s.NetProfit), strconv.Itoa(s.SaleCount),
			formatFloat(s.SurfaceArea), formatFloat(s.SalesPerArea),
		})
	}
	tables = append(tables, t)

	t = table{name: "client_rfm", header: []string{"client_id", "client_name", "segment", "recency_days", "frequency", "monetary"}}
	for _, s := range r.RFM {
		t.rows = append(t.rows, []string{
			strconv.Itoa(s.ClientID), s.ClientName, s.Segment,
			strconv.Itoa(s.RecencyDays), strconv.Itoa(s.Frequency), formatFloat(s.Monetary),
		})
	}
	tables = append(tables, t)

	if r.Clusters != nil {
		t = table{name: "cluster_assignments", header: []string{"client_id", "cluster"}}
		for _, a := range r.Clusters.Assignments {
			t.rows = append(t.rows, []string{strconv.Itoa(a.ClientID), strconv.Itoa(a.Cluster)})
		}
		tables = append(tables, t)

		t = table{name: "cluster_centroids", header: []string{"cluster", "size", "age", "total_purchases", "transaction_count", "average_basket"}}
		for c, centroid := range r.Clusters.Centroids {
			row := []string{strconv.Itoa(c), strconv.Itoa(r.Clusters.Sizes[c])}
			for _, v := range centroid {
				row = append(row, formatFloat(v))
			}
			t.rows = append(t.rows, row)
		}
		tables = append(tables, t)
	}

	t = table{name: "anomalies", header: []string{"sale_id", "total_amount", "z_score"}}
	for _, a := range r.Anomalies {
		t.rows = append(t.rows, []string{strconv.Itoa(a.SaleID), formatFloat(a.TotalAmount), formatFloat(a.ZScore)})
	}
	tables = append(tables, t)

	if r.KPIs != nil {
		tables = append(tables, table{
			name:   "kpis",
			header: []string{"metric", "value"},
			rows: [][]string{
				{"total_revenue", formatFloat(r.KPIs.TotalRevenue)},
				{"total_net_profit", formatFloat(r.KPIs.TotalNetProfit)},
				{"avg_margin_rate", formatFloat(r.KPIs.AvgMarginRate)},
				{"transaction_count", strconv.Itoa(r.KPIs.TransactionCount)},
				{"client_count", strconv.Itoa(r.KPIs.ClientCount)},
				{"avg_basket", formatFloat(r.KPIs.AvgBasket)},
				{"revenue_growth_pct", formatFloat(r.KPIs.RevenueGrowthPct)},
			},
		})
	}

	for _, series := range r.ChartSeries {
		t = table{name: fmt.Sprintf("series_%s", series.Name), header: []string{"label", "value"}}
		for i, label := range series.Labels {
			t.rows = append(t.rows, []string{label, formatFloat(series.Values[i])})
		}
		tables = append(tables, t)
	}

	return tables
}

type table struct {
	name   string
	header []string
	rows   [][]string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
