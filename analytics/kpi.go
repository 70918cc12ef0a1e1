package analytics

import (
	"sort"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// KPIReport holds the headline scalars of one pipeline run.
type KPIReport struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalNetProfit   float64 `json:"total_net_profit"`
	AvgMarginRate    float64 `json:"avg_margin_rate"`
	TransactionCount int     `json:"transaction_count"`
	ClientCount      int     `json:"client_count"`
	AvgBasket        float64 `json:"avg_basket"`

	// Revenue growth between the two most recent years in the data,
	// in percent. 0 when the earlier year has no revenue or the data
	// spans a single year.
	GrowthEarlierYear int     `json:"growth_earlier_year"`
	GrowthLaterYear   int     `json:"growth_later_year"`
	RevenueGrowthPct  float64 `json:"revenue_growth_pct"`
}

// ComputeKPIs reduces the warehouse table into the dashboard scalars.
func ComputeKPIs(rows []warehouse.EnrichedSale) (*KPIReport, error) {
	if len(rows) == 0 {
		return nil, NewEmptyInputError("kpi")
	}

	report := &KPIReport{TransactionCount: len(rows)}

	clients := make(map[int]struct{})
	marginSum := 0.0
	for _, row := range rows {
		report.TotalRevenue += row.TotalAmount
		report.TotalNetProfit += row.NetProfit
		marginSum += row.MarginRate
		clients[row.ClientID] = struct{}{}
	}

	report.AvgMarginRate = marginSum / float64(len(rows))
	report.ClientCount = len(clients)
	report.AvgBasket = report.TotalRevenue / float64(len(rows))

	byYear := RevenueByYear(rows)
	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	if len(years) >= 2 {
		earlier, later := years[len(years)-2], years[len(years)-1]
		report.GrowthEarlierYear = earlier
		report.GrowthLaterYear = later
		report.RevenueGrowthPct = GrowthRate(byYear[earlier], byYear[later])
	}

	return report, nil
}

// RevenueByYear sums total_amount per calendar year.
func RevenueByYear(rows []warehouse.EnrichedSale) map[int]float64 {
	byYear := make(map[int]float64)
	for _, row := range rows {
		byYear[row.Year] += row.TotalAmount
	}
	return byYear
}

// GrowthRate returns the period-over-period growth in percent, 0 when the
// earlier period has no revenue.
func GrowthRate(earlier, later float64) float64 {
	if earlier == 0 {
		return 0
	}
	return (later - earlier) / earlier * 100
}
