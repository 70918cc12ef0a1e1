// Package analytics contains the deterministic transformations over the
// warehouse table: grouped OLAP summaries, the RFM table, client
// standardization + k-means segmentation, z-score anomaly detection, KPI
// scalars and the data series feeding charts.
//
// Every function here is a pure fold over its input: reductions are
// associative and commutative, so the output never depends on input
// ordering, and ranked outputs break ties on the ascending group key to stay
// deterministic.
package analytics

import (
	"sort"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// CategorySummary aggregates sales for one product category.
type CategorySummary struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	SaleCount   int     `json:"sale_count"`
}

// MonthSummary aggregates sales for one calendar month.
type MonthSummary struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	MonthName   string  `json:"month_name"`
	TotalAmount float64 `json:"total_amount"`
	SaleCount   int     `json:"sale_count"`
}

// StoreSummary aggregates sales for one store, including profit and the
// revenue-per-surface ratio.
type StoreSummary struct {
	StoreID      int     `json:"store_id"`
	StoreName    string  `json:"store_name"`
	City         string  `json:"city"`
	TotalAmount  float64 `json:"total_amount"`
	NetProfit    float64 `json:"net_profit"`
	SaleCount    int     `json:"sale_count"`
	SurfaceArea  float64 `json:"surface_area"`
	SalesPerArea float64 `json:"sales_per_area"`
}

// salesAccumulator is the typed accumulator shared by the grouped reductions.
type salesAccumulator struct {
	totalAmount float64
	netProfit   float64
	count       int
}

func (a *salesAccumulator) add(row warehouse.EnrichedSale) {
	a.totalAmount += row.TotalAmount
	a.netProfit += row.NetProfit
	a.count++
}

// AggregateByCategory produces one summary per product category, ranked by
// total amount descending with ties broken alphabetically.
func AggregateByCategory(rows []warehouse.EnrichedSale) ([]CategorySummary, error) {
	if len(rows) == 0 {
		return nil, NewEmptyInputError("category aggregation")
	}

	acc := make(map[string]*salesAccumulator)
	for _, row := range rows {
		a, ok := acc[row.Category]
		if !ok {
			a = &salesAccumulator{}
			acc[row.Category] = a
		}
		a.add(row)
	}

	summaries := make([]CategorySummary, 0, len(acc))
	for category, a := range acc {
		summaries = append(summaries, CategorySummary{
			Category:    category,
			TotalAmount: a.totalAmount,
			SaleCount:   a.count,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalAmount != summaries[j].TotalAmount {
			return summaries[i].TotalAmount > summaries[j].TotalAmount
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries, nil
}

// AggregateByMonth produces one summary per calendar month in chronological
// order.
func AggregateByMonth(rows []warehouse.EnrichedSale) ([]MonthSummary, error) {
	if len(rows) == 0 {
		return nil, NewEmptyInputError("monthly aggregation")
	}

	type monthKey struct {
		year  int
		month int
	}

	acc := make(map[monthKey]*salesAccumulator)
	names := make(map[monthKey]string)
	for _, row := range rows {
		key := monthKey{year: row.Year, month: row.Month}
		a, ok := acc[key]
		if !ok {
			a = &salesAccumulator{}
			acc[key] = a
			names[key] = row.MonthName
		}
		a.add(row)
	}

	summaries := make([]MonthSummary, 0, len(acc))
	for key, a := range acc {
		summaries = append(summaries, MonthSummary{
			Year:        key.year,
			Month:       key.month,
			MonthName:   names[key],
			TotalAmount: a.totalAmount,
			SaleCount:   a.count,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year < summaries[j].Year
		}
		return summaries[i].Month < summaries[j].Month
	})

	return summaries, nil
}

// AggregateByStore produces one summary per store, ranked by total amount
// descending with ties broken by ascending store id. SalesPerArea relates
// revenue to the store's surface so small stores can outrank big ones.
func AggregateByStore(rows []warehouse.EnrichedSale) ([]StoreSummary, error) {
	if len(rows) == 0 {
		return nil, NewEmptyInputError("store aggregation")
	}

	acc := make(map[int]*salesAccumulator)
	meta := make(map[int]warehouse.EnrichedSale)
	for _, row := range rows {
		a, ok := acc[row.StoreID]
		if !ok {
			a = &salesAccumulator{}
			acc[row.StoreID] = a
			meta[row.StoreID] = row
		}
		a.add(row)
	}

	summaries := make([]StoreSummary, 0, len(acc))
	for storeID, a := range acc {
		row := meta[storeID]
		s := StoreSummary{
			StoreID:     storeID,
			StoreName:   row.StoreName,
			City:        row.StoreCity,
			TotalAmount: a.totalAmount,
			NetProfit:   a.netProfit,
			SaleCount:   a.count,
			SurfaceArea: row.SurfaceArea,
		}
		if row.SurfaceArea > 0 {
			s.SalesPerArea = a.totalAmount / row.SurfaceArea
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalAmount != summaries[j].TotalAmount {
			return summaries[i].TotalAmount > summaries[j].TotalAmount
		}
		return summaries[i].StoreID < summaries[j].StoreID
	})

	return summaries, nil
}
