package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func saleRow(saleID int, category string, amount float64) warehouse.EnrichedSale {
	return warehouse.EnrichedSale{
		SaleID:      saleID,
		Category:    category,
		TotalAmount: amount,
		Year:        2024,
		Month:       1,
		MonthName:   "January",
		Date:        day(2024, 1, saleID%28+1),
	}
}

func TestAggregateByCategoryConservation(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		saleRow(1, "Electronics", 100),
		saleRow(2, "Grocery", 40),
		saleRow(3, "Electronics", 60),
		saleRow(4, "Home", 25),
		saleRow(5, "Grocery", 35),
	}

	summaries, err := AggregateByCategory(rows)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	total := 0.0
	count := 0
	for _, s := range summaries {
		total += s.TotalAmount
		count += s.SaleCount
	}
	assert.InDelta(t, 260.0, total, 1e-9)
	assert.Equal(t, len(rows), count)

	// ranked by revenue descending
	assert.Equal(t, "Electronics", summaries[0].Category)
	assert.Equal(t, 160.0, summaries[0].TotalAmount)
	assert.Equal(t, "Grocery", summaries[1].Category)
}

func TestAggregateByCategoryOrderIndependent(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		saleRow(1, "Electronics", 100),
		saleRow(2, "Grocery", 40),
		saleRow(3, "Electronics", 60),
		saleRow(4, "Home", 25),
		saleRow(5, "Grocery", 35),
	}

	want, err := AggregateByCategory(rows)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := append([]warehouse.EnrichedSale(nil), rows...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := AggregateByCategory(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAggregateByCategoryTieBreaksAlphabetically(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		saleRow(1, "Home", 50),
		saleRow(2, "Beauty", 50),
	}

	summaries, err := AggregateByCategory(rows)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Beauty", summaries[0].Category)
	assert.Equal(t, "Home", summaries[1].Category)
}

func TestAggregateByMonthChronological(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		{SaleID: 1, Year: 2024, Month: 2, MonthName: "February", TotalAmount: 10},
		{SaleID: 2, Year: 2023, Month: 12, MonthName: "December", TotalAmount: 20},
		{SaleID: 3, Year: 2024, Month: 1, MonthName: "January", TotalAmount: 30},
		{SaleID: 4, Year: 2024, Month: 1, MonthName: "January", TotalAmount: 5},
	}

	summaries, err := AggregateByMonth(rows)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, 2023, summaries[0].Year)
	assert.Equal(t, 12, summaries[0].Month)
	assert.Equal(t, 1, summaries[1].Month)
	assert.Equal(t, 35.0, summaries[1].TotalAmount)
	assert.Equal(t, 2, summaries[1].SaleCount)
	assert.Equal(t, 2, summaries[2].Month)
}

func TestAggregateByStoreSalesPerArea(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		{SaleID: 1, StoreID: 1, StoreName: "Store A", SurfaceArea: 500, TotalAmount: 1_000_000, NetProfit: 100},
		{SaleID: 2, StoreID: 2, StoreName: "Store B", SurfaceArea: 1000, TotalAmount: 1_000_000, NetProfit: 200},
	}

	summaries, err := AggregateByStore(rows)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := map[int]StoreSummary{}
	for _, s := range summaries {
		byID[s.StoreID] = s
	}
	assert.Equal(t, 2000.0, byID[1].SalesPerArea)
	assert.Equal(t, 1000.0, byID[2].SalesPerArea)

	// equal revenue ties break on ascending store id
	assert.Equal(t, 1, summaries[0].StoreID)

	// ranking by density differs from ranking by raw revenue
	assert.Greater(t, byID[1].SalesPerArea, byID[2].SalesPerArea)
	assert.Equal(t, byID[1].TotalAmount, byID[2].TotalAmount)
}

func TestAggregateEmptyInput(t *testing.T) {
	var empty []warehouse.EnrichedSale

	_, err := AggregateByCategory(empty)
	var eie *EmptyInputError
	require.ErrorAs(t, err, &eie)

	_, err = AggregateByMonth(empty)
	require.ErrorAs(t, err, &eie)

	_, err = AggregateByStore(empty)
	require.ErrorAs(t, err, &eie)
}
