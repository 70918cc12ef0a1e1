package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

func rfmRow(clientID int, date time.Time, amount float64) warehouse.EnrichedSale {
	return warehouse.EnrichedSale{
		ClientID:      clientID,
		ClientName:    "Client",
		ClientSegment: warehouse.SegmentStandard,
		Date:          date,
		TotalAmount:   amount,
	}
}

func TestBuildRFMSingleClient(t *testing.T) {
	// Scenario: 3 sales for one client, amounts 100/200/300 on distinct dates
	rows := []warehouse.EnrichedSale{
		rfmRow(1, day(2024, 6, 1), 100),
		rfmRow(1, day(2024, 6, 10), 200),
		rfmRow(1, day(2024, 6, 20), 300),
	}
	reference := day(2024, 6, 30)

	rfm, err := BuildRFM(rows, reference)
	require.NoError(t, err)
	require.Len(t, rfm, 1)

	assert.Equal(t, 3, rfm[0].Frequency)
	assert.Equal(t, 600.0, rfm[0].Monetary)
	assert.Equal(t, 10, rfm[0].RecencyDays) // June 20 -> June 30
}

func TestBuildRFMDefaultReferenceIsMaxDate(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		rfmRow(1, day(2024, 1, 5), 50),
		rfmRow(2, day(2024, 2, 15), 75),
	}

	rfm, err := BuildRFM(rows, time.Time{})
	require.NoError(t, err)
	require.Len(t, rfm, 2)

	for _, c := range rfm {
		assert.GreaterOrEqual(t, c.RecencyDays, 0)
	}

	byID := map[int]ClientRFM{}
	for _, c := range rfm {
		byID[c.ClientID] = c
	}
	assert.Equal(t, 0, byID[2].RecencyDays)  // owns the max date
	assert.Equal(t, 41, byID[1].RecencyDays) // Jan 5 -> Feb 15
}

func TestBuildRFMSortedByMonetary(t *testing.T) {
	rows := []warehouse.EnrichedSale{
		rfmRow(1, day(2024, 3, 1), 10),
		rfmRow(2, day(2024, 3, 1), 500),
		rfmRow(3, day(2024, 3, 1), 90),
	}

	rfm, err := BuildRFM(rows, time.Time{})
	require.NoError(t, err)
	require.Len(t, rfm, 3)
	assert.Equal(t, 2, rfm[0].ClientID)
	assert.Equal(t, 3, rfm[1].ClientID)
	assert.Equal(t, 1, rfm[2].ClientID)
}

func TestBuildRFMEmptyInput(t *testing.T) {
	_, err := BuildRFM(nil, time.Time{})
	var eie *EmptyInputError
	require.ErrorAs(t, err, &eie)
}
