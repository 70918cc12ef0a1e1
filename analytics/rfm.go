package analytics

import (
	"sort"
	"time"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// ClientRFM holds the recency/frequency/monetary score of one client,
// reduced from that client's observed sales.
type ClientRFM struct {
	ClientID    int     `json:"client_id"`
	ClientName  string  `json:"client_name"`
	Segment     string  `json:"segment"`
	RecencyDays int     `json:"recency_days"`
	Frequency   int     `json:"frequency"`
	Monetary    float64 `json:"monetary"`
}

// BuildRFM reduces the warehouse table into one ClientRFM per client seen in
// the input. recency is the whole number of days between the client's most
// recent sale and the reference date; a zero reference defaults to the
// maximum sale date in the input, so recency is always >= 0. Clients with no
// sales do not appear. Output is sorted by monetary descending, client id
// ascending on ties.
func BuildRFM(rows []warehouse.EnrichedSale, reference time.Time) ([]ClientRFM, error) {
	if len(rows) == 0 {
		return nil, NewEmptyInputError("rfm")
	}

	if reference.IsZero() {
		for _, row := range rows {
			if row.Date.After(reference) {
				reference = row.Date
			}
		}
	}

	type rfmAccumulator struct {
		name     string
		segment  string
		lastSale time.Time
		count    int
		monetary float64
	}

	acc := make(map[int]*rfmAccumulator)
	for _, row := range rows {
		a, ok := acc[row.ClientID]
		if !ok {
			a = &rfmAccumulator{name: row.ClientName, segment: row.ClientSegment}
			acc[row.ClientID] = a
		}
		if row.Date.After(a.lastSale) {
			a.lastSale = row.Date
		}
		a.count++
		a.monetary += row.TotalAmount
	}

	result := make([]ClientRFM, 0, len(acc))
	for clientID, a := range acc {
		result = append(result, ClientRFM{
			ClientID:    clientID,
			ClientName:  a.name,
			Segment:     a.segment,
			RecencyDays: int(reference.Sub(a.lastSale).Hours() / 24),
			Frequency:   a.count,
			Monetary:    a.monetary,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Monetary != result[j].Monetary {
			return result[i].Monetary > result[j].Monetary
		}
		return result[i].ClientID < result[j].ClientID
	})

	return result, nil
}
