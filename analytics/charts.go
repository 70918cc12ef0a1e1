package analytics

import (
	"fmt"
	"sort"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// ChartSeries is one labeled data series for a plotting adapter. The core
// only prepares the values; rendering is someone else's problem.
type ChartSeries struct {
	Name   string    `json:"name"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// CategorySeries turns the category summaries into a revenue series, one
// point per category in summary order.
func CategorySeries(summaries []CategorySummary) ChartSeries {
	s := ChartSeries{Name: "revenue_by_category"}
	for _, sum := range summaries {
		s.Labels = append(s.Labels, sum.Category)
		s.Values = append(s.Values, sum.TotalAmount)
	}
	return s
}

// MonthlySeries turns the month summaries into a chronologically ordered
// revenue series labeled "MonthName Year".
func MonthlySeries(summaries []MonthSummary) ChartSeries {
	s := ChartSeries{Name: "revenue_by_month"}
	for _, sum := range summaries {
		s.Labels = append(s.Labels, fmt.Sprintf("%s %d", sum.MonthName, sum.Year))
		s.Values = append(s.Values, sum.TotalAmount)
	}
	return s
}

// StoreSeries turns the store summaries into a revenue series, one point per
// store in summary order.
func StoreSeries(summaries []StoreSummary) ChartSeries {
	s := ChartSeries{Name: "revenue_by_store"}
	for _, sum := range summaries {
		s.Labels = append(s.Labels, sum.StoreName)
		s.Values = append(s.Values, sum.TotalAmount)
	}
	return s
}

// SegmentShareSeries is the client-segment proportion breakdown by distinct
// client count, in percent, labels sorted alphabetically.
func SegmentShareSeries(rows []warehouse.EnrichedSale) ChartSeries {
	segmentClients := make(map[string]map[int]struct{})
	for _, row := range rows {
		clients, ok := segmentClients[row.ClientSegment]
		if !ok {
			clients = make(map[int]struct{})
			segmentClients[row.ClientSegment] = clients
		}
		clients[row.ClientID] = struct{}{}
	}

	total := 0
	segments := make([]string, 0, len(segmentClients))
	for segment, clients := range segmentClients {
		segments = append(segments, segment)
		total += len(clients)
	}
	sort.Strings(segments)

	s := ChartSeries{Name: "clients_by_segment"}
	for _, segment := range segments {
		s.Labels = append(s.Labels, segment)
		s.Values = append(s.Values, float64(len(segmentClients[segment]))/float64(total)*100)
	}
	return s
}
