package analytics

import (
	"math"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// DefaultAnomalyThreshold is the |z-score| above which a sale is flagged.
const DefaultAnomalyThreshold = 3.0

// AnomalyFlag marks one sale whose total amount is a statistical outlier.
type AnomalyFlag struct {
	SaleID      int     `json:"sale_id"`
	TotalAmount float64 `json:"total_amount"`
	ZScore      float64 `json:"z_score"`
}

// DetectAnomalies z-scores total_amount against the whole population and
// flags every sale with |z| above the threshold. With zero variance no sale
// can be an outlier, so the result is empty. Single pass, no refinement.
func DetectAnomalies(rows []warehouse.EnrichedSale, threshold float64) ([]AnomalyFlag, error) {
	if len(rows) == 0 {
		return nil, NewEmptyInputError("anomaly detection")
	}
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}

	n := float64(len(rows))

	mean := 0.0
	for _, row := range rows {
		mean += row.TotalAmount
	}
	mean /= n

	variance := 0.0
	for _, row := range rows {
		diff := row.TotalAmount - mean
		variance += diff * diff
	}
	std := math.Sqrt(variance / n)
	if std == 0 {
		return nil, nil
	}

	var flags []AnomalyFlag
	for _, row := range rows {
		z := (row.TotalAmount - mean) / std
		if math.Abs(z) > threshold {
			flags = append(flags, AnomalyFlag{
				SaleID:      row.SaleID,
				TotalAmount: row.TotalAmount,
				ZScore:      z,
			})
		}
	}

	return flags, nil
}
