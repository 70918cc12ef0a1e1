package database

import (
	"github.com/wissalouarda6/data-warehouse-mining-project/analytics"
	"github.com/wissalouarda6/data-warehouse-mining-project/export"
)

// ResultRepository writes the output tables of one run.
type ResultRepository struct {
	db *Database
}

// NewResultRepository creates a result repository over an open connection.
func NewResultRepository(db *Database) *ResultRepository {
	return &ResultRepository{db: db}
}

// SaveRun persists every table of the report under its run id, one batch
// insert per table.
func (r *ResultRepository) SaveRun(report *export.Report) error {
	if err := r.saveCategories(report.RunID, report.Categories); err != nil {
		return err
	}
	if err := r.saveMonths(report.RunID, report.Months); err != nil {
		return err
	}
	if err := r.saveStores(report.RunID, report.Stores); err != nil {
		return err
	}
	if err := r.saveRFM(report.RunID, report.RFM); err != nil {
		return err
	}
	if report.Clusters != nil {
		if err := r.saveClusters(report.RunID, report.Clusters); err != nil {
			return err
		}
	}
	if err := r.saveAnomalies(report.RunID, report.Anomalies); err != nil {
		return err
	}
	if report.KPIs != nil {
		if err := r.saveKPIs(report.RunID, report.KPIs); err != nil {
			return err
		}
	}
	return nil
}

func (r *ResultRepository) saveCategories(runID string, summaries []analytics.CategorySummary) error {
	if len(summaries) == 0 {
		return nil
	}
	rows := make([]CategorySummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = CategorySummaryRow{
			RunID:       runID,
			Category:    s.Category,
			TotalAmount: s.TotalAmount,
			SaleCount:   s.SaleCount,
		}
	}
	return WrapDBError("save category summaries", r.db.db.Create(&rows).Error)
}

func (r *ResultRepository) saveMonths(runID string, summaries []analytics.MonthSummary) error {
	if len(summaries) == 0 {
		return nil
	}
	rows := make([]MonthSummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = MonthSummaryRow{
			RunID:       runID,
			Year:        s.Year,
			Month:       s.Month,
			MonthName:   s.MonthName,
			TotalAmount: s.TotalAmount,
			SaleCount:   s.SaleCount,
		}
	}
	return WrapDBError("save month summaries", r.db.db.Create(&rows).Error)
}

func (r *ResultRepository) saveStores(runID string, summaries []analytics.StoreSummary) error {
	if len(summaries) == 0 {
		return nil
	}
	rows := make([]StoreSummaryRow, len(summaries))
	for i, s := range summaries {
		rows[i] = StoreSummaryRow{
			RunID:        runID,
			StoreID:      s.StoreID,
			StoreName:    s.StoreName,
			City:         s.City,
			TotalAmount:  s.TotalAmount,
			NetProfit:    s.NetProfit,
			SaleCount:    s.SaleCount,
			SurfaceArea:  s.SurfaceArea,
			SalesPerArea: s.SalesPerArea,
		}
	}
	return WrapDBError("save store summaries", r.db.db.Create(&rows).Error)
}

func (r *ResultRepository) saveRFM(runID string, rfm []analytics.ClientRFM) error {
	if len(rfm) == 0 {
		return nil
	}
	rows := make([]ClientRFMRow, len(rfm))
	for i, s := range rfm {
		rows[i] = ClientRFMRow{
			RunID:       runID,
			ClientID:    s.ClientID,
			ClientName:  s.ClientName,
			Segment:     s.Segment,
			RecencyDays: s.RecencyDays,
			Frequency:   s.Frequency,
			Monetary:    s.Monetary,
		}
	}
	return WrapDBError("save client rfm", r.db.db.Create(&rows).Error)
}

func (r *ResultRepository) saveClusters(runID string, result *analytics.ClusteringResult) error {
	assignments := make([]ClusterAssignmentRow, len(result.Assignments))
	for i, a := range result.Assignments {
		assignments[i] = ClusterAssignmentRow{
			RunID:    runID,
			ClientID: a.ClientID,
			Cluster:  a.Cluster,
		}
	}
	if err := WrapDBError("save cluster assignments", r.db.db.Create(&assignments).Error); err != nil {
		return err
	}

	centroids := make([]ClusterCentroidRow, len(result.Centroids))
	for c, centroid := range result.Centroids {
		centroids[c] = ClusterCentroidRow{
			RunID:            runID,
			Cluster:          c,
			Size:             result.Sizes[c],
			Age:              centroid[0],
			TotalPurchases:   centroid[1],
			TransactionCount: centroid[2],
			AverageBasket:    centroid[3],
		}
	}
	return WrapDBError("save cluster centroids", r.db.db.Create(&centroids).Error)
}

func (r *ResultRepository) saveAnomalies(runID string, flags []analytics.AnomalyFlag) error {
	if len(flags) == 0 {
		return nil
	}
	rows := make([]AnomalyRow, len(flags))
	for i, f := range flags {
		rows[i] = AnomalyRow{
			RunID:       runID,
			SaleID:      f.SaleID,
			TotalAmount: f.TotalAmount,
			ZScore:      f.ZScore,
		}
	}
	return WrapDBError("save anomalies", r.db.db.Create(&rows).Error)
}

func (r *ResultRepository) saveKPIs(runID string, kpis *analytics.KPIReport) error {
	row := KPISnapshotRow{
		RunID:            runID,
		TotalRevenue:     kpis.TotalRevenue,
		TotalNetProfit:   kpis.TotalNetProfit,
		AvgMarginRate:    kpis.AvgMarginRate,
		TransactionCount: kpis.TransactionCount,
		ClientCount:      kpis.ClientCount,
		AvgBasket:        kpis.AvgBasket,
		RevenueGrowthPct: kpis.RevenueGrowthPct,
	}
	return WrapDBError("save kpi snapshot", r.db.db.Create(&row).Error)
}
