package database

import "time"

// CategorySummaryRow persists one category summary of one run.
type CategorySummaryRow struct {
	ID          uint    `gorm:"primaryKey"`
	RunID       string  `gorm:"index;not null"`
	Category    string  `gorm:"not null"`
	TotalAmount float64 `gorm:"not null"`
	SaleCount   int     `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for CategorySummaryRow
func (CategorySummaryRow) TableName() string { return "category_summaries" }

// MonthSummaryRow persists one monthly summary of one run.
type MonthSummaryRow struct {
	ID          uint    `gorm:"primaryKey"`
	RunID       string  `gorm:"index;not null"`
	Year        int     `gorm:"not null"`
	Month       int     `gorm:"not null"`
	MonthName   string  `gorm:"not null"`
	TotalAmount float64 `gorm:"not null"`
	SaleCount   int     `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for MonthSummaryRow
func (MonthSummaryRow) TableName() string { return "month_summaries" }

// StoreSummaryRow persists one store summary of one run.
type StoreSummaryRow struct {
	ID           uint    `gorm:"primaryKey"`
	RunID        string  `gorm:"index;not null"`
	StoreID      int     `gorm:"not null"`
	StoreName    string  `gorm:"not null"`
	City         string  `gorm:"not null"`
	TotalAmount  float64 `gorm:"not null"`
	NetProfit    float64 `gorm:"not null"`
	SaleCount    int     `gorm:"not null"`
	SurfaceArea  float64 `gorm:"not null"`
	SalesPerArea float64 `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName returns the table name for StoreSummaryRow
func (StoreSummaryRow) TableName() string { return "store_summaries" }

// ClientRFMRow persists one client RFM score of one run.
type ClientRFMRow struct {
	ID          uint    `gorm:"primaryKey"`
	RunID       string  `gorm:"index;not null"`
	ClientID    int     `gorm:"not null"`
	ClientName  string  `gorm:"not null"`
	Segment     string  `gorm:"not null"`
	RecencyDays int     `gorm:"not null"`
	Frequency   int     `gorm:"not null"`
	Monetary    float64 `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for ClientRFMRow
func (ClientRFMRow) TableName() string { return "client_rfm" }

// ClusterAssignmentRow persists one client-to-cluster assignment of one run.
type ClusterAssignmentRow struct {
	ID        uint   `gorm:"primaryKey"`
	RunID     string `gorm:"index;not null"`
	ClientID  int    `gorm:"not null"`
	Cluster   int    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName returns the table name for ClusterAssignmentRow
func (ClusterAssignmentRow) TableName() string { return "cluster_assignments" }

// ClusterCentroidRow persists one centroid (standardized feature space) of
// one run.
type ClusterCentroidRow struct {
	ID               uint    `gorm:"primaryKey"`
	RunID            string  `gorm:"index;not null"`
	Cluster          int     `gorm:"not null"`
	Size             int     `gorm:"not null"`
	Age              float64 `gorm:"not null"`
	TotalPurchases   float64 `gorm:"not null"`
	TransactionCount float64 `gorm:"not null"`
	AverageBasket    float64 `gorm:"not null"`
	CreatedAt        time.Time
}

// TableName returns the table name for ClusterCentroidRow
func (ClusterCentroidRow) TableName() string { return "cluster_centroids" }

// AnomalyRow persists one flagged sale of one run.
type AnomalyRow struct {
	ID          uint    `gorm:"primaryKey"`
	RunID       string  `gorm:"index;not null"`
	SaleID      int     `gorm:"not null"`
	TotalAmount float64 `gorm:"not null"`
	ZScore      float64 `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for AnomalyRow
func (AnomalyRow) TableName() string { return "anomalies" }

// KPISnapshotRow persists the headline scalars of one run.
type KPISnapshotRow struct {
	ID               uint    `gorm:"primaryKey"`
	RunID            string  `gorm:"uniqueIndex;not null"`
	TotalRevenue     float64 `gorm:"not null"`
	TotalNetProfit   float64 `gorm:"not null"`
	AvgMarginRate    float64 `gorm:"not null"`
	TransactionCount int     `gorm:"not null"`
	ClientCount      int     `gorm:"not null"`
	AvgBasket        float64 `gorm:"not null"`
	RevenueGrowthPct float64 `gorm:"not null"`
	CreatedAt        time.Time
}

// TableName returns the table name for KPISnapshotRow
func (KPISnapshotRow) TableName() string { return "kpi_snapshots" }
