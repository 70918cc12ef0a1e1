// Package database is the optional Postgres sink for the pipeline outputs.
//
// The pipeline itself runs entirely in memory; this package only persists the
// finished output tables (summaries, RFM, clusters, anomalies, KPI snapshot)
// so dashboards can query past runs. Rows are keyed by the run id, so every
// run appends a fresh, self-contained set.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the GORM database connection.
type Database struct {
	db *gorm.DB
}

// DB returns the underlying GORM database instance for direct access when needed.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Connect establishes database connection using GORM and migrates the output
// tables.
func Connect(host, port, dbname, user, password string) (*Database, error) {
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		host, port, dbname, user, password)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent logging for production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&CategorySummaryRow{},
		&MonthSummaryRow{},
		&StoreSummaryRow{},
		&ClientRFMRow{},
		&ClusterAssignmentRow{},
		&ClusterCentroidRow{},
		&AnomalyRow{},
		&KPISnapshotRow{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate output tables: %w", err)
	}

	return &Database{db: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
