// Package app wires the pipeline stages together for one batch run:
// synthesize the dataset, run the analytics, export the outputs, and feed the
// optional Postgres and Redis adapters.
package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/wissalouarda6/data-warehouse-mining-project/cache"
	"github.com/wissalouarda6/data-warehouse-mining-project/config"
	"github.com/wissalouarda6/data-warehouse-mining-project/database"
	"github.com/wissalouarda6/data-warehouse-mining-project/export"
	"github.com/wissalouarda6/data-warehouse-mining-project/generator"
	"github.com/wissalouarda6/data-warehouse-mining-project/helpers"
)

// App represents the batch pipeline application
type App struct {
	config *config.Config
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	return &App{config: cfg}
}

// Run executes the whole pipeline once, start to finish.
func (a *App) Run(ctx context.Context) error {
	runID := uuid.NewString()
	log.Printf("🏁 Starting mining run %s (seed %d)", runID, a.config.Dataset.Seed)

	// One rng per run, threaded explicitly into every randomized stage.
	rng := rand.New(rand.NewSource(a.config.Dataset.Seed))

	// 1. Synthesize the star schema
	log.Println("🧪 Generating synthetic dataset...")
	ds := generator.New(rng).Generate(
		generator.Sizes{
			Clients:  a.config.Dataset.Clients,
			Products: a.config.Dataset.Products,
			Stores:   a.config.Dataset.Stores,
			Sales:    a.config.Dataset.Sales,
		},
		a.config.Dataset.StartDate,
		a.config.Dataset.EndDate,
	)
	log.Printf("🧪 Dataset ready: %d clients, %d products, %d stores, %d days, %d sales",
		len(ds.Clients), len(ds.Products), len(ds.Stores), len(ds.Days), len(ds.Sales))

	// 2. Analytics
	log.Println("📊 Running analytics pipeline...")
	report, err := RunPipeline(ds, a.config.Analytics, rng)
	if err != nil {
		return err
	}
	report.RunID = runID

	a.printSummary(report)

	// 3. Exports
	log.Println("💾 Writing CSV exports...")
	files, err := export.WriteCSV(a.config.ExportDir, report)
	if err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	log.Printf("💾 Wrote %d CSV file(s) to %s", len(files), a.config.ExportDir)

	log.Println("💾 Writing Excel workbook...")
	workbook, err := export.WriteExcel(a.config.ExportDir, report)
	if err != nil {
		return fmt.Errorf("excel export: %w", err)
	}
	log.Printf("💾 Wrote %s", workbook)

	// 4. Optional Postgres sink
	if a.config.Database.Enabled {
		log.Println("🗄️  Persisting output tables to Postgres...")
		db, err := database.Connect(
			a.config.Database.Host,
			a.config.Database.Port,
			a.config.Database.Name,
			a.config.Database.User,
			a.config.Database.Password,
		)
		if err != nil {
			return fmt.Errorf("database sink: %w", err)
		}
		defer db.Close()

		if err := database.NewResultRepository(db).SaveRun(report); err != nil {
			return fmt.Errorf("database sink: %w", err)
		}
		log.Println("🗄️  Output tables persisted")
	}

	// 5. Optional Redis publish
	if a.config.Redis.Enabled {
		log.Println("📡 Publishing KPI snapshot to Redis...")
		redis := cache.NewRedisClient(a.config.Redis.Host, a.config.Redis.Port, a.config.Redis.Password)
		if redis != nil {
			defer redis.Close()
			if err := redis.PublishRun(ctx, runID, "kpis", report.KPIs, a.config.Redis.TTL); err != nil {
				return fmt.Errorf("redis publish: %w", err)
			}
			if err := redis.PublishRun(ctx, runID, "cluster_sizes", report.Clusters.Sizes, a.config.Redis.TTL); err != nil {
				return fmt.Errorf("redis publish: %w", err)
			}
			log.Println("📡 KPI snapshot published")
		}
	}

	log.Printf("🏁 Mining run %s complete", runID)
	return nil
}

// printSummary logs the headline numbers of the run.
func (a *App) printSummary(report *export.Report) {
	kpis := report.KPIs
	log.Printf("📈 Revenue: %s | Net profit: %s | Avg margin: %.2f%%",
		helpers.FormatAmount(kpis.TotalRevenue),
		helpers.FormatAmount(kpis.TotalNetProfit),
		kpis.AvgMarginRate)
	log.Printf("📈 %d transactions across %d clients | Avg basket: %s",
		kpis.TransactionCount, kpis.ClientCount, helpers.FormatAmount(kpis.AvgBasket))
	if kpis.GrowthLaterYear != 0 {
		log.Printf("📈 Revenue growth %d → %d: %s",
			kpis.GrowthEarlierYear, kpis.GrowthLaterYear, helpers.FormatPercent(kpis.RevenueGrowthPct))
	}
	if len(report.Categories) > 0 {
		top := report.Categories[0]
		log.Printf("🏷️  Top category: %s (%s)", top.Category, helpers.FormatAmount(top.TotalAmount))
	}
	log.Printf("👥 Cluster sizes: %v | Inertia: %.4f", report.Clusters.Sizes, report.Clusters.Inertia)
	log.Printf("🚨 %d anomalous sale(s) flagged", len(report.Anomalies))
}
