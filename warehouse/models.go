// Package warehouse defines the star-schema record types of the retail dataset
// and builds the denormalized analytical table from them.
//
// This package includes:
//   - Dimension records (Client, Product, Store, TimeDay) and the Sale fact
//   - A hash join producing one EnrichedSale row per fact
//   - Row-level derived financial metrics (revenue, discount, cost, profit)
//   - Typed errors for validation and referential-integrity failures
//
// Key Concepts:
//   - Star schema: the Sale fact references each dimension by integer key
//   - The join is performed by key lookup maps, never by scanning tables
//   - All records are plain values; nothing here outlives one pipeline run
package warehouse

import "time"

// Segment labels used for clients throughout the pipeline.
const (
	SegmentPremium  = "Premium"
	SegmentStandard = "Standard"
	SegmentEconomy  = "Economy"
)

// Client is the customer dimension record.
type Client struct {
	ID      int
	Name    string
	Age     int // 18-75
	Gender  string
	City    string
	Segment string // Premium / Standard / Economy
}

// Product is the product dimension record. Margin and MarginRate are derived
// from UnitPrice and ProductionCost; use SetPricing to keep them consistent.
type Product struct {
	ID             int
	Name           string
	Category       string
	UnitPrice      float64
	ProductionCost float64
	Margin         float64
	MarginRate     float64 // percent of unit price
}

// SetPricing sets price and cost and recomputes the derived margin fields.
func (p *Product) SetPricing(unitPrice, productionCost float64) {
	p.UnitPrice = unitPrice
	p.ProductionCost = productionCost
	p.Margin = unitPrice - productionCost
	if unitPrice > 0 {
		p.MarginRate = p.Margin / unitPrice * 100
	} else {
		p.MarginRate = 0
	}
}

// Store is the point-of-sale dimension record.
type Store struct {
	ID          int
	Name        string
	City        string
	SurfaceArea float64 // square meters, > 0
}

// TimeDay is one row of the calendar dimension. IDs are sequential and the
// calendar covers a contiguous date range with no gaps.
type TimeDay struct {
	ID        int
	Date      time.Time
	Year      int
	Month     int
	MonthName string
	Day       int
	Weekday   string
}

// Sale is the fact record. All four references must resolve to an existing
// dimension row when the warehouse table is built.
type Sale struct {
	ID          int
	ClientID    int
	ProductID   int
	TimeID      int
	StoreID     int
	Quantity    int     // >= 1
	DiscountPct float64 // one of {0, 5, 10, 15, 20}
}

// EnrichedSale is one row of the denormalized analytical table: a Sale joined
// with its four dimensions plus the derived financial fields. Rows are
// read-only once built.
type EnrichedSale struct {
	SaleID      int
	Quantity    int
	DiscountPct float64

	// Client dimension
	ClientID      int
	ClientName    string
	ClientAge     int
	ClientGender  string
	ClientCity    string
	ClientSegment string

	// Product dimension
	ProductID      int
	ProductName    string
	Category       string
	UnitPrice      float64
	ProductionCost float64
	MarginRate     float64

	// Store dimension
	StoreID     int
	StoreName   string
	StoreCity   string
	SurfaceArea float64

	// Time dimension
	TimeID    int
	Date      time.Time
	Year      int
	Month     int
	MonthName string

	// Derived metrics, see ApplyDerivedMetrics
	PriceBeforeDiscount float64
	DiscountAmount      float64
	TotalAmount         float64
	TotalCost           float64
	NetProfit           float64
}
