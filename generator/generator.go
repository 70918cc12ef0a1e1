// Package generator synthesizes the star-schema retail dataset the pipeline
// runs on. All randomness flows through one explicitly passed rand.Rand, so a
// fixed seed reproduces the dataset bit for bit.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/wissalouarda6/data-warehouse-mining-project/warehouse"
)

// Sizes fixes how many records of each kind to synthesize.
type Sizes struct {
	Clients  int
	Products int
	Stores   int
	Sales    int
}

// Dataset bundles the generated dimension and fact collections.
type Dataset struct {
	Clients  []warehouse.Client
	Products []warehouse.Product
	Stores   []warehouse.Store
	Days     []warehouse.TimeDay
	Sales    []warehouse.Sale
}

var (
	firstNames = []string{"Amina", "Youssef", "Sara", "Karim", "Leila", "Omar", "Nadia", "Hassan", "Imane", "Mehdi", "Salma", "Rachid", "Khadija", "Anas", "Zineb", "Hamza"}
	lastNames  = []string{"Alaoui", "Bennani", "Cherkaoui", "El Fassi", "Idrissi", "Lahlou", "Mansouri", "Ouazzani", "Rahmani", "Saidi", "Tazi", "Ziani"}
	cities     = []string{"Casablanca", "Rabat", "Marrakech", "Fes", "Tangier", "Agadir", "Oujda"}
	genders    = []string{"F", "M"}
	segments   = []string{warehouse.SegmentPremium, warehouse.SegmentStandard, warehouse.SegmentEconomy}
	categories = []string{"Electronics", "Clothing", "Grocery", "Home", "Beauty"}
	discounts  = []float64{0, 5, 10, 15, 20}
)

// Generator synthesizes records from a seeded random source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator around an explicit random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds the full dataset: dimensions first, then facts referencing
// them. The calendar spans [start, end] with one row per day.
func (g *Generator) Generate(sizes Sizes, start, end time.Time) Dataset {
	ds := Dataset{
		Clients:  g.Clients(sizes.Clients),
		Products: g.Products(sizes.Products),
		Stores:   g.Stores(sizes.Stores),
		Days:     Calendar(start, end),
	}
	ds.Sales = g.Sales(sizes.Sales, ds)
	return ds
}

// Clients generates n client dimension rows with ids 1..n.
func (g *Generator) Clients(n int) []warehouse.Client {
	clients := make([]warehouse.Client, n)
	for i := range clients {
		clients[i] = warehouse.Client{
			ID:      i + 1,
			Name:    fmt.Sprintf("%s %s", g.pick(firstNames), g.pick(lastNames)),
			Age:     18 + g.rng.Intn(58), // 18-75
			Gender:  g.pick(genders),
			City:    g.pick(cities),
			Segment: g.pick(segments),
		}
	}
	return clients
}

// Products generates n product dimension rows with ids 1..n. Unit price is
// drawn in [10, 510) and production cost at 40-80% of it, so margins stay
// positive but vary.
func (g *Generator) Products(n int) []warehouse.Product {
	products := make([]warehouse.Product, n)
	for i := range products {
		category := g.pick(categories)
		p := warehouse.Product{
			ID:       i + 1,
			Name:     fmt.Sprintf("%s Item %d", category, i+1),
			Category: category,
		}
		price := 10 + g.rng.Float64()*500
		cost := price * (0.4 + g.rng.Float64()*0.4)
		p.SetPricing(price, cost)
		products[i] = p
	}
	return products
}

// Stores generates n store dimension rows with ids 1..n and surface areas in
// [200, 2200) square meters.
func (g *Generator) Stores(n int) []warehouse.Store {
	stores := make([]warehouse.Store, n)
	for i := range stores {
		stores[i] = warehouse.Store{
			ID:          i + 1,
			Name:        fmt.Sprintf("Store %d", i+1),
			City:        g.pick(cities),
			SurfaceArea: 200 + g.rng.Float64()*2000,
		}
	}
	return stores
}

// Calendar builds the contiguous time dimension covering [start, end], one
// row per day, ids sequential from 1. It is deterministic and takes no
// randomness.
func Calendar(start, end time.Time) []warehouse.TimeDay {
	var days []warehouse.TimeDay
	id := 1
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, warehouse.TimeDay{
			ID:        id,
			Date:      d,
			Year:      d.Year(),
			Month:     int(d.Month()),
			MonthName: d.Month().String(),
			Day:       d.Day(),
			Weekday:   d.Weekday().String(),
		})
		id++
	}
	return days
}

// Sales generates n fact rows with ids 1..n, each referencing existing
// dimension rows.
func (g *Generator) Sales(n int, ds Dataset) []warehouse.Sale {
	sales := make([]warehouse.Sale, n)
	for i := range sales {
		sales[i] = warehouse.Sale{
			ID:          i + 1,
			ClientID:    ds.Clients[g.rng.Intn(len(ds.Clients))].ID,
			ProductID:   ds.Products[g.rng.Intn(len(ds.Products))].ID,
			TimeID:      ds.Days[g.rng.Intn(len(ds.Days))].ID,
			StoreID:     ds.Stores[g.rng.Intn(len(ds.Stores))].ID,
			Quantity:    1 + g.rng.Intn(10),
			DiscountPct: discounts[g.rng.Intn(len(discounts))],
		}
	}
	return sales
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}
