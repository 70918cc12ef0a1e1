package warehouse

import "log"

// JoinPolicy controls what happens when a fact row references a dimension key
// that does not exist.
type JoinPolicy string

const (
	// JoinPolicyFail aborts the build on the first dangling reference.
	JoinPolicyFail JoinPolicy = "fail"
	// JoinPolicyDrop silently skips fact rows with dangling references,
	// matching a plain inner join.
	JoinPolicyDrop JoinPolicy = "drop"
)

// Builder joins the star schema into the denormalized warehouse table.
type Builder struct {
	policy JoinPolicy
}

// NewBuilder creates a warehouse builder with the given join policy.
func NewBuilder(policy JoinPolicy) *Builder {
	if policy != JoinPolicyDrop {
		policy = JoinPolicyFail
	}
	return &Builder{policy: policy}
}

// Build validates every fact row, joins it with its four dimensions by key
// lookup and computes the derived financial metrics. Under JoinPolicyFail the
// output has exactly one row per input sale; under JoinPolicyDrop unmatched
// sales are skipped and counted in the log.
func (b *Builder) Build(clients []Client, products []Product, stores []Store, days []TimeDay, sales []Sale) ([]EnrichedSale, error) {
	clientByID := make(map[int]Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}
	productByID := make(map[int]Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	storeByID := make(map[int]Store, len(stores))
	for _, s := range stores {
		storeByID[s.ID] = s
	}
	dayByID := make(map[int]TimeDay, len(days))
	for _, d := range days {
		dayByID[d.ID] = d
	}

	rows := make([]EnrichedSale, 0, len(sales))
	dropped := 0

	for _, sale := range sales {
		if err := ValidateSale(sale); err != nil {
			return nil, err
		}

		client, ok := clientByID[sale.ClientID]
		if !ok {
			if b.policy == JoinPolicyDrop {
				dropped++
				continue
			}
			return nil, NewMissingReferenceError("client", sale.ID, sale.ClientID)
		}
		product, ok := productByID[sale.ProductID]
		if !ok {
			if b.policy == JoinPolicyDrop {
				dropped++
				continue
			}
			return nil, NewMissingReferenceError("product", sale.ID, sale.ProductID)
		}
		store, ok := storeByID[sale.StoreID]
		if !ok {
			if b.policy == JoinPolicyDrop {
				dropped++
				continue
			}
			return nil, NewMissingReferenceError("store", sale.ID, sale.StoreID)
		}
		day, ok := dayByID[sale.TimeID]
		if !ok {
			if b.policy == JoinPolicyDrop {
				dropped++
				continue
			}
			return nil, NewMissingReferenceError("time", sale.ID, sale.TimeID)
		}

		row := EnrichedSale{
			SaleID:      sale.ID,
			Quantity:    sale.Quantity,
			DiscountPct: sale.DiscountPct,

			ClientID:      client.ID,
			ClientName:    client.Name,
			ClientAge:     client.Age,
			ClientGender:  client.Gender,
			ClientCity:    client.City,
			ClientSegment: client.Segment,

			ProductID:      product.ID,
			ProductName:    product.Name,
			Category:       product.Category,
			UnitPrice:      product.UnitPrice,
			ProductionCost: product.ProductionCost,
			MarginRate:     product.MarginRate,

			StoreID:     store.ID,
			StoreName:   store.Name,
			StoreCity:   store.City,
			SurfaceArea: store.SurfaceArea,

			TimeID:    day.ID,
			Date:      day.Date,
			Year:      day.Year,
			Month:     day.Month,
			MonthName: day.MonthName,
		}

		rows = append(rows, ApplyDerivedMetrics(row))
	}

	if dropped > 0 {
		log.Printf("⚠️  Warehouse build dropped %d sale(s) with dangling dimension keys", dropped)
	}

	return rows, nil
}
