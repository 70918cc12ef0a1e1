package warehouse

// ValidateSale checks the base fields of a fact record before it enters the
// warehouse table.
func ValidateSale(s Sale) error {
	if s.Quantity < 1 {
		return NewValidationErrorWithValue("quantity", "must be at least 1", s.Quantity)
	}
	if s.DiscountPct < 0 || s.DiscountPct > 100 {
		return NewValidationErrorWithValue("discount_pct", "must be within [0, 100]", s.DiscountPct)
	}
	return nil
}

// ApplyDerivedMetrics fills in the derived financial fields of a warehouse
// row from its base quantity, unit price, production cost and discount.
// It is a pure function of those base fields, so re-applying it to an
// already-enriched row always yields the same values.
func ApplyDerivedMetrics(row EnrichedSale) EnrichedSale {
	row.PriceBeforeDiscount = float64(row.Quantity) * row.UnitPrice
	row.DiscountAmount = row.PriceBeforeDiscount * row.DiscountPct / 100
	row.TotalAmount = row.PriceBeforeDiscount - row.DiscountAmount
	row.TotalCost = float64(row.Quantity) * row.ProductionCost
	row.NetProfit = row.TotalAmount - row.TotalCost
	return row
}
