package pricing

// SelectionSet maps service ids to customer-chosen quantities. A service
// absent from the map has quantity 0.
type SelectionSet map[string]int

// Service is the view of a catalog line item the calculator needs. The
// template entity implements it; keeping the dependency this way around
// leaves the calculator pure.
type Service interface {
	ServiceID() string
	UnitPrice() Money
	// EffectiveQuantity normalizes a raw requested quantity according to
	// the service's selection method and bounds (checkbox clamps to 0/1,
	// negatives degrade to 0).
	EffectiveQuantity(requested int) int
}

// Calculate returns the quote total for the given catalog and selections.
//
// Pure and infallible: it is re-run on every selection change of a public
// form, so malformed input degrades to a zero contribution instead of
// erroring. Selection entries whose service id is not in the catalog are
// ignored, since the template may have been edited after the form loaded.
// Pricing type (fixed/per_unit/recurring) never changes the arithmetic;
// it only affects display labels.
func Calculate(services []Service, selections SelectionSet) Money {
	var total Money
	for _, svc := range services {
		quantity := svc.EffectiveQuantity(selections[svc.ServiceID()])
		if quantity <= 0 {
			continue
		}
		total = total.Add(svc.UnitPrice().MultiplyQuantity(quantity))
	}
	return total
}
