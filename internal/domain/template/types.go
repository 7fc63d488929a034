package template

type PricingType string

const (
	PricingFixed     PricingType = "fixed"
	PricingPerUnit   PricingType = "per_unit"
	PricingRecurring PricingType = "recurring"
)

func (p PricingType) String() string {
	return string(p)
}

func (p PricingType) IsValid() bool {
	switch p {
	case PricingFixed, PricingPerUnit, PricingRecurring:
		return true
	default:
		return false
	}
}

// SelectionMethod governs how the public form captures a quantity,
// not how the price is computed.
type SelectionMethod string

const (
	SelectionCheckbox SelectionMethod = "checkbox"
	SelectionStepper  SelectionMethod = "numeric_stepper"
	SelectionText     SelectionMethod = "text_input"
)

func (s SelectionMethod) String() string {
	return string(s)
}

func (s SelectionMethod) IsValid() bool {
	switch s {
	case SelectionCheckbox, SelectionStepper, SelectionText:
		return true
	default:
		return false
	}
}
