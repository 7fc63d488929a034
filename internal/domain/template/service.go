package template

import (
	"errors"
	"strings"

	"lushquote/internal/domain/pricing"
)

var (
	ErrEmptyServiceID      = errors.New("service id is required")
	ErrEmptyServiceName    = errors.New("service name is required")
	ErrInvalidPricingType  = errors.New("invalid pricing type")
	ErrInvalidSelection    = errors.New("invalid selection method")
	ErrNegativePrice       = errors.New("unit price cannot be negative")
	ErrInvalidQuantitySpan = errors.New("min quantity cannot exceed max quantity")
)

// Service is one priced line item of a template. Order within the template
// is display order and is preserved by the services slice.
type Service struct {
	id              string
	name            string
	pricingType     PricingType
	unitPrice       pricing.Money
	selectionMethod SelectionMethod
	unitLabel       *string
	frequencyLabel  *string
	minQuantity     *int
	maxQuantity     *int
	defaultQuantity *int
}

type ServiceSpec struct {
	ID              string
	Name            string
	PricingType     string
	UnitPriceCents  int64
	SelectionMethod string
	UnitLabel       *string
	FrequencyLabel  *string
	MinQuantity     *int
	MaxQuantity     *int
	DefaultQuantity *int
}

func NewService(spec ServiceSpec) (Service, error) {
	if strings.TrimSpace(spec.ID) == "" {
		return Service{}, ErrEmptyServiceID
	}
	if strings.TrimSpace(spec.Name) == "" {
		return Service{}, ErrEmptyServiceName
	}

	pricingType := PricingType(spec.PricingType)
	if !pricingType.IsValid() {
		return Service{}, ErrInvalidPricingType
	}

	selectionMethod := SelectionMethod(spec.SelectionMethod)
	if spec.SelectionMethod == "" {
		// Legacy templates predate selection methods; they rendered checkboxes.
		selectionMethod = SelectionCheckbox
	}
	if !selectionMethod.IsValid() {
		return Service{}, ErrInvalidSelection
	}

	unitPrice, err := pricing.NewNonNegativeMoney(spec.UnitPriceCents)
	if err != nil {
		return Service{}, ErrNegativePrice
	}

	if spec.MinQuantity != nil && spec.MaxQuantity != nil && *spec.MinQuantity > *spec.MaxQuantity {
		return Service{}, ErrInvalidQuantitySpan
	}

	svc := Service{
		id:              spec.ID,
		name:            spec.Name,
		pricingType:     pricingType,
		unitPrice:       unitPrice,
		selectionMethod: selectionMethod,
		minQuantity:     spec.MinQuantity,
		maxQuantity:     spec.MaxQuantity,
		defaultQuantity: spec.DefaultQuantity,
	}

	// Labels only make sense for the pricing types that display them.
	if pricingType == PricingPerUnit {
		svc.unitLabel = spec.UnitLabel
	}
	if pricingType == PricingRecurring {
		svc.frequencyLabel = spec.FrequencyLabel
	}

	return svc, nil
}

func (s Service) ServiceID() string                { return s.id }
func (s Service) Name() string                     { return s.name }
func (s Service) PricingType() PricingType         { return s.pricingType }
func (s Service) UnitPrice() pricing.Money         { return s.unitPrice }
func (s Service) SelectionMethod() SelectionMethod { return s.selectionMethod }
func (s Service) UnitLabel() *string               { return s.unitLabel }
func (s Service) FrequencyLabel() *string          { return s.frequencyLabel }
func (s Service) MinQuantity() *int                { return s.minQuantity }
func (s Service) MaxQuantity() *int                { return s.maxQuantity }
func (s Service) DefaultQuantity() *int            { return s.defaultQuantity }

// EffectiveQuantity normalizes a raw requested quantity. Negative input
// degrades to 0 (never subtracts from a total), checkbox services are
// binary, and stepper/text quantities are clamped into the configured
// bounds when a positive quantity was requested.
func (s Service) EffectiveQuantity(requested int) int {
	if requested <= 0 {
		return 0
	}

	if s.selectionMethod == SelectionCheckbox {
		return 1
	}

	quantity := requested
	if s.minQuantity != nil && quantity < *s.minQuantity {
		quantity = *s.minQuantity
	}
	if s.maxQuantity != nil && quantity > *s.maxQuantity {
		quantity = *s.maxQuantity
	}
	if quantity < 0 {
		quantity = 0
	}
	return quantity
}
