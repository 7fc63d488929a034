package converter

import (
	"encoding/json"

	"lushquote/internal/domain/template"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/queries"
)

// ServiceRecord is the jsonb shape of one template service. The services
// column stores the full ordered array and is replaced wholesale on update.
type ServiceRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PricingType     string  `json:"pricing_type"`
	UnitPriceCents  int64   `json:"unit_price_cents"`
	SelectionMethod string  `json:"selection_method"`
	UnitLabel       *string `json:"unit_label,omitempty"`
	FrequencyLabel  *string `json:"frequency_label,omitempty"`
	MinQuantity     *int    `json:"min_quantity,omitempty"`
	MaxQuantity     *int    `json:"max_quantity,omitempty"`
	DefaultQuantity *int    `json:"default_quantity,omitempty"`
}

func ServicesToJSON(services []template.Service) ([]byte, error) {
	records := make([]ServiceRecord, len(services))
	for i, svc := range services {
		records[i] = ServiceRecord{
			ID:              svc.ServiceID(),
			Name:            svc.Name(),
			PricingType:     svc.PricingType().String(),
			UnitPriceCents:  svc.UnitPrice().Cents(),
			SelectionMethod: svc.SelectionMethod().String(),
			UnitLabel:       svc.UnitLabel(),
			FrequencyLabel:  svc.FrequencyLabel(),
			MinQuantity:     svc.MinQuantity(),
			MaxQuantity:     svc.MaxQuantity(),
			DefaultQuantity: svc.DefaultQuantity(),
		}
	}
	return json.Marshal(records)
}

func ServiceViewsFromJSON(raw []byte) ([]queries.ServiceView, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []ServiceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errs.Wrap(err, "failed to decode services column")
	}

	views := make([]queries.ServiceView, len(records))
	for i, r := range records {
		views[i] = queries.ServiceView{
			ID:              r.ID,
			Name:            r.Name,
			PricingType:     r.PricingType,
			UnitPriceCents:  r.UnitPriceCents,
			SelectionMethod: r.SelectionMethod,
			UnitLabel:       r.UnitLabel,
			FrequencyLabel:  r.FrequencyLabel,
			MinQuantity:     r.MinQuantity,
			MaxQuantity:     r.MaxQuantity,
			DefaultQuantity: r.DefaultQuantity,
		}
	}
	return views, nil
}

func DomainServicesFromJSON(raw []byte) ([]template.Service, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var records []ServiceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errs.Wrap(err, "failed to decode services column")
	}

	services := make([]template.Service, 0, len(records))
	for _, r := range records {
		svc, err := template.NewService(template.ServiceSpec{
			ID:              r.ID,
			Name:            r.Name,
			PricingType:     r.PricingType,
			UnitPriceCents:  r.UnitPriceCents,
			SelectionMethod: r.SelectionMethod,
			UnitLabel:       r.UnitLabel,
			FrequencyLabel:  r.FrequencyLabel,
			MinQuantity:     r.MinQuantity,
			MaxQuantity:     r.MaxQuantity,
			DefaultQuantity: r.DefaultQuantity,
		})
		if err != nil {
			return nil, errs.Wrap(err, "stored service failed validation")
		}
		services = append(services, svc)
	}
	return services, nil
}
