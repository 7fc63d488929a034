package request

import (
	"lushquote/internal/domain/template"
)

type ServiceRequest struct {
	ID              string  `json:"id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	PricingType     string  `json:"pricing_type" binding:"required"`
	UnitPriceCents  int64   `json:"unit_price_cents"`
	SelectionMethod string  `json:"selection_method"`
	UnitLabel       *string `json:"unit_label,omitempty"`
	FrequencyLabel  *string `json:"frequency_label,omitempty"`
	MinQuantity     *int    `json:"min_quantity,omitempty"`
	MaxQuantity     *int    `json:"max_quantity,omitempty"`
	DefaultQuantity *int    `json:"default_quantity,omitempty"`
}

type TemplateRequest struct {
	BusinessName        string           `json:"business_name" binding:"required"`
	Description         string           `json:"description"`
	Slug                string           `json:"slug"`
	Services            []ServiceRequest `json:"services" binding:"required"`
	PrimaryColor        string           `json:"primary_color"`
	FooterEnabled       bool             `json:"footer_enabled"`
	FooterText          string           `json:"footer_text"`
	RequestDateEnabled  bool             `json:"request_date_enabled"`
	RequestDateOptional bool             `json:"request_date_optional"`
	RequestTimeEnabled  bool             `json:"request_time_enabled"`
	RequestTimeOptional bool             `json:"request_time_optional"`
	IsActive            *bool            `json:"is_active,omitempty"`
}

// ToSpec maps the payload onto the domain spec. A missing is_active
// defaults to true so new templates are immediately reachable.
func (r TemplateRequest) ToSpec() template.Spec {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	services := make([]template.ServiceSpec, len(r.Services))
	for i, svc := range r.Services {
		services[i] = template.ServiceSpec{
			ID:              svc.ID,
			Name:            svc.Name,
			PricingType:     svc.PricingType,
			UnitPriceCents:  svc.UnitPriceCents,
			SelectionMethod: svc.SelectionMethod,
			UnitLabel:       svc.UnitLabel,
			FrequencyLabel:  svc.FrequencyLabel,
			MinQuantity:     svc.MinQuantity,
			MaxQuantity:     svc.MaxQuantity,
			DefaultQuantity: svc.DefaultQuantity,
		}
	}

	return template.Spec{
		BusinessName:        r.BusinessName,
		Description:         r.Description,
		Slug:                r.Slug,
		Services:            services,
		PrimaryColor:        r.PrimaryColor,
		FooterEnabled:       r.FooterEnabled,
		FooterText:          r.FooterText,
		RequestDateEnabled:  r.RequestDateEnabled,
		RequestDateOptional: r.RequestDateOptional,
		RequestTimeEnabled:  r.RequestTimeEnabled,
		RequestTimeOptional: r.RequestTimeOptional,
		IsActive:            isActive,
	}
}
