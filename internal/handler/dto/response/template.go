package response

import (
	"time"

	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
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

type TemplateResponse struct {
	ID                  uuid.UUID         `json:"id"`
	BusinessName        string            `json:"business_name"`
	Description         string            `json:"description"`
	Slug                string            `json:"slug"`
	Services            []ServiceResponse `json:"services"`
	PrimaryColor        string            `json:"primary_color"`
	FooterEnabled       bool              `json:"footer_enabled"`
	FooterText          string            `json:"footer_text"`
	RequestDateEnabled  bool              `json:"request_date_enabled"`
	RequestDateOptional bool              `json:"request_date_optional"`
	RequestTimeEnabled  bool              `json:"request_time_enabled"`
	RequestTimeOptional bool              `json:"request_time_optional"`
	IsActive            bool              `json:"is_active"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type PublicTemplateResponse struct {
	TemplateID          uuid.UUID         `json:"template_id"`
	BusinessName        string            `json:"business_name"`
	Description         string            `json:"description"`
	Slug                string            `json:"slug"`
	Services            []ServiceResponse `json:"services"`
	PrimaryColor        string            `json:"primary_color"`
	FooterEnabled       bool              `json:"footer_enabled"`
	FooterText          string            `json:"footer_text"`
	RequestDateEnabled  bool              `json:"request_date_enabled"`
	RequestDateOptional bool              `json:"request_date_optional"`
	RequestTimeEnabled  bool              `json:"request_time_enabled"`
	RequestTimeOptional bool              `json:"request_time_optional"`
	LimitReached        bool              `json:"limit_reached"`
}

func FromTemplateView(view *queries.TemplateView) *TemplateResponse {
	var resp TemplateResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromTemplateList(views []*queries.TemplateView) []*TemplateResponse {
	out := make([]*TemplateResponse, len(views))
	for i, view := range views {
		out[i] = FromTemplateView(view)
	}
	return out
}

func FromPublicTemplateView(view *queries.PublicTemplateView) *PublicTemplateResponse {
	var resp PublicTemplateResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
