//go:build unit || e2e

package builder

import (
	"time"

	"lushquote/internal/domain/template"
	"lushquote/internal/domain/tier"
	reqdto "lushquote/internal/handler/dto/request"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
)

type TemplateBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	OwnerTier    tier.Tier
	BusinessName string
	Description  string
	Slug         string
	Services     []reqdto.ServiceRequest
	PrimaryColor string
	IsActive     bool
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		OwnerTier:    tier.Free,
		BusinessName: "Lush Lawn Care",
		Description:  "Weekly and one-off garden services",
		Slug:         "lush-lawn-care",
		Services: []reqdto.ServiceRequest{
			{
				ID:              "svc-mow",
				Name:            "Lawn Mowing",
				PricingType:     "fixed",
				UnitPriceCents:  5000,
				SelectionMethod: "checkbox",
			},
			{
				ID:              "svc-hedge",
				Name:            "Hedge Trimming",
				PricingType:     "per_unit",
				UnitPriceCents:  1500,
				SelectionMethod: "numeric_stepper",
			},
		},
		PrimaryColor: template.DefaultPrimaryColor,
		IsActive:     true,
	}
}

func (b *TemplateBuilder) ForOwner(ownerID uuid.UUID) *TemplateBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *TemplateBuilder) WithTier(t tier.Tier) *TemplateBuilder {
	b.OwnerTier = t
	return b
}

func (b *TemplateBuilder) WithServices(services ...reqdto.ServiceRequest) *TemplateBuilder {
	b.Services = services
	return b
}

func (b *TemplateBuilder) BuildRequest() reqdto.TemplateRequest {
	return reqdto.TemplateRequest{
		BusinessName: b.BusinessName,
		Description:  b.Description,
		Slug:         b.Slug,
		Services:     b.Services,
		PrimaryColor: b.PrimaryColor,
	}
}

func (b *TemplateBuilder) BuildDomain() (*template.Template, error) {
	return template.New(b.OwnerID, b.OwnerTier, b.BuildRequest().ToSpec())
}

func (b *TemplateBuilder) BuildView() *queries.TemplateView {
	now := time.Now()
	return &queries.TemplateView{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		BusinessName:  b.BusinessName,
		Description:   b.Description,
		Slug:          b.Slug,
		Services:      b.serviceViews(),
		PrimaryColor:  b.PrimaryColor,
		FooterEnabled: true,
		FooterText:    template.DefaultFooterText,
		IsActive:      b.IsActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *TemplateBuilder) BuildPublicView() *queries.PublicTemplateView {
	return &queries.PublicTemplateView{
		TemplateID:    b.ID,
		BusinessName:  b.BusinessName,
		Description:   b.Description,
		Slug:          b.Slug,
		Services:      b.serviceViews(),
		PrimaryColor:  b.PrimaryColor,
		FooterEnabled: true,
		FooterText:    template.DefaultFooterText,
	}
}

func (b *TemplateBuilder) BuildPublicRecord() *queries.PublicTemplateRecord {
	return &queries.PublicTemplateRecord{
		View:      *b.BuildPublicView(),
		OwnerID:   b.OwnerID,
		OwnerTier: b.OwnerTier.String(),
	}
}

func (b *TemplateBuilder) serviceViews() []queries.ServiceView {
	views := make([]queries.ServiceView, len(b.Services))
	for i, svc := range b.Services {
		views[i] = queries.ServiceView{
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
	return views
}
