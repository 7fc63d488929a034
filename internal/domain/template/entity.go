package template

import (
	"errors"
	"strings"
	"time"

	"lushquote/internal/domain/pricing"
	"lushquote/internal/domain/tier"

	"github.com/google/uuid"
)

var (
	ErrEmptyBusinessName = errors.New("business name is required")
	ErrDuplicateService  = errors.New("duplicate service id within template")
)

// Template owns an ordered list of priced services plus the public form
// display settings. Service updates are full-replace, never patched.
type Template struct {
	id                  uuid.UUID
	ownerID             uuid.UUID
	businessName        string
	description         string
	slug                Slug
	services            []Service
	branding            Branding
	footerEnabled       bool
	footerText          string
	requestDateEnabled  bool
	requestDateOptional bool
	requestTimeEnabled  bool
	requestTimeOptional bool
	isActive            bool
	createdAt           time.Time
	updatedAt           time.Time
}

type Spec struct {
	BusinessName        string
	Description         string
	Slug                string
	Services            []ServiceSpec
	PrimaryColor        string
	FooterEnabled       bool
	FooterText          string
	RequestDateEnabled  bool
	RequestDateOptional bool
	RequestTimeEnabled  bool
	RequestTimeOptional bool
	IsActive            bool
}

func New(ownerID uuid.UUID, ownerTier tier.Tier, spec Spec) (*Template, error) {
	if strings.TrimSpace(spec.BusinessName) == "" {
		return nil, ErrEmptyBusinessName
	}

	services, err := buildServices(spec.Services)
	if err != nil {
		return nil, err
	}

	var slug Slug
	if spec.Slug != "" {
		slug, err = NewSlug(spec.Slug)
		if err != nil {
			return nil, err
		}
	} else {
		slug = GenerateSlug(spec.BusinessName)
	}

	t := &Template{
		id:                  uuid.New(),
		ownerID:             ownerID,
		businessName:        strings.TrimSpace(spec.BusinessName),
		description:         spec.Description,
		slug:                slug,
		services:            services,
		branding:            NewBranding(spec.PrimaryColor),
		footerEnabled:       spec.FooterEnabled,
		footerText:          spec.FooterText,
		requestDateEnabled:  spec.RequestDateEnabled,
		requestDateOptional: spec.RequestDateOptional,
		requestTimeEnabled:  spec.RequestTimeEnabled,
		requestTimeOptional: spec.RequestTimeOptional,
		isActive:            spec.IsActive,
	}

	t.enforceTierBranding(ownerTier)
	return t, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	businessName, description string,
	slug Slug,
	services []Service,
	branding Branding,
	footerEnabled bool,
	footerText string,
	requestDateEnabled, requestDateOptional, requestTimeEnabled, requestTimeOptional bool,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Template {
	return &Template{
		id:                  id,
		ownerID:             ownerID,
		businessName:        businessName,
		description:         description,
		slug:                slug,
		services:            services,
		branding:            branding,
		footerEnabled:       footerEnabled,
		footerText:          footerText,
		requestDateEnabled:  requestDateEnabled,
		requestDateOptional: requestDateOptional,
		requestTimeEnabled:  requestTimeEnabled,
		requestTimeOptional: requestTimeOptional,
		isActive:            isActive,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// ApplyUpdate replaces the mutable fields wholesale, including the full
// services array. Tier branding rules are re-applied on every save.
func (t *Template) ApplyUpdate(ownerTier tier.Tier, spec Spec) error {
	if strings.TrimSpace(spec.BusinessName) == "" {
		return ErrEmptyBusinessName
	}

	services, err := buildServices(spec.Services)
	if err != nil {
		return err
	}

	if spec.Slug != "" {
		slug, err := NewSlug(spec.Slug)
		if err != nil {
			return err
		}
		t.slug = slug
	}

	t.businessName = strings.TrimSpace(spec.BusinessName)
	t.description = spec.Description
	t.services = services
	t.branding = NewBranding(spec.PrimaryColor)
	t.footerEnabled = spec.FooterEnabled
	t.footerText = spec.FooterText
	t.requestDateEnabled = spec.RequestDateEnabled
	t.requestDateOptional = spec.RequestDateOptional
	t.requestTimeEnabled = spec.RequestTimeEnabled
	t.requestTimeOptional = spec.RequestTimeOptional
	t.isActive = spec.IsActive

	t.enforceTierBranding(ownerTier)
	return nil
}

// enforceTierBranding forces the default footer on for free-tier owners.
// Premium owners keep whatever they configured.
func (t *Template) enforceTierBranding(ownerTier tier.Tier) {
	if ownerTier.IsPremium() {
		if t.footerText == "" {
			t.footerText = DefaultFooterText
		}
		return
	}
	t.footerEnabled = true
	t.footerText = DefaultFooterText
}

func buildServices(specs []ServiceSpec) ([]Service, error) {
	services := make([]Service, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		svc, err := NewService(spec)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[svc.ServiceID()]; dup {
			return nil, ErrDuplicateService
		}
		seen[svc.ServiceID()] = struct{}{}
		services = append(services, svc)
	}
	return services, nil
}

// PricingServices adapts the ordered service list for the price calculator.
func (t *Template) PricingServices() []pricing.Service {
	out := make([]pricing.Service, len(t.services))
	for i, svc := range t.services {
		out[i] = svc
	}
	return out
}

// ServiceByID returns the service with the given id, if present.
func (t *Template) ServiceByID(id string) (Service, bool) {
	for _, svc := range t.services {
		if svc.ServiceID() == id {
			return svc, true
		}
	}
	return Service{}, false
}

func (t *Template) ID() uuid.UUID             { return t.id }
func (t *Template) OwnerID() uuid.UUID        { return t.ownerID }
func (t *Template) BusinessName() string      { return t.businessName }
func (t *Template) Description() string       { return t.description }
func (t *Template) Slug() Slug                { return t.slug }
func (t *Template) Services() []Service       { return t.services }
func (t *Template) Branding() Branding        { return t.branding }
func (t *Template) FooterEnabled() bool       { return t.footerEnabled }
func (t *Template) FooterText() string        { return t.footerText }
func (t *Template) RequestDateEnabled() bool  { return t.requestDateEnabled }
func (t *Template) RequestDateOptional() bool { return t.requestDateOptional }
func (t *Template) RequestTimeEnabled() bool  { return t.requestTimeEnabled }
func (t *Template) RequestTimeOptional() bool { return t.requestTimeOptional }
func (t *Template) IsActive() bool            { return t.isActive }
func (t *Template) CreatedAt() time.Time      { return t.createdAt }
func (t *Template) UpdatedAt() time.Time      { return t.updatedAt }
