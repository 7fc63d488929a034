package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models returned to handlers. Shapes follow what the public form and
// the owner dashboard consume, decoupled from domain entities.

type ServiceView struct {
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

type TemplateView struct {
	ID                  uuid.UUID     `json:"id"`
	OwnerID             uuid.UUID     `json:"owner_id"`
	BusinessName        string        `json:"business_name"`
	Description         string        `json:"description"`
	Slug                string        `json:"slug"`
	Services            []ServiceView `json:"services"`
	PrimaryColor        string        `json:"primary_color"`
	FooterEnabled       bool          `json:"footer_enabled"`
	FooterText          string        `json:"footer_text"`
	RequestDateEnabled  bool          `json:"request_date_enabled"`
	RequestDateOptional bool          `json:"request_date_optional"`
	RequestTimeEnabled  bool          `json:"request_time_enabled"`
	RequestTimeOptional bool          `json:"request_time_optional"`
	IsActive            bool          `json:"is_active"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// PublicTemplateView is the anonymous read model for the public quote form.
// Owner internals stay hidden; LimitReached lets the form short-circuit
// before a submission attempt (the submit path re-checks authoritatively).
type PublicTemplateView struct {
	TemplateID          uuid.UUID     `json:"template_id"`
	BusinessName        string        `json:"business_name"`
	Description         string        `json:"description"`
	Slug                string        `json:"slug"`
	Services            []ServiceView `json:"services"`
	PrimaryColor        string        `json:"primary_color"`
	FooterEnabled       bool          `json:"footer_enabled"`
	FooterText          string        `json:"footer_text"`
	RequestDateEnabled  bool          `json:"request_date_enabled"`
	RequestDateOptional bool          `json:"request_date_optional"`
	RequestTimeEnabled  bool          `json:"request_time_enabled"`
	RequestTimeOptional bool          `json:"request_time_optional"`
	LimitReached        bool          `json:"limit_reached"`
}

// PublicTemplateRecord pairs the anonymous public view with the owner
// facts the submission gate needs. It never leaves the usecase layer.
type PublicTemplateRecord struct {
	View      PublicTemplateView
	OwnerID   uuid.UUID
	OwnerTier string
}

type LineItemView struct {
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type SubmissionView struct {
	ID                  uuid.UUID      `json:"id"`
	TemplateID          uuid.UUID      `json:"template_id"`
	TemplateName        string         `json:"template_name"`
	CustomerName        string         `json:"customer_name"`
	CustomerEmail       string         `json:"customer_email"`
	CustomerPhone       string         `json:"customer_phone"`
	CustomerNotes       string         `json:"customer_notes"`
	LineItems           []LineItemView `json:"line_items"`
	EstimatedTotalCents int64          `json:"estimated_total_cents"`
	RequestedDate       *time.Time     `json:"requested_date,omitempty"`
	RequestedTime       *string        `json:"requested_time,omitempty"`
	Status              string         `json:"status"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type SubmissionListItem struct {
	ID                  uuid.UUID  `json:"id"`
	TemplateID          uuid.UUID  `json:"template_id"`
	TemplateName        string     `json:"template_name"`
	CustomerName        string     `json:"customer_name"`
	CustomerEmail       string     `json:"customer_email"`
	EstimatedTotalCents int64      `json:"estimated_total_cents"`
	RequestedDate       *time.Time `json:"requested_date,omitempty"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
}

// OwnerView is the authenticated principal's profile, including current
// monthly usage so the dashboard can render the allowance.
type OwnerView struct {
	ID                     uuid.UUID `json:"id"`
	Email                  string    `json:"email"`
	DisplayName            string    `json:"display_name"`
	SubscriptionTier       string    `json:"subscription_tier"`
	DefaultColor           string    `json:"default_color"`
	StripeCustomerID       *string   `json:"stripe_customer_id,omitempty"`
	IsActive               bool      `json:"is_active"`
	MonthlySubmissionCount int       `json:"monthly_submission_count"`
	MonthlySubmissionLimit *int      `json:"monthly_submission_limit,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// OwnerAuthRecord carries the stored password hash alongside the profile
// for credential checks. Handlers never see it.
type OwnerAuthRecord struct {
	View         OwnerView
	PasswordHash string
}

// SubmissionListFilter narrows the owner's submission list. Nil fields
// mean no filtering on that dimension.
type SubmissionListFilter struct {
	TemplateID *uuid.UUID
	Status     *string
}

type DashboardStats struct {
	TemplateCount          int            `json:"template_count"`
	TotalSubmissions       int            `json:"total_submissions"`
	SubmissionsByStatus    map[string]int `json:"submissions_by_status"`
	MonthlySubmissionCount int            `json:"monthly_submission_count"`
	MonthlySubmissionLimit *int           `json:"monthly_submission_limit,omitempty"`
}
