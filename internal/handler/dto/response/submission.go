package response

import (
	"time"

	"lushquote/internal/domain/pricing"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LineItemResponse struct {
	ServiceID      string `json:"service_id"`
	ServiceName    string `json:"service_name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type SubmissionResponse struct {
	ID                  uuid.UUID          `json:"id"`
	TemplateID          uuid.UUID          `json:"template_id"`
	TemplateName        string             `json:"template_name"`
	CustomerName        string             `json:"customer_name"`
	CustomerEmail       string             `json:"customer_email"`
	CustomerPhone       string             `json:"customer_phone"`
	CustomerNotes       string             `json:"customer_notes"`
	LineItems           []LineItemResponse `json:"line_items"`
	EstimatedTotalCents int64              `json:"estimated_total_cents"`
	EstimatedTotal      string             `json:"estimated_total"`
	RequestedDate       *time.Time         `json:"requested_date,omitempty"`
	RequestedTime       *string            `json:"requested_time,omitempty"`
	Status              string             `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

type SubmissionListItemResponse struct {
	ID                  uuid.UUID  `json:"id"`
	TemplateID          uuid.UUID  `json:"template_id"`
	TemplateName        string     `json:"template_name"`
	CustomerName        string     `json:"customer_name"`
	CustomerEmail       string     `json:"customer_email"`
	EstimatedTotalCents int64      `json:"estimated_total_cents"`
	EstimatedTotal      string     `json:"estimated_total"`
	RequestedDate       *time.Time `json:"requested_date,omitempty"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`
}

type SubmitQuoteResponse struct {
	SubmissionID        uuid.UUID `json:"submission_id"`
	EstimatedTotalCents int64     `json:"estimated_total_cents"`
	EstimatedTotal      string    `json:"estimated_total"`
}

func FromSubmissionView(view *queries.SubmissionView) *SubmissionResponse {
	var resp SubmissionResponse
	_ = copier.Copy(&resp, view)
	resp.EstimatedTotal = pricing.NewMoney(view.EstimatedTotalCents).Format()
	return &resp
}

func FromSubmissionList(views []*queries.SubmissionListItem) []*SubmissionListItemResponse {
	out := make([]*SubmissionListItemResponse, len(views))
	for i, view := range views {
		var resp SubmissionListItemResponse
		_ = copier.Copy(&resp, view)
		resp.EstimatedTotal = pricing.NewMoney(view.EstimatedTotalCents).Format()
		out[i] = &resp
	}
	return out
}
