//go:build unit || e2e

package builder

import (
	"time"

	reqdto "lushquote/internal/handler/dto/request"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmissionBuilder struct {
	ID            uuid.UUID
	TemplateID    uuid.UUID
	TemplateName  string
	CustomerName  string
	CustomerEmail string
	Selections    map[string]int
	TotalCents    int64
	Status        string
}

func NewSubmissionBuilder() *SubmissionBuilder {
	return &SubmissionBuilder{
		ID:            uuid.New(),
		TemplateID:    uuid.New(),
		TemplateName:  "Lush Lawn Care",
		CustomerName:  "Jamie Customer",
		CustomerEmail: "jamie@example.com",
		Selections:    map[string]int{"svc-mow": 1},
		TotalCents:    5000,
		Status:        "new",
	}
}

func (b *SubmissionBuilder) WithStatus(status string) *SubmissionBuilder {
	b.Status = status
	return b
}

func (b *SubmissionBuilder) BuildRequest() reqdto.SubmitQuoteRequest {
	return reqdto.SubmitQuoteRequest{
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Selections:    b.Selections,
	}
}

func (b *SubmissionBuilder) BuildView() *queries.SubmissionView {
	now := time.Now()
	return &queries.SubmissionView{
		ID:            b.ID,
		TemplateID:    b.TemplateID,
		TemplateName:  b.TemplateName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		LineItems: []queries.LineItemView{
			{ServiceID: "svc-mow", ServiceName: "Lawn Mowing", Quantity: 1, UnitPriceCents: b.TotalCents, LineTotalCents: b.TotalCents},
		},
		EstimatedTotalCents: b.TotalCents,
		Status:              b.Status,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (b *SubmissionBuilder) BuildListItem() *queries.SubmissionListItem {
	return &queries.SubmissionListItem{
		ID:                  b.ID,
		TemplateID:          b.TemplateID,
		TemplateName:        b.TemplateName,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		EstimatedTotalCents: b.TotalCents,
		Status:              b.Status,
		CreatedAt:           time.Now(),
	}
}
