package request

import (
	"time"

	"lushquote/internal/domain/submission"
)

type SubmitQuoteRequest struct {
	CustomerName  string         `json:"customer_name" binding:"required"`
	CustomerEmail string         `json:"customer_email" binding:"required"`
	CustomerPhone string         `json:"customer_phone"`
	CustomerNotes string         `json:"customer_notes"`
	Selections    map[string]int `json:"selections" binding:"required"`
	RequestedDate *string        `json:"requested_date,omitempty"`
	RequestedTime *string        `json:"requested_time,omitempty"`
}

func (r SubmitQuoteRequest) Contact() submission.Contact {
	return submission.Contact{
		Name:  r.CustomerName,
		Email: r.CustomerEmail,
		Phone: r.CustomerPhone,
		Notes: r.CustomerNotes,
	}
}

// ParseRequestedDate accepts the date as yyyy-mm-dd; nil means the customer
// left it blank.
func (r SubmitQuoteRequest) ParseRequestedDate() (*time.Time, error) {
	if r.RequestedDate == nil || *r.RequestedDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *r.RequestedDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
