package submission

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"lushquote/internal/domain/pricing"
	"lushquote/internal/domain/template"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
	ErrMissingRequestedDate = errors.New("requested date is required")
	ErrMissingRequestedTime = errors.New("requested time is required")
	ErrInvalidStatus        = errors.New("invalid submission status")
	ErrInvalidTransition    = errors.New("invalid status transition")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Contact holds the customer-entered identity fields.
type Contact struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// LineItem is a priced snapshot of one selected service. Name and unit
// price are copied at submission time; later template edits never change
// a stored quote.
type LineItem struct {
	ServiceID      string
	ServiceName    string
	Quantity       int
	UnitPriceCents int64
	LineTotalCents int64
}

// Submission is a persisted customer quote request. The total is computed
// once on creation and never recomputed.
type Submission struct {
	id             uuid.UUID
	templateID     uuid.UUID
	contact        Contact
	lineItems      []LineItem
	estimatedTotal pricing.Money
	requestedDate  *time.Time
	requestedTime  *string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// New builds a submission from a template and the customer's selections.
// Line items materialize only services with an effective quantity > 0, in
// template display order; selection entries for unknown service ids are
// dropped. The stored total is recomputed here server-side so a tampered
// client total can never be persisted.
func New(tmpl *template.Template, contact Contact, selections pricing.SelectionSet, requestedDate *time.Time, requestedTime *string) (*Submission, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return nil, ErrMissingCustomerName
	}
	if !emailRegex.MatchString(strings.TrimSpace(contact.Email)) {
		return nil, ErrInvalidCustomerEmail
	}
	if tmpl.RequestDateEnabled() && !tmpl.RequestDateOptional() && requestedDate == nil {
		return nil, ErrMissingRequestedDate
	}
	if tmpl.RequestTimeEnabled() && !tmpl.RequestTimeOptional() && requestedTime == nil {
		return nil, ErrMissingRequestedTime
	}

	var lineItems []LineItem
	for _, svc := range tmpl.Services() {
		quantity := svc.EffectiveQuantity(selections[svc.ServiceID()])
		if quantity <= 0 {
			continue
		}
		lineItems = append(lineItems, LineItem{
			ServiceID:      svc.ServiceID(),
			ServiceName:    svc.Name(),
			Quantity:       quantity,
			UnitPriceCents: svc.UnitPrice().Cents(),
			LineTotalCents: svc.UnitPrice().MultiplyQuantity(quantity).Cents(),
		})
	}

	return &Submission{
		id:             uuid.New(),
		templateID:     tmpl.ID(),
		contact:        contact,
		lineItems:      lineItems,
		estimatedTotal: pricing.Calculate(tmpl.PricingServices(), selections),
		requestedDate:  requestedDate,
		requestedTime:  requestedTime,
		status:         StatusNew,
	}, nil
}

func Reconstruct(
	id, templateID uuid.UUID,
	contact Contact,
	lineItems []LineItem,
	estimatedTotalCents int64,
	requestedDate *time.Time,
	requestedTime *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Submission {
	return &Submission{
		id:             id,
		templateID:     templateID,
		contact:        contact,
		lineItems:      lineItems,
		estimatedTotal: pricing.NewMoney(estimatedTotalCents),
		requestedDate:  requestedDate,
		requestedTime:  requestedTime,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// TransitionTo applies an explicit owner status action.
func (s *Submission) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !s.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	s.status = next
	return nil
}

// MarkViewed performs the automatic new→viewed transition on first owner
// view. A no-op for every other status.
func (s *Submission) MarkViewed() bool {
	if s.status != StatusNew {
		return false
	}
	s.status = StatusViewed
	return true
}

func (s *Submission) ID() uuid.UUID                 { return s.id }
func (s *Submission) TemplateID() uuid.UUID         { return s.templateID }
func (s *Submission) Contact() Contact              { return s.contact }
func (s *Submission) LineItems() []LineItem         { return s.lineItems }
func (s *Submission) EstimatedTotal() pricing.Money { return s.estimatedTotal }
func (s *Submission) RequestedDate() *time.Time     { return s.requestedDate }
func (s *Submission) RequestedTime() *string        { return s.requestedTime }
func (s *Submission) Status() Status                { return s.status }
func (s *Submission) CreatedAt() time.Time          { return s.createdAt }
func (s *Submission) UpdatedAt() time.Time          { return s.updatedAt }
