//go:build unit || e2e

package builder

import (
	"time"

	"lushquote/internal/domain/owner"
	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
)

type OwnerBuilder struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	DisplayName      string
	SubscriptionTier string
	DefaultColor     string
	StripeCustomerID *string
	IsActive         bool
	MonthlyCount     int
}

func NewOwnerBuilder() *OwnerBuilder {
	return &OwnerBuilder{
		ID:               uuid.New(),
		Email:            "owner@example.com",
		PasswordHash:     "hashed_password",
		DisplayName:      "Test Owner",
		SubscriptionTier: "free",
		DefaultColor:     owner.DefaultColor,
		IsActive:         true,
	}
}

func (b *OwnerBuilder) AsPremium() *OwnerBuilder {
	b.SubscriptionTier = "premium"
	customerID := "cus_test123"
	b.StripeCustomerID = &customerID
	return b
}

func (b *OwnerBuilder) AsInactive() *OwnerBuilder {
	b.IsActive = false
	return b
}

func (b *OwnerBuilder) WithMonthlyCount(count int) *OwnerBuilder {
	b.MonthlyCount = count
	return b
}

func (b *OwnerBuilder) BuildDomain() (*owner.Owner, error) {
	email, err := owner.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return owner.NewOwner(email, b.PasswordHash, b.DisplayName), nil
}

func (b *OwnerBuilder) BuildView() *queries.OwnerView {
	return &queries.OwnerView{
		ID:                     b.ID,
		Email:                  b.Email,
		DisplayName:            b.DisplayName,
		SubscriptionTier:       b.SubscriptionTier,
		DefaultColor:           b.DefaultColor,
		StripeCustomerID:       b.StripeCustomerID,
		IsActive:               b.IsActive,
		MonthlySubmissionCount: b.MonthlyCount,
		CreatedAt:              time.Now(),
	}
}

func (b *OwnerBuilder) BuildAuthRecord() *queries.OwnerAuthRecord {
	return &queries.OwnerAuthRecord{
		View:         *b.BuildView(),
		PasswordHash: b.PasswordHash,
	}
}
