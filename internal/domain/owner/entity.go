package owner

import (
	"time"

	"lushquote/internal/domain/tier"

	"github.com/google/uuid"
)

// Owner is the business user who creates templates and receives
// submissions. Every authenticated principal is an owner.
type Owner struct {
	id               uuid.UUID
	email            Email
	passwordHash     string
	displayName      string
	subscriptionTier tier.Tier
	stripeCustomerID *string
	defaultColor     string
	lastLogin        *time.Time
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

// DefaultColor seeds new templates with the owner's preferred brand color.
const DefaultColor = "#87A96B"

func NewOwner(email Email, passwordHash, displayName string) *Owner {
	return &Owner{
		id:               uuid.New(),
		email:            email,
		passwordHash:     passwordHash,
		displayName:      displayName,
		subscriptionTier: tier.Free,
		defaultColor:     DefaultColor,
		isActive:         true,
	}
}

func Reconstruct(
	id uuid.UUID,
	email Email,
	passwordHash, displayName string,
	subscriptionTier tier.Tier,
	stripeCustomerID *string,
	defaultColor string,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Owner {
	return &Owner{
		id:               id,
		email:            email,
		passwordHash:     passwordHash,
		displayName:      displayName,
		subscriptionTier: subscriptionTier,
		stripeCustomerID: stripeCustomerID,
		defaultColor:     defaultColor,
		lastLogin:        lastLogin,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (o *Owner) ID() uuid.UUID              { return o.id }
func (o *Owner) Email() Email               { return o.email }
func (o *Owner) PasswordHash() string       { return o.passwordHash }
func (o *Owner) DisplayName() string        { return o.displayName }
func (o *Owner) SubscriptionTier() tier.Tier { return o.subscriptionTier }
func (o *Owner) StripeCustomerID() *string  { return o.stripeCustomerID }
func (o *Owner) DefaultColor() string       { return o.defaultColor }
func (o *Owner) LastLogin() *time.Time      { return o.lastLogin }
func (o *Owner) IsActive() bool             { return o.isActive }
func (o *Owner) CreatedAt() time.Time       { return o.createdAt }
func (o *Owner) UpdatedAt() time.Time       { return o.updatedAt }
