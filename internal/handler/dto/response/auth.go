package response

import (
	"time"

	"lushquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type OwnerResponse struct {
	ID                     uuid.UUID `json:"id"`
	Email                  string    `json:"email"`
	DisplayName            string    `json:"display_name"`
	SubscriptionTier       string    `json:"subscription_tier"`
	DefaultColor           string    `json:"default_color"`
	MonthlySubmissionCount int       `json:"monthly_submission_count"`
	MonthlySubmissionLimit *int      `json:"monthly_submission_limit,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

func FromOwnerView(view *queries.OwnerView) *OwnerResponse {
	var resp OwnerResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
