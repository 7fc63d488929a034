package request

import (
	"lushquote/internal/domain/owner"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToDomain() (owner.Credentials, error) {
	return owner.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
}

func (r RegisterRequest) ToDomain() (owner.Credentials, error) {
	return owner.NewCredentials(r.Email, r.Password)
}
