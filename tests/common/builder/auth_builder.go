//go:build unit || e2e

package builder

import (
	reqdto "lushquote/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email       string
	Password    string
	DisplayName string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:       "owner@example.com",
		Password:    "password123",
		DisplayName: "Test Owner",
	}
}

func (b *AuthBuilder) BuildLogin() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *AuthBuilder) BuildRegister() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:       b.Email,
		Password:    b.Password,
		DisplayName: b.DisplayName,
	}
}
