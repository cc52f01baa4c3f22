package usecase

import (
	"context"

	"bdgaraj/internal/domain/entity"
)

// LoginInput is the admin login request
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput creates another admin
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// TokenOutput is returned by a successful login
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase defines the admin authentication use cases
type AuthUsecase interface {
	// Login checks the credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Authenticate verifies token and resolves its subject against the credential
	// store on every call, so deleting an admin revokes its tokens.
	Authenticate(ctx context.Context, token string) (*entity.Admin, error)

	// Register creates a new admin with a unique username.
	Register(ctx context.Context, input *RegisterInput) (*entity.Admin, error)
}
