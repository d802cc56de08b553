package domain

import (
	"context"
	"errors"
)

// ErrUserAlreadyExists rejects a signup for a taken username.
var ErrUserAlreadyExists = errors.New("username already exists")

type SignupRequest struct {
	UserName string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

type SignupResponse struct {
	UserName    string `json:"username"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

type SignupUsecase interface {
	Signup(ctx context.Context, request SignupRequest) (*SignupResponse, error)
}
