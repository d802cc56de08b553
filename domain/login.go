package domain

import (
	"context"
	"errors"
)

// ErrInvalidCredentials covers both unknown users and wrong passwords, so the
// response does not leak which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginRequest struct {
	UserName string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserName    string `json:"username"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

type LoginUsecase interface {
	Login(ctx context.Context, request LoginRequest) (*LoginResponse, error)
}
