package usecase

import (
	"context"
	"time"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/internal/tokenutil"
	"golang.org/x/crypto/bcrypt"
)

type loginUsecase struct {
	userRepository domain.UserRepository
	secret         string
	expiryHour     int
	contextTimeout time.Duration
}

func NewLoginUsecase(userRepository domain.UserRepository, secret string, expiryHour int, timeout time.Duration) domain.LoginUsecase {
	return &loginUsecase{
		userRepository: userRepository,
		secret:         secret,
		expiryHour:     expiryHour,
		contextTimeout: timeout,
	}
}

func (lu *loginUsecase) Login(ctx context.Context, request domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.contextTimeout)
	defer cancel()

	user, err := lu.userRepository.GetByUserName(ctx, request.UserName)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := tokenutil.CreateAccessToken(user, lu.secret, lu.expiryHour)
	if err != nil {
		return nil, err
	}
	return &domain.LoginResponse{
		UserName:    user.UserName,
		Role:        user.Role,
		AccessToken: accessToken,
	}, nil
}
