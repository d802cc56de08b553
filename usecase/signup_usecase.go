package usecase

import (
	"context"
	"time"

	"github.com/fionaabad/AniMatch/domain"
	"github.com/fionaabad/AniMatch/internal/tokenutil"
	"golang.org/x/crypto/bcrypt"
)

type signupUsecase struct {
	userRepository domain.UserRepository
	secret         string
	expiryHour     int
	contextTimeout time.Duration
}

func NewSignupUsecase(userRepository domain.UserRepository, secret string, expiryHour int, timeout time.Duration) domain.SignupUsecase {
	return &signupUsecase{
		userRepository: userRepository,
		secret:         secret,
		expiryHour:     expiryHour,
		contextTimeout: timeout,
	}
}

func (su *signupUsecase) Signup(ctx context.Context, request domain.SignupRequest) (*domain.SignupResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	encrypted, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		UserName: request.UserName,
		Password: string(encrypted),
		Role:     domain.RoleUser,
	}
	if err := su.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	accessToken, err := tokenutil.CreateAccessToken(user, su.secret, su.expiryHour)
	if err != nil {
		return nil, err
	}
	return &domain.SignupResponse{
		UserName:    user.UserName,
		Role:        user.Role,
		AccessToken: accessToken,
	}, nil
}
