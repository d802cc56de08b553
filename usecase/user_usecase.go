package usecase

import (
	"context"
	"time"

	"github.com/fionaabad/AniMatch/domain"
)

type userListUsecase struct {
	userRepository domain.UserRepository
	contextTimeout time.Duration
}

func NewUserListUsecase(userRepository domain.UserRepository, timeout time.Duration) domain.UserListUsecase {
	return &userListUsecase{
		userRepository: userRepository,
		contextTimeout: timeout,
	}
}

func (uu *userListUsecase) ListUsers(ctx context.Context) ([]domain.UserRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.contextTimeout)
	defer cancel()

	users, err := uu.userRepository.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, domain.UserRecord{
			UserName: u.UserName,
			Role:     u.Role,
		})
	}
	return records, nil
}
