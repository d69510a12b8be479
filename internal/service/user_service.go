package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-auction/internal/domain"
	"github.com/fsdevblog/groph-auction/internal/repository/repoargs"
	"github.com/fsdevblog/groph-auction/pkg/uow"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo UserRepository
}

func NewUserService(u uow.UOW) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		userRepo: userRepo,
	}, nil
}

type ProvisionUserArgs struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Provision создает юзера для субъекта из токена провайдера идентификации при первом входе, либо
// обновляет его имя и email. Баланс нового юзера нулевой, баланс существующего не меняется.
func (s *UserService) Provision(ctx context.Context, args ProvisionUserArgs) (*domain.User, error) {
	if args.ID == uuid.Nil {
		return nil, fmt.Errorf("provisioning user: %w", domain.NewValidationError("id", "must not be empty"))
	}
	user, err := s.userRepo.Upsert(ctx, repoargs.UpsertUser{
		ID:    args.ID,
		Name:  strings.TrimSpace(args.Name),
		Email: strings.TrimSpace(args.Email),
	})
	if err != nil {
		return nil, fmt.Errorf("provisioning user %s: %w", args.ID, err)
	}
	return user, nil
}
