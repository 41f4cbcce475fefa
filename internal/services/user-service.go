package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"materieelbeheer/internal/dto"
	"materieelbeheer/internal/entities"
	"materieelbeheer/internal/repositories"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]*entities.User, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.GetUsers(ctx)
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return s.userRepo.FindUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := payload.Role
	if role == "" {
		role = "user"
	}

	u := entities.User{
		Name:         payload.Name,
		Email:        strings.ToLower(strings.TrimSpace(payload.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	id, err := s.userRepo.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("gebruiker aangemaakt", zap.Uint64("user_id", id), zap.String("email", u.Email))
	return s.userRepo.FindUser(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*entities.User, error) {
	existing, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.Name != nil {
		existing.Name = *payload.Name
	}
	if payload.Email != nil {
		existing.Email = strings.ToLower(strings.TrimSpace(*payload.Email))
	}
	if payload.Role != nil {
		existing.Role = *payload.Role
	}
	if err := s.userRepo.UpdateUser(ctx, id, *existing); err != nil {
		return nil, err
	}
	return s.userRepo.FindUser(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if _, err := s.userRepo.FindUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.DeleteUser(ctx, id)
}
