package service

import (
	"context"
	"fmt"
	"time"

	"app/internal/auth"
	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminService handles signup and signin for the admin realm. Admin tokens
// are signed with the admin secret and never validate against the user gate.
type AdminService interface {
	SignUp(ctx context.Context, email, password, firstName, lastName string) (*model.Admin, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

type adminService struct {
	repo     repository.AdminRepository
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAdminService(repo repository.AdminRepository, secret string, tokenTTL time.Duration, logger zerolog.Logger) AdminService {
	return &adminService{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger.With().Str("service", "AdminService").Logger(),
	}
}

func (s *adminService) SignUp(ctx context.Context, email, password, firstName, lastName string) (*model.Admin, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup admin by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Email:     email,
		Password:  hash,
		FirstName: firstName,
		LastName:  lastName,
	}
	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return created, nil
}

func (s *adminService) SignIn(ctx context.Context, email, password string) (string, error) {
	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup admin by email: %w", err)
	}
	if admin == nil || !auth.CheckPassword(admin.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(admin.ID.Hex(), auth.RealmAdmin, s.secret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
