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

// UserService handles signup and signin for the user realm.
type UserService interface {
	SignUp(ctx context.Context, email, password, firstName, lastName string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

type userService struct {
	repo     repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewUserService(repo repository.UserRepository, secret string, tokenTTL time.Duration, logger zerolog.Logger) UserService {
	return &userService{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger.With().Str("service", "UserService").Logger(),
	}
}

func (s *userService) SignUp(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:     email,
		Password:  hash,
		FirstName: firstName,
		LastName:  lastName,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// The unique email index can still fire when two signups race past
		// the pre-check.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *userService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup user by email: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.Hex(), auth.RealmUser, s.secret, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
