package service

import (
	"context"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PurchaseService records course purchases and lists a user's library.
type PurchaseService interface {
	// Purchase records a purchase; at most one per (user, course) pair.
	Purchase(ctx context.Context, userID, courseID string) (*model.Purchase, error)
	// ListPurchased returns the course records for the user's purchases.
	ListPurchased(ctx context.Context, userID string) ([]model.Course, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	courses   repository.CourseRepository
	logger    zerolog.Logger
}

func NewPurchaseService(purchases repository.PurchaseRepository, courses repository.CourseRepository, logger zerolog.Logger) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		courses:   courses,
		logger:    logger.With().Str("service", "PurchaseService").Logger(),
	}
}

func (s *purchaseService) Purchase(ctx context.Context, userID, courseID string) (*model.Purchase, error) {
	courseOID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, ErrInvalidCourseID
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}

	existing, err := s.purchases.FindByUserAndCourse(ctx, userOID, courseOID)
	if err != nil {
		return nil, fmt.Errorf("lookup purchase: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyPurchased
	}

	purchase := &model.Purchase{CourseID: courseOID, UserID: userOID}
	created, err := s.purchases.Create(ctx, purchase)
	if err != nil {
		// Two concurrent purchases can both pass the pre-check; the unique
		// (userId, courseId) index decides the loser.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyPurchased
		}
		return nil, fmt.Errorf("create purchase: %w", err)
	}
	return created, nil
}

func (s *purchaseService) ListPurchased(ctx context.Context, userID string) ([]model.Course, error) {
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}

	purchases, err := s.purchases.FindByUser(ctx, userOID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(purchases))
	for _, p := range purchases {
		ids = append(ids, p.CourseID)
	}

	// Purchases whose course has since been deleted simply drop out here.
	courses, err := s.courses.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load purchased courses: %w", err)
	}
	return courses, nil
}
