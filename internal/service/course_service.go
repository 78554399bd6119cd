package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseService defines the interface for course operations.
type CourseService interface {
	Create(ctx context.Context, creatorID string, c *model.Course) (*model.Course, error)
	// UpdateContent replaces the course content; the caller must own the course.
	UpdateContent(ctx context.Context, creatorID, courseID, content string) (*model.Course, error)
	// Delete removes the course; the caller must own the course.
	Delete(ctx context.Context, creatorID, courseID string) (*model.Course, error)
	ListAll(ctx context.Context) ([]model.Course, error)
	// ImageUploadURL returns a presigned PUT URL for a course image together
	// with the public URL to store on the course record.
	ImageUploadURL(ctx context.Context, filename string, contentType string) (uploadURL, imageURL string, err error)
}

type courseService struct {
	repo          repository.CourseRepository
	presignClient *s3.PresignClient
	s3URL         string
	bucket        string
	logger        zerolog.Logger
}

func NewCourseService(repo repository.CourseRepository, s3Client *s3.Client, s3URL, bucket string, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:          repo,
		presignClient: s3.NewPresignClient(s3Client),
		s3URL:         strings.TrimRight(s3URL, "/"),
		bucket:        bucket,
		logger:        logger.With().Str("service", "CourseService").Logger(),
	}
}

func (s *courseService) Create(ctx context.Context, creatorID string, c *model.Course) (*model.Course, error) {
	oid, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, fmt.Errorf("parse creator id: %w", err)
	}
	c.CreatorID = oid

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return created, nil
}

func (s *courseService) UpdateContent(ctx context.Context, creatorID, courseID, content string) (*model.Course, error) {
	courseOID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, ErrInvalidCourseID
	}
	creatorOID, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, fmt.Errorf("parse creator id: %w", err)
	}

	updated, err := s.repo.UpdateContent(ctx, courseOID, creatorOID, content)
	if err != nil {
		return nil, fmt.Errorf("update course content: %w", err)
	}
	if updated == nil {
		// Absent and foreign courses are deliberately indistinguishable.
		return nil, ErrCourseNotOwned
	}
	return updated, nil
}

func (s *courseService) Delete(ctx context.Context, creatorID, courseID string) (*model.Course, error) {
	courseOID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, ErrInvalidCourseID
	}
	creatorOID, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return nil, fmt.Errorf("parse creator id: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, courseOID, creatorOID)
	if err != nil {
		return nil, fmt.Errorf("delete course: %w", err)
	}
	if deleted == nil {
		return nil, ErrCourseNotOwned
	}
	return deleted, nil
}

func (s *courseService) ListAll(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) ImageUploadURL(ctx context.Context, filename, contentType string) (string, string, error) {
	objectKey := "courses/" + uuid.NewString() + path.Ext(filename)

	request, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		s.logger.Error().Err(err).Str("object_key", objectKey).Msg("Failed to generate presigned PUT URL")
		return "", "", fmt.Errorf("presign put object: %w", err)
	}

	imageURL := fmt.Sprintf("%s/%s/%s", s.s3URL, s.bucket, objectKey)
	return request.URL, imageURL, nil
}
