package service

import (
	"context"
	"testing"

	"app/internal/model"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCourseService(repo *fakeCourseRepo) CourseService {
	return NewCourseService(repo, s3.New(s3.Options{Region: "us-east-1"}), "http://localhost:9000", "images", zerolog.Nop())
}

func TestCourseCreateSetsCreator(t *testing.T) {
	t.Parallel()

	creator := primitive.NewObjectID()
	repo := &fakeCourseRepo{
		create: func(c *model.Course) (*model.Course, error) {
			c.ID = primitive.NewObjectID()
			return c, nil
		},
	}
	svc := newCourseService(repo)

	course, err := svc.Create(context.Background(), creator.Hex(), &model.Course{
		Title:         "Go from scratch",
		Description:   "desc",
		Price:         49.99,
		ImageURL:      "https://img.example.com/go.png",
		CourseContent: "intro",
	})
	require.NoError(t, err)
	assert.Equal(t, creator, course.CreatorID)
	assert.False(t, course.ID.IsZero())
}

func TestCourseUpdateContentInvalidID(t *testing.T) {
	t.Parallel()

	svc := newCourseService(&fakeCourseRepo{})

	_, err := svc.UpdateContent(context.Background(), primitive.NewObjectID().Hex(), "not-an-id", "new content")
	assert.ErrorIs(t, err, ErrInvalidCourseID)
}

func TestCourseUpdateContentNotOwned(t *testing.T) {
	t.Parallel()

	repo := &fakeCourseRepo{
		updateContent: func(_, _ primitive.ObjectID, _ string) (*model.Course, error) {
			return nil, nil
		},
	}
	svc := newCourseService(repo)

	_, err := svc.UpdateContent(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "new content")
	assert.ErrorIs(t, err, ErrCourseNotOwned)
}

func TestCourseUpdateContentFiltersByOwner(t *testing.T) {
	t.Parallel()

	creator := primitive.NewObjectID()
	courseID := primitive.NewObjectID()
	var gotID, gotCreator primitive.ObjectID

	repo := &fakeCourseRepo{
		updateContent: func(id, creatorID primitive.ObjectID, content string) (*model.Course, error) {
			gotID, gotCreator = id, creatorID
			return &model.Course{ID: id, CreatorID: creatorID, CourseContent: content}, nil
		},
	}
	svc := newCourseService(repo)

	updated, err := svc.UpdateContent(context.Background(), creator.Hex(), courseID.Hex(), "chapter 2")
	require.NoError(t, err)
	assert.Equal(t, courseID, gotID)
	assert.Equal(t, creator, gotCreator)
	assert.Equal(t, "chapter 2", updated.CourseContent)
}

func TestCourseDeleteInvalidID(t *testing.T) {
	t.Parallel()

	svc := newCourseService(&fakeCourseRepo{})

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex(), "zzz")
	assert.ErrorIs(t, err, ErrInvalidCourseID)
}

func TestCourseDeleteNotOwned(t *testing.T) {
	t.Parallel()

	repo := &fakeCourseRepo{
		delete: func(_, _ primitive.ObjectID) (*model.Course, error) { return nil, nil },
	}
	svc := newCourseService(repo)

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrCourseNotOwned)
}

func TestCourseListAll(t *testing.T) {
	t.Parallel()

	repo := &fakeCourseRepo{
		findAll: func() ([]model.Course, error) {
			return []model.Course{{Title: "one"}, {Title: "two"}}, nil
		},
	}
	svc := newCourseService(repo)

	courses, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}
