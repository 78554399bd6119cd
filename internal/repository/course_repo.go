package repository

import (
	"context"
	"errors"

	"app/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseRepository defines the interface for interacting with course data.
// Mutating operations filter by both course id and creator id in a single
// query, so a foreign course behaves exactly like a missing one.
type CourseRepository interface {
	Create(ctx context.Context, c *model.Course) (*model.Course, error)
	FindAll(ctx context.Context) ([]model.Course, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Course, error)
	UpdateContent(ctx context.Context, id, creatorID primitive.ObjectID, content string) (*model.Course, error)
	Delete(ctx context.Context, id, creatorID primitive.ObjectID) (*model.Course, error)
}

type courseRepo struct {
	coll *mongo.Collection
}

func NewCourseRepo(db *mongo.Database) CourseRepository {
	return &courseRepo{coll: db.Collection(coursesCollection)}
}

func (r *courseRepo) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

func (r *courseRepo) FindAll(ctx context.Context) ([]model.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []model.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// FindByIDs returns the courses whose ids appear in the given set. Ids that
// no longer resolve are silently absent from the result.
func (r *courseRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Course, error) {
	if len(ids) == 0 {
		return []model.Course{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []model.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// UpdateContent replaces the course content, returning the updated document.
// Returns nil, nil when no course matches both id and creator.
func (r *courseRepo) UpdateContent(ctx context.Context, id, creatorID primitive.ObjectID, content string) (*model.Course, error) {
	var c model.Course
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "creatorId": creatorID},
		bson.M{"$set": bson.M{"courseContent": content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes the course, returning the deleted document. Returns
// nil, nil when no course matches both id and creator. Purchases referencing
// the course are left untouched.
func (r *courseRepo) Delete(ctx context.Context, id, creatorID primitive.ObjectID) (*model.Course, error) {
	var c model.Course
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id, "creatorId": creatorID}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
