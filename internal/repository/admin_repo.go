package repository

import (
	"context"
	"errors"

	"app/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository interface {
	Create(ctx context.Context, a *model.Admin) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}

type adminRepo struct {
	coll *mongo.Collection
}

func NewAdminRepo(db *mongo.Database) AdminRepository {
	return &adminRepo{coll: db.Collection(adminsCollection)}
}

func (r *adminRepo) Create(ctx context.Context, a *model.Admin) (*model.Admin, error) {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

// FindByEmail returns nil, nil when no admin matches.
func (r *adminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
