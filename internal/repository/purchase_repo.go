package repository

import (
	"context"
	"errors"

	"app/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PurchaseRepository interface {
	Create(ctx context.Context, p *model.Purchase) (*model.Purchase, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID primitive.ObjectID) (*model.Purchase, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Purchase, error)
}

type purchaseRepo struct {
	coll *mongo.Collection
}

func NewPurchaseRepo(db *mongo.Database) PurchaseRepository {
	return &purchaseRepo{coll: db.Collection(purchasesCollection)}
}

func (r *purchaseRepo) Create(ctx context.Context, p *model.Purchase) (*model.Purchase, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

// FindByUserAndCourse returns nil, nil when the pair has no purchase.
func (r *purchaseRepo) FindByUserAndCourse(ctx context.Context, userID, courseID primitive.ObjectID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *purchaseRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Purchase, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	purchases := []model.Purchase{}
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}
