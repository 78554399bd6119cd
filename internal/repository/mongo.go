package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names match the original marketplace schema.
const (
	usersCollection     = "users"
	adminsCollection    = "admins"
	coursesCollection   = "courses"
	purchasesCollection = "purchases"
)

// Connect opens a client and verifies the connection with a ping so the
// process fails fast on a bad connection string.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the application relies on:
// one email per principal collection, and at most one purchase per
// (userId, courseId) pair.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	}
	for _, name := range []string{usersCollection, adminsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, emailIndex); err != nil {
			return fmt.Errorf("create email index on %s: %w", name, err)
		}
	}

	purchaseIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "courseId", Value: 1}},
		Options: unique,
	}
	if _, err := db.Collection(purchasesCollection).Indexes().CreateOne(ctx, purchaseIndex); err != nil {
		return fmt.Errorf("create purchase index: %w", err)
	}
	return nil
}
