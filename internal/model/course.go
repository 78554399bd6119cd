package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course is a sellable course document. CreatorID references the admin that
// owns it; only the owner may mutate or delete the course.
type Course struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	CourseContent string             `bson:"courseContent" json:"courseContent"`
	CreatorID     primitive.ObjectID `bson:"creatorId" json:"creatorId"`
}

// Purchase links a user to a course they bought. A unique compound index on
// (userId, courseId) keeps the pair unique even under concurrent requests.
type Purchase struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID primitive.ObjectID `bson:"courseId" json:"courseId"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
}
