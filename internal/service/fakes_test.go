package service

import (
	"context"

	"app/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// duplicateKeyErr mimics the server-side error raised by a unique index.
var duplicateKeyErr = mongo.WriteException{
	WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
}

type fakeUserRepo struct {
	findByEmail func(email string) (*model.User, error)
	create      func(u *model.User) (*model.User, error)
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) (*model.User, error) {
	return f.create(u)
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return f.findByEmail(email)
}

func (f *fakeUserRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*model.User, error) {
	return nil, nil
}

type fakeAdminRepo struct {
	findByEmail func(email string) (*model.Admin, error)
	create      func(a *model.Admin) (*model.Admin, error)
}

func (f *fakeAdminRepo) Create(_ context.Context, a *model.Admin) (*model.Admin, error) {
	return f.create(a)
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	return f.findByEmail(email)
}

type fakeCourseRepo struct {
	create        func(c *model.Course) (*model.Course, error)
	findAll       func() ([]model.Course, error)
	findByIDs     func(ids []primitive.ObjectID) ([]model.Course, error)
	updateContent func(id, creatorID primitive.ObjectID, content string) (*model.Course, error)
	delete        func(id, creatorID primitive.ObjectID) (*model.Course, error)
}

func (f *fakeCourseRepo) Create(_ context.Context, c *model.Course) (*model.Course, error) {
	return f.create(c)
}

func (f *fakeCourseRepo) FindAll(_ context.Context) ([]model.Course, error) {
	return f.findAll()
}

func (f *fakeCourseRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.Course, error) {
	return f.findByIDs(ids)
}

func (f *fakeCourseRepo) UpdateContent(_ context.Context, id, creatorID primitive.ObjectID, content string) (*model.Course, error) {
	return f.updateContent(id, creatorID, content)
}

func (f *fakeCourseRepo) Delete(_ context.Context, id, creatorID primitive.ObjectID) (*model.Course, error) {
	return f.delete(id, creatorID)
}

type fakePurchaseRepo struct {
	create              func(p *model.Purchase) (*model.Purchase, error)
	findByUserAndCourse func(userID, courseID primitive.ObjectID) (*model.Purchase, error)
	findByUser          func(userID primitive.ObjectID) ([]model.Purchase, error)
}

func (f *fakePurchaseRepo) Create(_ context.Context, p *model.Purchase) (*model.Purchase, error) {
	return f.create(p)
}

func (f *fakePurchaseRepo) FindByUserAndCourse(_ context.Context, userID, courseID primitive.ObjectID) (*model.Purchase, error) {
	return f.findByUserAndCourse(userID, courseID)
}

func (f *fakePurchaseRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]model.Purchase, error) {
	return f.findByUser(userID)
}
