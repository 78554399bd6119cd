package handler

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"app/internal/middleware"
	"app/internal/model"

	"github.com/go-playground/validator/v10"
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// withPrincipal stands in for an auth gate and injects a fixed principal id.
func withPrincipal(id string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.PrincipalContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type stubUserService struct {
	signUp func(email, password, firstName, lastName string) (*model.User, error)
	signIn func(email, password string) (string, error)
}

func (s *stubUserService) SignUp(_ context.Context, email, password, firstName, lastName string) (*model.User, error) {
	return s.signUp(email, password, firstName, lastName)
}

func (s *stubUserService) SignIn(_ context.Context, email, password string) (string, error) {
	return s.signIn(email, password)
}

type stubAdminService struct {
	signUp func(email, password, firstName, lastName string) (*model.Admin, error)
	signIn func(email, password string) (string, error)
}

func (s *stubAdminService) SignUp(_ context.Context, email, password, firstName, lastName string) (*model.Admin, error) {
	return s.signUp(email, password, firstName, lastName)
}

func (s *stubAdminService) SignIn(_ context.Context, email, password string) (string, error) {
	return s.signIn(email, password)
}

type stubCourseService struct {
	create         func(creatorID string, c *model.Course) (*model.Course, error)
	updateContent  func(creatorID, courseID, content string) (*model.Course, error)
	delete         func(creatorID, courseID string) (*model.Course, error)
	listAll        func() ([]model.Course, error)
	imageUploadURL func(filename, contentType string) (string, string, error)
}

func (s *stubCourseService) Create(_ context.Context, creatorID string, c *model.Course) (*model.Course, error) {
	return s.create(creatorID, c)
}

func (s *stubCourseService) UpdateContent(_ context.Context, creatorID, courseID, content string) (*model.Course, error) {
	return s.updateContent(creatorID, courseID, content)
}

func (s *stubCourseService) Delete(_ context.Context, creatorID, courseID string) (*model.Course, error) {
	return s.delete(creatorID, courseID)
}

func (s *stubCourseService) ListAll(_ context.Context) ([]model.Course, error) {
	return s.listAll()
}

func (s *stubCourseService) ImageUploadURL(_ context.Context, filename, contentType string) (string, string, error) {
	return s.imageUploadURL(filename, contentType)
}

type stubPurchaseService struct {
	purchase      func(userID, courseID string) (*model.Purchase, error)
	listPurchased func(userID string) ([]model.Course, error)
}

func (s *stubPurchaseService) Purchase(_ context.Context, userID, courseID string) (*model.Purchase, error) {
	return s.purchase(userID, courseID)
}

func (s *stubPurchaseService) ListPurchased(_ context.Context, userID string) ([]model.Course, error) {
	return s.listPurchased(userID)
}
