package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/model"
	"app/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCourseMux(courseSvc service.CourseService, purchaseSvc service.PurchaseService, gate func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	NewCourseHandler(courseSvc, purchaseSvc, newValidate(), zerolog.Nop()).RegisterRoutes(mux, gate)
	return mux
}

func TestCourseListAll(t *testing.T) {
	courseSvc := &stubCourseService{
		listAll: func() ([]model.Course, error) {
			return []model.Course{
				{ID: primitive.NewObjectID(), Title: "Go from scratch"},
				{ID: primitive.NewObjectID(), Title: "Advanced Go"},
			}, nil
		},
	}
	mux := newCourseMux(courseSvc, &stubPurchaseService{}, withPrincipal(""))

	req := httptest.NewRequest(http.MethodGet, "/course/all", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Message string         `json:"message"`
		Courses []model.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Courses, 2)
}

func TestCourseListAllStoreFailure(t *testing.T) {
	courseSvc := &stubCourseService{
		listAll: func() ([]model.Course, error) { return nil, assert.AnError },
	}
	mux := newCourseMux(courseSvc, &stubPurchaseService{}, withPrincipal(""))

	req := httptest.NewRequest(http.MethodGet, "/course/all", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	// Store failures are opaque to the caller.
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, rr.Body.String())
}

func TestCoursePurchase(t *testing.T) {
	userID := primitive.NewObjectID()
	courseID := primitive.NewObjectID()
	purchaseSvc := &stubPurchaseService{
		purchase: func(gotUser, gotCourse string) (*model.Purchase, error) {
			assert.Equal(t, userID.Hex(), gotUser)
			assert.Equal(t, courseID.Hex(), gotCourse)
			return &model.Purchase{ID: primitive.NewObjectID(), UserID: userID, CourseID: courseID}, nil
		},
	}
	mux := newCourseMux(&stubCourseService{}, purchaseSvc, withPrincipal(userID.Hex()))

	body := `{"courseId":"` + courseID.Hex() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/course/purchase", strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "Course purchased successfully")
}

func TestCoursePurchaseAlreadyPurchased(t *testing.T) {
	purchaseSvc := &stubPurchaseService{
		purchase: func(_, _ string) (*model.Purchase, error) { return nil, service.ErrAlreadyPurchased },
	}
	mux := newCourseMux(&stubCourseService{}, purchaseSvc, withPrincipal(primitive.NewObjectID().Hex()))

	body := `{"courseId":"` + primitive.NewObjectID().Hex() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/course/purchase", strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"You have already purchased this course"}`, rr.Body.String())
}

func TestCoursePurchaseInvalidID(t *testing.T) {
	purchaseSvc := &stubPurchaseService{
		purchase: func(_, _ string) (*model.Purchase, error) { return nil, service.ErrInvalidCourseID },
	}
	mux := newCourseMux(&stubCourseService{}, purchaseSvc, withPrincipal(primitive.NewObjectID().Hex()))

	req := httptest.NewRequest(http.MethodPost, "/course/purchase", strings.NewReader(`{"courseId":"not-hex"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid course ID"}`, rr.Body.String())
}

func TestCourseListPurchased(t *testing.T) {
	userID := primitive.NewObjectID()
	purchaseSvc := &stubPurchaseService{
		listPurchased: func(gotUser string) ([]model.Course, error) {
			assert.Equal(t, userID.Hex(), gotUser)
			return []model.Course{{ID: primitive.NewObjectID(), Title: "bought"}}, nil
		},
	}
	mux := newCourseMux(&stubCourseService{}, purchaseSvc, withPrincipal(userID.Hex()))

	req := httptest.NewRequest(http.MethodGet, "/course/my", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bought")
}

func TestCoursePurchaseRejectsGet(t *testing.T) {
	mux := newCourseMux(&stubCourseService{}, &stubPurchaseService{}, withPrincipal(primitive.NewObjectID().Hex()))

	req := httptest.NewRequest(http.MethodGet, "/course/purchase", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
