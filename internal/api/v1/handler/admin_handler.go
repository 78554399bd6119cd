package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type AdminHandler struct {
	adminService  service.AdminService
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

func NewAdminHandler(adminService service.AdminService, courseService service.CourseService, v *validator.Validate, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		courseService: courseService,
		validate:      v,
		logger:        logger.With().Str("handler", "AdminHandler").Logger(),
	}
}

// RegisterRoutes mounts the /admin route group. Signup and signin are open;
// course management routes sit behind the admin gate.
func (h *AdminHandler) RegisterRoutes(mux *http.ServeMux, adminMw func(http.Handler) http.Handler) {
	mux.HandleFunc("/admin/signup", h.signup)
	mux.HandleFunc("/admin/signin", h.signin)
	mux.Handle("/admin/create-course", adminMw(http.HandlerFunc(h.createCourse)))
	mux.Handle("/admin/delete-course", adminMw(http.HandlerFunc(h.deleteCourse)))
	mux.Handle("/admin/add-course-content", adminMw(http.HandlerFunc(h.addCourseContent)))
	mux.Handle("/admin/course-image-upload-url", adminMw(http.HandlerFunc(h.imageUploadURL)))
}

func (h *AdminHandler) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	admin, err := h.adminService.SignUp(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		h.logger.Error().Err(err).Msg("Admin signup failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}

func (h *AdminHandler) signin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req dto.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	token, err := h.adminService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error().Err(err).Msg("Admin signin failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Signin successful",
		"token":   token,
	})
}

func (h *AdminHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	adminID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	course, err := h.courseService.Create(r.Context(), adminID, &model.Course{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		CourseContent: req.CourseContent,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Course creation failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"message": "Course created successfully",
		"course":  course,
	})
}

func (h *AdminHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	adminID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DeleteCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	course, err := h.courseService.Delete(r.Context(), adminID, req.CourseID)
	if err != nil {
		h.respondCourseMutationError(w, err, "Course deletion failed")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Course deleted successfully",
		"course":  course,
	})
}

func (h *AdminHandler) addCourseContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	adminID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.UpdateCourseContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	course, err := h.courseService.UpdateContent(r.Context(), adminID, req.CourseID, req.CourseContent)
	if err != nil {
		h.respondCourseMutationError(w, err, "Course content update failed")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Course content updated successfully",
		"course":  course,
	})
}

func (h *AdminHandler) imageUploadURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	var req dto.ImageUploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	uploadURL, imageURL, err := h.courseService.ImageUploadURL(r.Context(), req.Filename, req.ContentType)
	if err != nil {
		h.logger.Error().Err(err).Msg("Image upload URL generation failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message":   "Upload URL generated",
		"uploadUrl": uploadURL,
		"imageUrl":  imageURL,
	})
}

// respondCourseMutationError maps course mutation failures; a foreign course
// gets the same response as a missing one.
func (h *AdminHandler) respondCourseMutationError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidCourseID):
		respondError(w, http.StatusBadRequest, "Invalid course ID")
	case errors.Is(err, service.ErrCourseNotOwned):
		respondError(w, http.StatusUnauthorized, "Course not found")
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		respondError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
