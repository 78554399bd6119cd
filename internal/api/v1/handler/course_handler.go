package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type CourseHandler struct {
	courseService   service.CourseService
	purchaseService service.PurchaseService
	validate        *validator.Validate
	logger          zerolog.Logger
}

func NewCourseHandler(courseService service.CourseService, purchaseService service.PurchaseService, v *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService:   courseService,
		purchaseService: purchaseService,
		validate:        v,
		logger:          logger.With().Str("handler", "CourseHandler").Logger(),
	}
}

// RegisterRoutes mounts the /course route group. The catalogue is public;
// purchasing and the purchased list require a user token.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, userMw func(http.Handler) http.Handler) {
	mux.HandleFunc("/course/all", h.listAll)
	mux.Handle("/course/my", userMw(http.HandlerFunc(h.listPurchased)))
	mux.Handle("/course/purchase", userMw(http.HandlerFunc(h.purchase)))
}

func (h *CourseHandler) listAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	courses, err := h.courseService.ListAll(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Course listing failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Courses fetched successfully",
		"courses": courses,
	})
}

func (h *CourseHandler) listPurchased(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	userID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	courses, err := h.purchaseService.ListPurchased(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("Purchased course listing failed")
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respond(w, http.StatusOK, map[string]any{
		"message": "Purchased courses fetched successfully",
		"courses": courses,
	})
}

func (h *CourseHandler) purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}
	userID, ok := principalID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PurchaseCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	purchase, err := h.purchaseService.Purchase(r.Context(), userID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCourseID):
			respondError(w, http.StatusBadRequest, "Invalid course ID")
		case errors.Is(err, service.ErrAlreadyPurchased):
			respond(w, http.StatusOK, map[string]any{
				"message": "You have already purchased this course",
			})
		default:
			h.logger.Error().Err(err).Msg("Course purchase failed")
			respondError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	respond(w, http.StatusCreated, map[string]any{
		"message":  "Course purchased successfully",
		"purchase": purchase,
	})
}
