package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/middleware"

	"github.com/go-playground/validator/v10"
)

func respond(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]any{"error": msg})
}

// respondValidationError reports every violated field, not just the first.
func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, "Validation failed")
		return
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = validationMessage(fe)
	}
	respond(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation failed",
		"details": details,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "gt":
		return "Must be greater than " + fe.Param()
	case "url":
		return "Must be a valid URL"
	case "startswith":
		return "Must start with " + fe.Param()
	default:
		return "Invalid value"
	}
}

// principalID pulls the authenticated principal's id out of the request
// context, where the auth gate put it.
func principalID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(middleware.PrincipalContextKey).(string)
	return id, ok && id != ""
}
