package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/personal-horoscope/internal/models"
	"github.com/sbilibin2017/personal-horoscope/internal/services"
)

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string, birthdate time.Time) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Birthdate, YYYY-MM-DD
	// required: true
	// default: 1990-01-01
	Birthdate string `json:"birthdate"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	// default: success
	Status string         `json:"status"`
	Data   *models.UserDB `json:"data"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The zodiac sign is derived from the birthdate. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User registration request"
// @Success 201 {object} handlers.SignupResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already in use / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var birthdate time.Time
		if req.Birthdate != "" {
			parsed, err := parseDate(req.Birthdate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid birthdate format. Use YYYY-MM-DD")
				return
			}
			birthdate = parsed
		}

		user, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, birthdate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusBadRequest, "Email already in use")
			default:
				writeServiceError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Status: "success",
			Data:   user,
		})
	}
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
