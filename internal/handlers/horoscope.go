package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/personal-horoscope/internal/middlewares"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
)

//go:generate mockgen -source=horoscope.go -destination=horoscope_mock.go -package=handlers

// Bounds of the history window accepted from clients.
const (
	minHistoryDays = 1
	maxHistoryDays = 30
)

// DailyHoroscopeGetter resolves the horoscope of a day.
type DailyHoroscopeGetter interface {
	GetDailyHoroscope(ctx context.Context, userID uuid.UUID, sign models.ZodiacSign, date *time.Time) (*models.HoroscopeDB, error)
}

// HoroscopeHistoryGetter lists recent horoscopes.
type HoroscopeHistoryGetter interface {
	GetHoroscopeHistory(ctx context.Context, userID uuid.UUID, windowDays int) ([]models.HoroscopeDB, error)
}

// HoroscopeUpdater edits a stored horoscope.
type HoroscopeUpdater interface {
	UpdateHoroscope(ctx context.Context, id uuid.UUID, patch models.HoroscopePatch) (*models.HoroscopeDB, error)
}

// HoroscopeDeleter removes a stored horoscope.
type HoroscopeDeleter interface {
	DeleteHoroscope(ctx context.Context, id uuid.UUID) error
}

// NewGetTodayHoroscopeHandler returns an HTTP handler for the daily horoscope.
// @Summary Get daily horoscope
// @Description Returns the horoscope of the authenticated user for the given day, creating it on first request
// @Tags horoscope
// @Produce json
// @Param date query string false "Day in YYYY-MM-DD, today when omitted"
// @Success 200 {object} models.HoroscopeDB "Horoscope of the day"
// @Failure 400 {object} handlers.ErrorResponse "Invalid date format"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /horoscope/today [get]
// @Security BearerAuth
func NewGetTodayHoroscopeHandler(svc DailyHoroscopeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var date *time.Time
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := parseDate(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
				return
			}
			date = &parsed
		}

		h, err := svc.GetDailyHoroscope(r.Context(), claims.UserID, claims.ZodiacSign, date)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, h)
	}
}

// NewGetHoroscopeHistoryHandler returns an HTTP handler for recent horoscopes.
// @Summary Get horoscope history
// @Description Returns the horoscopes of the last N days, newest first
// @Tags horoscope
// @Produce json
// @Param days query int false "Window size in days, 1..30" default(7)
// @Success 200 {array} models.HoroscopeDB "Horoscopes, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid days"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /horoscope/history [get]
// @Security BearerAuth
func NewGetHoroscopeHistoryHandler(svc HoroscopeHistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		days := 0
		if raw := r.URL.Query().Get("days"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < minHistoryDays || n > maxHistoryDays {
				writeError(w, http.StatusBadRequest, "days must be an integer between 1 and 30")
				return
			}
			days = n
		}

		history, err := svc.GetHoroscopeHistory(r.Context(), claims.UserID, days)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, history)
	}
}

// NewUpdateHoroscopeHandler returns an HTTP handler that edits a horoscope.
// @Summary Update horoscope
// @Description Applies the given fields to a stored horoscope
// @Tags horoscope
// @Accept json
// @Produce json
// @Param id path string true "Horoscope ID"
// @Param patch body models.HoroscopePatch true "Fields to change"
// @Success 200 {object} models.HoroscopeDB "Updated horoscope"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Horoscope not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /horoscope/{id} [put]
// @Security BearerAuth
func NewUpdateHoroscopeHandler(svc HoroscopeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid horoscope id")
			return
		}

		var patch models.HoroscopePatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		h, err := svc.UpdateHoroscope(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, h)
	}
}

// NewDeleteHoroscopeHandler returns an HTTP handler that deletes a horoscope.
// @Summary Delete horoscope
// @Tags horoscope
// @Param id path string true "Horoscope ID"
// @Success 204 "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Horoscope not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /horoscope/{id} [delete]
// @Security BearerAuth
func NewDeleteHoroscopeHandler(svc HoroscopeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid horoscope id")
			return
		}

		if err := svc.DeleteHoroscope(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
