package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/jwt"
	"github.com/sbilibin2017/personal-horoscope/internal/middlewares"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withClaims(r *http.Request, claims *jwt.Claims) *http.Request {
	return r.WithContext(middlewares.WithClaims(r.Context(), claims))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetTodayHoroscopeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: uuid.New(), ZodiacSign: models.Capricorn}
	day := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	stored := &models.HoroscopeDB{ID: uuid.New(), UserID: claims.UserID, Date: day, ZodiacSign: models.Capricorn, Content: "text"}

	tests := []struct {
		name         string
		url          string
		claims       *jwt.Claims
		mockSetup    func(m *MockDailyHoroscopeGetter)
		expectedCode int
		expectedErr  string
	}{
		{
			name:   "today",
			url:    "/horoscope/today",
			claims: claims,
			mockSetup: func(m *MockDailyHoroscopeGetter) {
				m.EXPECT().GetDailyHoroscope(gomock.Any(), claims.UserID, models.Capricorn, (*time.Time)(nil)).
					Return(stored, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "explicit date",
			url:    "/horoscope/today?date=2024-06-15",
			claims: claims,
			mockSetup: func(m *MockDailyHoroscopeGetter) {
				m.EXPECT().GetDailyHoroscope(gomock.Any(), claims.UserID, models.Capricorn, &day).
					Return(stored, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid date",
			url:          "/horoscope/today?date=15.06.2024",
			claims:       claims,
			mockSetup:    func(m *MockDailyHoroscopeGetter) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid date format. Use YYYY-MM-DD",
		},
		{
			name:         "no claims",
			url:          "/horoscope/today",
			mockSetup:    func(m *MockDailyHoroscopeGetter) {},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "Unauthorized",
		},
		{
			name:   "storage failure",
			url:    "/horoscope/today",
			claims: claims,
			mockSetup: func(m *MockDailyHoroscopeGetter) {
				m.EXPECT().GetDailyHoroscope(gomock.Any(), claims.UserID, models.Capricorn, gomock.Any()).
					Return(nil, errs.Storage(errors.New("connection reset")))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDailyHoroscopeGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.claims != nil {
				req = withClaims(req, tt.claims)
			}
			w := httptest.NewRecorder()

			NewGetTodayHoroscopeHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, decodeError(t, w).Error)
				return
			}

			var got models.HoroscopeDB
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, stored.ID, got.ID)
			assert.True(t, got.Date.Equal(day))
		})
	}
}

func TestGetHoroscopeHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: uuid.New(), ZodiacSign: models.Leo}
	history := []models.HoroscopeDB{{ID: uuid.New()}, {ID: uuid.New()}}

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockHoroscopeHistoryGetter)
		expectedCode int
	}{
		{
			name: "default window",
			url:  "/horoscope/history",
			mockSetup: func(m *MockHoroscopeHistoryGetter) {
				m.EXPECT().GetHoroscopeHistory(gomock.Any(), claims.UserID, 0).Return(history, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "explicit window",
			url:  "/horoscope/history?days=30",
			mockSetup: func(m *MockHoroscopeHistoryGetter) {
				m.EXPECT().GetHoroscopeHistory(gomock.Any(), claims.UserID, 30).Return(history, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "zero days",
			url:          "/horoscope/history?days=0",
			mockSetup:    func(m *MockHoroscopeHistoryGetter) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "too many days",
			url:          "/horoscope/history?days=31",
			mockSetup:    func(m *MockHoroscopeHistoryGetter) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "not a number",
			url:          "/horoscope/history?days=week",
			mockSetup:    func(m *MockHoroscopeHistoryGetter) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHoroscopeHistoryGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := withClaims(httptest.NewRequest(http.MethodGet, tt.url, nil), claims)
			w := httptest.NewRecorder()

			NewGetHoroscopeHistoryHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusOK {
				assert.Equal(t, "days must be an integer between 1 and 30", decodeError(t, w).Error)
				return
			}

			var got []models.HoroscopeDB
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			require.Len(t, got, 2)
			assert.Equal(t, history[0].ID, got[0].ID)
		})
	}
}

func TestUpdateHoroscopeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	mood := "Calm"

	tests := []struct {
		name         string
		id           string
		body         string
		mockSetup    func(m *MockHoroscopeUpdater)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			id:   id.String(),
			body: `{"mood":"Calm"}`,
			mockSetup: func(m *MockHoroscopeUpdater) {
				m.EXPECT().UpdateHoroscope(gomock.Any(), id, models.HoroscopePatch{Mood: &mood}).
					Return(&models.HoroscopeDB{ID: id, Mood: &mood}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid id",
			id:           "not-a-uuid",
			body:         `{"mood":"Calm"}`,
			mockSetup:    func(m *MockHoroscopeUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid horoscope id",
		},
		{
			name:         "invalid body",
			id:           id.String(),
			body:         `{"compatibility":"high"}`,
			mockSetup:    func(m *MockHoroscopeUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
		{
			name: "validation failure",
			id:   id.String(),
			body: `{"compatibility":11}`,
			mockSetup: func(m *MockHoroscopeUpdater) {
				m.EXPECT().UpdateHoroscope(gomock.Any(), id, gomock.Any()).
					Return(nil, errs.NewValidationError("compatibility", "must be at most 10"))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Validation failed",
		},
		{
			name: "not found",
			id:   id.String(),
			body: `{"mood":"Calm"}`,
			mockSetup: func(m *MockHoroscopeUpdater) {
				m.EXPECT().UpdateHoroscope(gomock.Any(), id, gomock.Any()).Return(nil, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "Horoscope not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHoroscopeUpdater(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Put("/horoscope/{id}", NewUpdateHoroscopeHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, "/horoscope/"+tt.id, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedErr != "" {
				resp := decodeError(t, w)
				assert.Equal(t, tt.expectedErr, resp.Error)
				if tt.expectedErr == "Validation failed" {
					assert.Equal(t, "must be at most 10", resp.Fields["compatibility"])
				}
				return
			}

			var got models.HoroscopeDB
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, id, got.ID)
			assert.Equal(t, "Calm", *got.Mood)
		})
	}
}

func TestDeleteHoroscopeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockHoroscopeDeleter)
		expectedCode int
	}{
		{
			name: "deleted",
			id:   id.String(),
			mockSetup: func(m *MockHoroscopeDeleter) {
				m.EXPECT().DeleteHoroscope(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "not found",
			id:   id.String(),
			mockSetup: func(m *MockHoroscopeDeleter) {
				m.EXPECT().DeleteHoroscope(gomock.Any(), id).Return(errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			id:           "42",
			mockSetup:    func(m *MockHoroscopeDeleter) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHoroscopeDeleter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/horoscope/{id}", NewDeleteHoroscopeHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/horoscope/"+tt.id, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestGetZodiacSignsHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/horoscope/zodiac-signs", nil)
	w := httptest.NewRecorder()

	NewGetZodiacSignsHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []ZodiacSignItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 12)
	assert.Equal(t, ZodiacSignItem{Key: "ARIES", Value: "Aries"}, items[0])
	assert.Equal(t, ZodiacSignItem{Key: "PISCES", Value: "Pisces"}, items[11])
}
