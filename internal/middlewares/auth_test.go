package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/personal-horoscope/internal/errs"
	"github.com/sbilibin2017/personal-horoscope/internal/jwt"
	"github.com/sbilibin2017/personal-horoscope/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	claims := &jwt.Claims{UserID: uuid.New(), Email: "ann@example.com", ZodiacSign: models.Capricorn}

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener, u *MockUserGetter)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectedBody:     `{"error":"Unauthorized"}`,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectedBody:     `{"error":"Unauthorized"}`,
			expectNextCalled: false,
		},
		{
			name: "DeletedUser",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("staletoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "staletoken").
					Return(claims, nil)
				u.EXPECT().GetByID(gomock.Any(), claims.UserID).
					Return(nil, errs.ErrNotFound)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectedBody:     `{"error":"Unauthorized"}`,
			expectNextCalled: false,
		},
		{
			name: "UserLookupFails",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
				u.EXPECT().GetByID(gomock.Any(), claims.UserID).
					Return(nil, errs.Storage(errors.New("connection reset")))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectedBody:     `{"error":"Internal server error"}`,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener, u *MockUserGetter) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(claims, nil)
				u.EXPECT().GetByID(gomock.Any(), claims.UserID).
					Return(&models.UserDB{UserID: claims.UserID, Email: claims.Email}, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			// Wrap a next handler to check if it was called
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Same(t, claims, GetClaimsFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockUsers)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if !tt.expectNextCalled {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetClaimsFromContext(t *testing.T) {
	assert.Nil(t, GetClaimsFromContext(context.Background()))

	claims := &jwt.Claims{UserID: uuid.New()}
	assert.Same(t, claims, GetClaimsFromContext(WithClaims(context.Background(), claims)))
}
