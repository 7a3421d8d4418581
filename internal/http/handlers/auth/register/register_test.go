package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/identity-service/internal/storage/repository"
)

// Мок сервиса с методом Register
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, fullName, email, password string) (string, error) {
	args := m.Called(ctx, username, fullName, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func validRequest() Request {
	return Request{
		Username:        "alice",
		FullName:        "Alice A",
		Email:           "alice@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockToken      string
		mockErr        error
		callsService   bool
		wantStatusCode int
		wantStatus     string
		wantMessage    string
		wantErrors     []string
		wantData       map[string]any
	}{
		{
			name:           "valid registration returns token",
			requestBody:    validRequest(),
			mockToken:      "jwt-token",
			callsService:   true,
			wantStatusCode: http.StatusOK,
			wantStatus:     "OK",
			wantData: map[string]any{
				"token":    "jwt-token",
				"username": "alice",
			},
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantMessage:    "invalid request body",
		},
		{
			name: "password mismatch",
			requestBody: Request{
				Username:        "alice",
				FullName:        "Alice A",
				Email:           "alice@x.com",
				Password:        "secret1",
				ConfirmPassword: "secret2",
			},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantErrors:     []string{"field ConfirmPassword does not match Password"},
		},
		{
			name: "all violations reported together",
			requestBody: Request{
				Username:        "al",
				FullName:        "A",
				Email:           "not-an-email",
				Password:        "123",
				ConfirmPassword: "456",
			},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantErrors: []string{
				"field Username must be at least 3 characters",
				"field FullName must be at least 3 characters",
				"field Email must be a valid email address",
				"field Password must be at least 6 characters",
				"field ConfirmPassword does not match Password",
			},
		},
		{
			name: "password over bcrypt input limit",
			requestBody: Request{
				Username:        "alice",
				FullName:        "Alice A",
				Email:           "alice@x.com",
				Password:        strings.Repeat("p", 80),
				ConfirmPassword: strings.Repeat("p", 80),
			},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantErrors:     []string{"field Password must be at most 72 characters"},
		},
		{
			name:           "duplicate username",
			requestBody:    validRequest(),
			mockErr:        fmt.Errorf("services.auth.Register: %w", repository.ErrUsernameTaken),
			callsService:   true,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantErrors:     []string{"username already taken"},
		},
		{
			name:           "duplicate email",
			requestBody:    validRequest(),
			mockErr:        fmt.Errorf("services.auth.Register: %w", repository.ErrEmailTaken),
			callsService:   true,
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     "Error",
			wantErrors:     []string{"email already taken"},
		},
		{
			name:           "storage unavailable",
			requestBody:    validRequest(),
			mockErr:        errors.New("connection refused"),
			callsService:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     "Error",
			wantMessage:    "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.callsService {
				authMock.On("Register", mock.Anything,
					"alice", "Alice A", "alice@x.com", "secret1",
				).Return(tt.mockToken, tt.mockErr).Once()
			}
			handler := New(newNoopLogger(), authMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got["message"])
			} else {
				assert.Nil(t, got["message"])
			}

			if tt.wantErrors != nil {
				rawErrs, ok := got["errors"].([]any)
				assert.True(t, ok)
				var gotErrs []string
				for _, e := range rawErrs {
					gotErrs = append(gotErrs, e.(string))
				}
				assert.ElementsMatch(t, tt.wantErrors, gotErrs)
			} else {
				assert.Nil(t, got["errors"])
			}

			if tt.wantData != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k])
				}
			} else {
				assert.Nil(t, got["data"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
