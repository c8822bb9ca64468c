package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestTokenMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := NewMockValidator(ctrl)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectNext   bool
	}{
		{
			name: "Valid token",
			url:  "/clientes/1?token=good",
			prepareMock: func() {
				validator.EXPECT().Validate(gomock.Any(), "good").Return(true)
			},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name: "Invalid token",
			url:  "/clientes/1?token=bad",
			prepareMock: func() {
				validator.EXPECT().Validate(gomock.Any(), "bad").Return(false)
			},
			expectedCode: http.StatusUnauthorized,
			expectNext:   false,
		},
		{
			name:         "Missing token",
			url:          "/clientes/1",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
			expectNext:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			TokenMiddleware(validator)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectNext, called)
			if !tt.expectNext {
				assert.Contains(t, w.Body.String(), "Unauthorized")
			}
		})
	}
}
