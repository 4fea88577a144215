package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ekuzmina/fundgo/internal/domain"
	"github.com/ekuzmina/fundgo/internal/dto"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"login":"alice","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "alice", "secret").
					Return(&domain.User{ID: 1, Login: "alice"}, nil)
				service.EXPECT().
					Login(gomock.Any(), "alice", "secret").
					Return("token-123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":"alice","password":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing credentials",
			body:         `{"login":"","password":""}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"alice","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "alice", "secret").
					Return(nil, domain.ErrUserExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"login":"alice","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "alice", "secret").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AuthResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "token-123", body.Token)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"login":"alice","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(context.Background(), "alice", "secret").
					Return("token-123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Bad credentials",
			body: `{"login":"alice","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(context.Background(), "alice", "wrong").
					Return("", domain.ErrBadCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Internal server error",
			body: `{"login":"alice","password":"secret"}`,
			prepareMock: func() {
				service.EXPECT().
					Login(context.Background(), "alice", "secret").
					Return("", errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AuthResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "token-123", body.Token)
			}
		})
	}
}
