package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/delivery/http/middleware"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/response"
	"healthconnect/pkg/validator"

	"github.com/google/uuid"
)

type stubAuthUsecase struct {
	updateProfile func(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

func (s *stubAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return s.updateProfile(ctx, userID, req)
}

func profileRequest(t *testing.T, userID *uuid.UUID, body interface{}) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/auth/me", bytes.NewReader(payload))
	if userID != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, *userID))
	}
	return req
}

func TestUpdateProfile(t *testing.T) {
	userID := uuid.New()

	stub := &stubAuthUsecase{
		updateProfile: func(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
			if id != userID {
				t.Errorf("userID = %s, want %s", id, userID)
			}
			return &dto.UserResponse{
				ID:        id,
				FullName:  req.FullName,
				Phone:     req.Phone,
				CitizenID: req.CitizenID,
			}, nil
		},
	}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, profileRequest(t, &userID, dto.UpdateProfileRequest{
		FullName:  "Somsri Jaidee",
		Phone:     "0812345678",
		CitizenID: "1103700123456",
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body)
	}

	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T, want object", resp.Data)
	}
	if data["full_name"] != "Somsri Jaidee" {
		t.Errorf("full_name = %v", data["full_name"])
	}
	if data["citizen_id"] != "1103700123456" {
		t.Errorf("citizen_id = %v", data["citizen_id"])
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateProfileRequest
	}{
		{"missing full name", dto.UpdateProfileRequest{Phone: "0812345678"}},
		{"full name too short", dto.UpdateProfileRequest{FullName: "x"}},
		{"citizen id wrong length", dto.UpdateProfileRequest{FullName: "Somsri Jaidee", CitizenID: "123"}},
		{"citizen id not numeric", dto.UpdateProfileRequest{FullName: "Somsri Jaidee", CitizenID: "11037001234ab"}},
	}

	userID := uuid.New()
	stub := &stubAuthUsecase{
		updateProfile: func(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
			t.Fatal("usecase should not run on invalid input")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.UpdateProfile(rec, profileRequest(t, &userID, tt.req))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestUpdateProfileUserNotFound(t *testing.T) {
	userID := uuid.New()
	stub := &stubAuthUsecase{
		updateProfile: func(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
			return nil, usecase.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, profileRequest(t, &userID, dto.UpdateProfileRequest{FullName: "Somsri Jaidee"}))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateProfileWithoutAuthContext(t *testing.T) {
	stub := &stubAuthUsecase{
		updateProfile: func(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
			t.Fatal("usecase should not run without an authenticated user")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, profileRequest(t, nil, dto.UpdateProfileRequest{FullName: "Somsri Jaidee"}))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
