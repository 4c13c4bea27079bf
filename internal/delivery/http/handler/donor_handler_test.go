package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/delivery/http/middleware"
	"lifelink-backend/internal/usecase"
	"lifelink-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDonorUsecase struct {
	findResponse   *dto.FindDonorsResponse
	notifyResponse *dto.NotifyDonorsResponse
	notifyErr      error
}

func (f *fakeDonorUsecase) FindDonors(ctx context.Context, req *dto.FindDonorsRequest) (*dto.FindDonorsResponse, error) {
	return f.findResponse, nil
}

func (f *fakeDonorUsecase) NotifyDonors(ctx context.Context, callerID uuid.UUID, req *dto.NotifyDonorsRequest) (*dto.NotifyDonorsResponse, error) {
	return f.notifyResponse, f.notifyErr
}

func TestFindDonorsRejectsMissingBloodGroup(t *testing.T) {
	h := NewDonorHandler(&fakeDonorUsecase{}, validator.NewValidator())

	body := bytes.NewBufferString(`{"radius_km": 10}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/find-donors", body)
	rec := httptest.NewRecorder()

	h.FindDonors(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindDonorsRejectsInvalidBloodGroup(t *testing.T) {
	h := NewDonorHandler(&fakeDonorUsecase{}, validator.NewValidator())

	body := bytes.NewBufferString(`{"blood_group_needed": "Z+"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/find-donors", body)
	rec := httptest.NewRecorder()

	h.FindDonors(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindDonorsReturnsCompatibleSet(t *testing.T) {
	h := NewDonorHandler(&fakeDonorUsecase{
		findResponse: &dto.FindDonorsResponse{
			Donors:           []dto.DonorResponse{},
			BloodGroupNeeded: "A-",
			CompatibleTypes:  []string{"A-", "O-"},
		},
	}, validator.NewValidator())

	body := bytes.NewBufferString(`{"blood_group_needed": "A-"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/find-donors", body)
	rec := httptest.NewRecorder()

	h.FindDonors(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data dto.FindDonorsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []string{"A-", "O-"}, response.Data.CompatibleTypes)
	assert.NotNil(t, response.Data.Donors)
}

func TestFindDonorsAllowedForIndividualCaller(t *testing.T) {
	h := NewDonorHandler(&fakeDonorUsecase{
		findResponse: &dto.FindDonorsResponse{
			Donors:           []dto.DonorResponse{},
			BloodGroupNeeded: "O+",
			CompatibleTypes:  []string{"O+", "O-"},
		},
	}, validator.NewValidator())

	body := bytes.NewBufferString(`{"blood_group_needed": "O+"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/find-donors", body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.UserRoleKey, "individual")
	rec := httptest.NewRecorder()

	h.FindDonors(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotifyDonorsAllowedForIndividualCaller(t *testing.T) {
	h := NewDonorHandler(&fakeDonorUsecase{
		notifyResponse: &dto.NotifyDonorsResponse{
			Message:            "Notified 1 donors",
			NotificationsCount: 1,
		},
	}, validator.NewValidator())

	payload := map[string]interface{}{
		"request_id": uuid.New().String(),
		"donor_ids":  []string{uuid.New().String()},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notify-donors", bytes.NewReader(raw))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, middleware.UserRoleKey, "individual")
	rec := httptest.NewRecorder()

	h.NotifyDonors(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotifyDonorsUnknownRequest(t *testing.T) {
	h := NewDonorHandler(&fakeDonorUsecase{notifyErr: usecase.ErrRequestNotFound}, validator.NewValidator())

	payload := map[string]interface{}{
		"request_id": uuid.New().String(),
		"donor_ids":  []string{uuid.New().String()},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notify-donors", bytes.NewReader(raw))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	rec := httptest.NewRecorder()

	h.NotifyDonors(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotifyDonorsRejectsEmptyDonorList(t *testing.T) {
	h := NewDonorHandler(&fakeDonorUsecase{}, validator.NewValidator())

	payload := map[string]interface{}{
		"request_id": uuid.New().String(),
		"donor_ids":  []string{},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/notify-donors", bytes.NewReader(raw))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	rec := httptest.NewRecorder()

	h.NotifyDonors(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
