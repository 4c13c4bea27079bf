package handler

import (
	"encoding/json"
	"net/http"

	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/delivery/http/middleware"
	"lifelink-backend/internal/usecase"
	"lifelink-backend/pkg/response"
	"lifelink-backend/pkg/validator"
)

type DonorHandler struct {
	donorUsecase usecase.DonorUsecase
	validator    *validator.CustomValidator
}

func NewDonorHandler(donorUsecase usecase.DonorUsecase, validator *validator.CustomValidator) *DonorHandler {
	return &DonorHandler{
		donorUsecase: donorUsecase,
		validator:    validator,
	}
}

// FindDonors queries for compatible, available donors
// @Summary Find compatible donors
// @Description Find complete, available donor profiles compatible with the needed blood group
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.FindDonorsRequest true "Find Donors Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /find-donors [post]
func (h *DonorHandler) FindDonors(w http.ResponseWriter, r *http.Request) {
	var req dto.FindDonorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.donorUsecase.FindDonors(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to find donors")
		return
	}

	response.Success(w, http.StatusOK, "Donors retrieved successfully", result)
}

// NotifyDonors fans out a notification to the selected donors
// @Summary Notify donors
// @Description Send a blood request notification to each selected donor
// @Tags Donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.NotifyDonorsRequest true "Notify Donors Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notify-donors [post]
func (h *DonorHandler) NotifyDonors(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.NotifyDonorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.donorUsecase.NotifyDonors(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		default:
			response.InternalServerError(w, "Failed to notify donors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donors notified successfully", result)
}
