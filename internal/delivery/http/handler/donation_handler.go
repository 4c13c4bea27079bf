package handler

import (
	"encoding/json"
	"net/http"

	"lifelink-backend/internal/delivery/dto"
	"lifelink-backend/internal/delivery/http/middleware"
	"lifelink-backend/internal/usecase"
	"lifelink-backend/pkg/response"
	"lifelink-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DonationHandler struct {
	donationUsecase usecase.DonationUsecase
	validator       *validator.CustomValidator
}

func NewDonationHandler(donationUsecase usecase.DonationUsecase, validator *validator.CustomValidator) *DonationHandler {
	return &DonationHandler{
		donationUsecase: donationUsecase,
		validator:       validator,
	}
}

// Record registers a completed donation
// @Summary Record a donation
// @Description Record a completed donation at a hospital; the donor becomes recently_donated
// @Tags Donations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RecordDonationRequest true "Record Donation Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations [post]
func (h *DonationHandler) Record(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.RecordDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donation, err := h.donationUsecase.Record(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have access to this hospital")
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrDonorNotFound:
			response.NotFound(w, "Donor not found")
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to record donation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Donation recorded successfully", donation)
}

// ListOwn lists the caller's donation history
// @Summary List own donations
// @Description List the authenticated donor's donation history
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /donations/me [get]
func (h *DonationHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	donorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	donations, err := h.donationUsecase.ListOwn(r.Context(), donorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list donations")
		return
	}

	response.Success(w, http.StatusOK, "Donations retrieved successfully", donations)
}

// ListForHospital lists donations recorded at one hospital
// @Summary List hospital donations
// @Description List donations recorded at a hospital (its admins or platform admins)
// @Tags Donations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /hospitals/{id}/donations [get]
func (h *DonationHandler) ListForHospital(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	hospitalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	donations, err := h.donationUsecase.ListForHospital(r.Context(), callerID, hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have access to this hospital")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to list donations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Donations retrieved successfully", donations)
}
