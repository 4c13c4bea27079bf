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

type BloodRequestHandler struct {
	bloodRequestUsecase usecase.BloodRequestUsecase
	validator           *validator.CustomValidator
}

func NewBloodRequestHandler(bloodRequestUsecase usecase.BloodRequestUsecase, validator *validator.CustomValidator) *BloodRequestHandler {
	return &BloodRequestHandler{
		bloodRequestUsecase: bloodRequestUsecase,
		validator:           validator,
	}
}

// Create submits a new blood request
// @Summary Create a blood request
// @Description Submit a blood request against an approved hospital
// @Tags BloodRequests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBloodRequestRequest true "Create Blood Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /blood-requests [post]
func (h *BloodRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBloodRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.bloodRequestUsecase.Create(r.Context(), requesterID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrHospitalNotApproved:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create blood request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blood request created successfully", request)
}

// ListOwn lists the caller's blood requests
// @Summary List own blood requests
// @Description List blood requests created by the authenticated user
// @Tags BloodRequests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /blood-requests/me [get]
func (h *BloodRequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requests, err := h.bloodRequestUsecase.ListOwn(r.Context(), requesterID)
	if err != nil {
		response.InternalServerError(w, "Failed to list blood requests")
		return
	}

	response.Success(w, http.StatusOK, "Blood requests retrieved successfully", requests)
}

// ListForHospital lists requests targeting one hospital
// @Summary List hospital blood requests
// @Description List blood requests for a hospital (its admins or platform admins)
// @Tags BloodRequests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /hospitals/{id}/blood-requests [get]
func (h *BloodRequestHandler) ListForHospital(w http.ResponseWriter, r *http.Request) {
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

	requests, err := h.bloodRequestUsecase.ListForHospital(r.Context(), callerID, hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have access to this hospital")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to list blood requests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood requests retrieved successfully", requests)
}

// Verify marks a pending request as verified
// @Summary Verify a blood request
// @Description Transition a pending request to active (hospital admin of the request's hospital)
// @Tags BloodRequests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Blood Request ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /blood-requests/{id}/verify [post]
func (h *BloodRequestHandler) Verify(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requestID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blood request ID", nil)
		return
	}

	request, err := h.bloodRequestUsecase.Verify(r.Context(), callerID, requestID)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have access to this blood request")
		case usecase.ErrRequestNotPending:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to verify blood request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood request verified successfully", request)
}

// UpdateStatus fulfils or cancels a request
// @Summary Update blood request status
// @Description Mark a request fulfilled or cancelled
// @Tags BloodRequests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Blood Request ID"
// @Param request body dto.UpdateRequestStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /blood-requests/{id}/status [put]
func (h *BloodRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	requestID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blood request ID", nil)
		return
	}

	var req dto.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.bloodRequestUsecase.UpdateStatus(r.Context(), callerID, requestID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Blood request not found")
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "You don't have access to this blood request")
		case usecase.ErrRequestClosed:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update blood request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood request updated successfully", request)
}
