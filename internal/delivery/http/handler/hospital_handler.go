package handler

import (
	"context"
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

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// Apply handles a hospital registration application
// @Summary Apply as a hospital
// @Description Submit a hospital application for platform review
// @Tags Hospitals
// @Accept json
// @Produce json
// @Param request body dto.ApplyHospitalRequest true "Apply Hospital Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /hospitals [post]
func (h *HospitalHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.Apply(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrLicenseExists:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to submit hospital application")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hospital application submitted successfully", hospital)
}

// ListApproved lists approved hospitals
// @Summary List approved hospitals
// @Description List hospitals that passed platform review
// @Tags Hospitals
// @Produce json
// @Success 200 {object} response.Response
// @Router /hospitals [get]
func (h *HospitalHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListApproved(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// ListAll lists every hospital regardless of status
// @Summary List all hospitals
// @Description List all hospitals including pending and suspended (platform admin only)
// @Tags Hospitals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/hospitals [get]
func (h *HospitalHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	hospitals, err := h.hospitalUsecase.ListAll(r.Context(), callerID)
	if err != nil {
		switch err {
		case usecase.ErrNotAuthorized:
			response.Forbidden(w, "Only platform admins can list all hospitals")
		default:
			response.InternalServerError(w, "Failed to list hospitals")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// Approve approves a pending hospital application
// @Summary Approve a hospital
// @Description Approve a pending hospital application (platform admin only)
// @Tags Hospitals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/hospitals/{id}/approve [put]
func (h *HospitalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.hospitalUsecase.Approve, "Hospital approved successfully")
}

// Suspend suspends a hospital
// @Summary Suspend a hospital
// @Description Suspend an approved hospital (platform admin only)
// @Tags Hospitals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/hospitals/{id}/suspend [put]
func (h *HospitalHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.hospitalUsecase.Suspend, "Hospital suspended successfully")
}

// Delete removes a hospital
// @Summary Delete a hospital
// @Description Delete a hospital and its dependent records (platform admin only)
// @Tags Hospitals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/hospitals/{id} [delete]
func (h *HospitalHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.hospitalUsecase.Delete(r.Context(), callerID, hospitalID); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Hospital deleted successfully", nil)
}

type reviewFunc func(ctx context.Context, callerID, hospitalID uuid.UUID) (*dto.HospitalResponse, error)

func (h *HospitalHandler) review(w http.ResponseWriter, r *http.Request, fn reviewFunc, message string) {
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

	hospital, err := fn(r.Context(), callerID, hospitalID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, message, hospital)
}

func (h *HospitalHandler) writeError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrNotAuthorized:
		response.Forbidden(w, "Only platform admins can manage hospitals")
	case usecase.ErrHospitalNotFound:
		response.NotFound(w, "Hospital not found")
	case usecase.ErrAlreadyProcessed:
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, "Failed to process hospital")
	}
}
