package handler

import (
	"encoding/json"
	"net/http"

	"healthconnect/internal/delivery/dto"
	"healthconnect/internal/domain/policy"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/response"
	"healthconnect/pkg/validator"
)

type HealthTrackingHandler struct {
	trackingUsecase usecase.HealthTrackingUsecase
	validator       *validator.CustomValidator
}

func NewHealthTrackingHandler(trackingUsecase usecase.HealthTrackingUsecase, validator *validator.CustomValidator) *HealthTrackingHandler {
	return &HealthTrackingHandler{
		trackingUsecase: trackingUsecase,
		validator:       validator,
	}
}

func (h *HealthTrackingHandler) RecordVitals(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.trackingUsecase.RecordVitals(r.Context(), &req)
	if err != nil {
		switch err {
		case policy.ErrPermissionDenied:
			response.Forbidden(w, "Only patients can record vitals")
		default:
			response.InternalServerError(w, "Failed to record vitals")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vitals recorded successfully", entry)
}

func (h *HealthTrackingHandler) GetMyVitals(w http.ResponseWriter, r *http.Request) {
	entries, err := h.trackingUsecase.GetMyVitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health tracking history")
		return
	}

	response.Success(w, http.StatusOK, "Health tracking history retrieved successfully", entries)
}

func (h *HealthTrackingHandler) GetLatestVitals(w http.ResponseWriter, r *http.Request) {
	entry, err := h.trackingUsecase.GetLatestVitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get latest vitals")
		return
	}

	response.Success(w, http.StatusOK, "Latest vitals retrieved successfully", entry)
}
