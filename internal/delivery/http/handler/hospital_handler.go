package handler

import (
	"net/http"
	"strconv"

	"healthconnect/internal/domain/policy"
	"healthconnect/internal/usecase"
	"healthconnect/pkg/response"

	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase) *HospitalHandler {
	return &HospitalHandler{hospitalUsecase: hospitalUsecase}
}

func (h *HospitalHandler) GetHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListHospitals(r.Context())
	if err != nil {
		if err == policy.ErrPermissionDenied {
			response.Forbidden(w, "")
			return
		}
		response.InternalServerError(w, "Failed to get hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := parseHospitalID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case policy.ErrPermissionDenied:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

func (h *HospitalHandler) GetHospitalDoctors(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := parseHospitalID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hospital ID", nil)
		return
	}

	doctors, err := h.hospitalUsecase.GetHospitalDoctors(r.Context(), hospitalID)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case policy.ErrPermissionDenied:
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get hospital doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func parseHospitalID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
