package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amiracx/partner-portal-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUseCaseError maps usecase error kinds to HTTP statuses. Messages are
// short and fixed; upstream payloads are never echoed back.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "VALIDATION_ERROR":
			writeErrorResponse(w, http.StatusBadRequest, domainErr.Message)
		case "INVALID_PASSWORD":
			writeErrorResponse(w, http.StatusUnauthorized, domainErr.Message)
		case "NOT_FOUND":
			writeErrorResponse(w, http.StatusNotFound, domainErr.Message)
		default:
			writeErrorResponse(w, http.StatusBadRequest, domainErr.Message)
		}
		return
	}

	var technicalErr *usecase.TechnicalError
	if errors.As(err, &technicalErr) {
		writeErrorResponse(w, http.StatusBadGateway, technicalErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "internal error")
}
