package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amiracx/partner-portal-api/internal/entity"
	"github.com/amiracx/partner-portal-api/internal/infra/http/middleware"
	"github.com/amiracx/partner-portal-api/internal/usecase"
)

type LeadHandler struct {
	ListUC   *usecase.ListLeadsUseCase
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
}

func NewLeadHandler(
	listUC *usecase.ListLeadsUseCase,
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		ListUC:   listUC,
		CreateUC: createUC,
		UpdateUC: updateUC,
	}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]entity.Lead{"leads": leads})
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.CreateUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadID")

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	input := usecase.UpdateLeadInput{LeadID: leadID, Fields: fields}
	if err := h.UpdateUC.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
