package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amiracx/partner-portal-api/internal/entity"
	"github.com/amiracx/partner-portal-api/internal/usecase"
)

type CompanyHandler struct {
	ListUC        *usecase.ListCompaniesUseCase
	ListPartnerUC *usecase.ListPartnerCompaniesUseCase
	FindUC        *usecase.FindCompanyUseCase
}

func NewCompanyHandler(
	listUC *usecase.ListCompaniesUseCase,
	listPartnerUC *usecase.ListPartnerCompaniesUseCase,
	findUC *usecase.FindCompanyUseCase,
) *CompanyHandler {
	return &CompanyHandler{
		ListUC:        listUC,
		ListPartnerUC: listPartnerUC,
		FindUC:        findUC,
	}
}

func (h *CompanyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	companies, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]entity.CompanySummary{"companies": companies})
}

func (h *CompanyHandler) HandleListByPartner(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "partnerID")
	if partnerID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "partner id is required")
		return
	}

	companies, err := h.ListPartnerUC.Execute(r.Context(), partnerID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]entity.Company{"companies": companies})
}

func (h *CompanyHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	partnerID := r.URL.Query().Get("partner_id")
	if name == "" || partnerID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "name and partner_id are required")
		return
	}

	ref, err := h.FindUC.Execute(r.Context(), name, partnerID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*entity.CompanyRef{"company": ref})
}
