package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type tenantRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID int64  `json:"user_id"`
}

type tenantResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID int64  `json:"user_id,omitempty"`
}

func toTenantResponse(t *models.Tenant) tenantResponse {
	return tenantResponse{ID: t.ID, Name: t.Name, Email: t.Email, UserID: t.UserID}
}

func (s *Server) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	var req tenantRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	tenant, err := s.tenants.Create(r.Context(), &models.Tenant{
		Name:   req.Name,
		Email:  req.Email,
		UserID: req.UserID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTenantResponse(tenant))
}

func (s *Server) handleListTenants(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	tenants, err := s.tenants.List(r.Context(), offset, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]tenantResponse, 0, len(tenants))
	for _, t := range tenants {
		result = append(result, toTenantResponse(t))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetTenant(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "tenantID")
	if err != nil {
		s.writeBadRequest(w, "invalid tenant id")
		return
	}

	tenant, err := s.tenants.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTenantResponse(tenant))
}
