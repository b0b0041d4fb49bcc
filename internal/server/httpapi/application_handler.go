package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/rentboard/internal/server/auth"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type applicationRequest struct {
	TenantID   int64 `json:"tenant_id"`
	PropertyID int64 `json:"property_id"`
}

type applicationResponse struct {
	ID             int64     `json:"id"`
	TenantID       int64     `json:"tenant_id"`
	PropertyID     int64     `json:"property_id"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submission_date"`
}

func toApplicationResponse(a *models.RentalApplication) applicationResponse {
	return applicationResponse{
		ID:             a.ID,
		TenantID:       a.TenantID,
		PropertyID:     a.PropertyID,
		Status:         a.Status,
		SubmissionDate: a.SubmissionDate,
	}
}

func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req applicationRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	application, err := s.applications.Submit(r.Context(), req.TenantID, req.PropertyID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(application))
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	applications, err := s.applications.List(r.Context(), offset, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]applicationResponse, 0, len(applications))
	for _, a := range applications {
		result = append(result, toApplicationResponse(a))
	}

	writeJSON(w, http.StatusOK, result)
}

// handleGetApplication lets the applicant or an admin read an application.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	id, err := urlParamID(r, "applicationID")
	if err != nil {
		s.writeBadRequest(w, "invalid application id")
		return
	}

	application, err := s.applications.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	applicantID, err := s.applications.ApplicantUserID(r.Context(), application)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := auth.RequireOwnerOrAdmin(user, applicantID); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(application))
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	if err := auth.RequireAdmin(user); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := urlParamID(r, "applicationID")
	if err != nil {
		s.writeBadRequest(w, "invalid application id")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	application, err := s.applications.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(application))
}
