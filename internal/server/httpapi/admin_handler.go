package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/rentboard/internal/server/auth"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	if err := auth.RequireAdmin(user); err != nil {
		s.writeError(w, r, err)
		return
	}

	offset, limit := pagination(r)

	users, err := s.users.List(r.Context(), offset, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]userResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	if err := auth.RequireAdmin(user); err != nil {
		s.writeError(w, r, err)
		return
	}

	id, err := urlParamID(r, "userID")
	if err != nil {
		s.writeBadRequest(w, "invalid user id")
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := s.users.SetUserRole(r.Context(), id, req.Role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(updated))
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	if err := auth.RequireAdmin(user); err != nil {
		s.writeError(w, r, err)
		return
	}

	stats, err := s.stats.Dashboard(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
