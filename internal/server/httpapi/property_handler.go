package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/rentboard/internal/server/auth"
	"github.com/dmitrijs2005/rentboard/internal/server/models"
)

type propertyRequest struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	Location         string  `json:"location"`
	NumberOfBedrooms int     `json:"number_of_bedrooms"`
}

type propertyResponse struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	Location         string  `json:"location"`
	NumberOfBedrooms int     `json:"number_of_bedrooms"`
	OwnerID          int64   `json:"owner_id"`
}

func toPropertyResponse(p *models.Property) propertyResponse {
	return propertyResponse{
		ID:               p.ID,
		Title:            p.Title,
		Description:      p.Description,
		Price:            p.Price,
		Location:         p.Location,
		NumberOfBedrooms: p.NumberOfBedrooms,
		OwnerID:          p.OwnerID,
	}
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	property := &models.Property{
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		Location:         req.Location,
		NumberOfBedrooms: req.NumberOfBedrooms,
	}

	created, err := s.properties.Create(r.Context(), property, user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPropertyResponse(created))
}

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)

	properties, err := s.properties.List(r.Context(), offset, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		result = append(result, toPropertyResponse(p))
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "propertyID")
	if err != nil {
		s.writeBadRequest(w, "invalid property id")
		return
	}

	property, err := s.properties.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(property))
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	id, err := urlParamID(r, "propertyID")
	if err != nil {
		s.writeBadRequest(w, "invalid property id")
		return
	}

	property, err := s.properties.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := auth.RequireOwnerOrAdmin(user, property.OwnerID); err != nil {
		s.writeError(w, r, err)
		return
	}

	var upd models.PropertyUpdate
	if err := decodeJSON(r, &upd); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := s.properties.Update(r.Context(), id, &upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(updated))
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	id, err := urlParamID(r, "propertyID")
	if err != nil {
		s.writeBadRequest(w, "invalid property id")
		return
	}

	property, err := s.properties.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := auth.RequireOwnerOrAdmin(user, property.OwnerID); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.properties.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "property deleted"})
}

type photoUploadResponse struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	ObjectKey  string `json:"object_key"`
	UploadURL  string `json:"upload_url"`
}

func (s *Server) handleRequestPhotoUpload(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		s.writeUnauthorized(w)
		return
	}

	id, err := urlParamID(r, "propertyID")
	if err != nil {
		s.writeBadRequest(w, "invalid property id")
		return
	}

	property, err := s.properties.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := auth.RequireOwnerOrAdmin(user, property.OwnerID); err != nil {
		s.writeError(w, r, err)
		return
	}

	photo, uploadURL, err := s.photos.RequestUpload(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, photoUploadResponse{
		ID:         photo.ID,
		PropertyID: photo.PropertyID,
		ObjectKey:  photo.StorageKey,
		UploadURL:  uploadURL,
	})
}

type photoLinkResponse struct {
	ID          int64  `json:"id"`
	ObjectKey   string `json:"object_key"`
	DownloadURL string `json:"download_url"`
}

func (s *Server) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "propertyID")
	if err != nil {
		s.writeBadRequest(w, "invalid property id")
		return
	}

	links, err := s.photos.List(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]photoLinkResponse, 0, len(links))
	for _, l := range links {
		result = append(result, photoLinkResponse{
			ID:          l.Photo.ID,
			ObjectKey:   l.Photo.StorageKey,
			DownloadURL: l.URL,
		})
	}

	writeJSON(w, http.StatusOK, result)
}
