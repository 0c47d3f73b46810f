package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lionetto/portfolio-server/internal/api/respond"
	"github.com/lionetto/portfolio-server/internal/model"
	"github.com/lionetto/portfolio-server/internal/services"
)

// maxUploadBytes caps multipart form parsing for image uploads.
const maxUploadBytes = 32 << 20

// ContentHandler is the HTTP transport for the site-content document.
type ContentHandler struct {
	svc *services.ContentService
}

func NewContentHandler(svc *services.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// GetSiteContent GET /api/site-content
func (h *ContentHandler) GetSiteContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Get(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Site content not found")
			return
		}
		respond.WriteInternalError(w, "Failed to read site content")
		return
	}
	respond.WriteJSON(w, http.StatusOK, doc)
}

// SaveSiteContent POST /api/site-content
func (h *ContentHandler) SaveSiteContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content  *model.SiteContent `json:"content"`
		Password string             `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := h.svc.Replace(r.Context(), req.Content, req.Password); err != nil {
		writeServiceError(w, err, "Failed to save site content")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UploadProfileImage POST /api/profile-image (multipart: image, password)
func (h *ContentHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.WriteBadRequest(w, "Invalid multipart form")
		return
	}
	password := r.FormValue("password")

	file, header, err := r.FormFile("image")
	if err != nil {
		// Run the credential check first so a missing file reports 401
		// before 400, matching the other mutating endpoints.
		_, svcErr := h.svc.UploadProfileImage(r.Context(), nil, "", password)
		writeServiceError(w, svcErr, "Failed to upload profile image")
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.svc.UploadProfileImage(r.Context(), file, header.Filename, password)
	if err != nil {
		writeServiceError(w, err, "Failed to upload profile image")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// writeServiceError maps domain sentinels to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		respond.WriteUnauthorized(w, "Unauthorized")
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	default:
		respond.WriteInternalError(w, fallback)
	}
}
