package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lionetto/portfolio-server/internal/api/respond"
	"github.com/lionetto/portfolio-server/internal/services"
)

// GalleryHandler is the HTTP transport for the portfolio gallery.
type GalleryHandler struct {
	svc *services.GalleryService
}

func NewGalleryHandler(svc *services.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// ListPortfolio GET /api/portfolio
func (h *GalleryHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, "Failed to read portfolio data")
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}

// CreatePortfolioItem POST /api/portfolio (multipart: image, title, link, password)
func (h *GalleryHandler) CreatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.WriteBadRequest(w, "Invalid multipart form")
		return
	}

	req := services.CreateItemRequest{
		Title:      r.FormValue("title"),
		Link:       r.FormValue("link"),
		Credential: r.FormValue("password"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer func() { _ = file.Close() }()
		req.Image = file
		req.Filename = header.Filename
	}

	item, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, "Failed to save portfolio item")
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

// DeletePortfolioItem DELETE /api/portfolio/{id}
func (h *GalleryHandler) DeletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if err := h.svc.Delete(r.Context(), id, req.Password); err != nil {
		writeServiceError(w, err, "Failed to delete portfolio item")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
