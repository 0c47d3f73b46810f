package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lionetto/portfolio-server/internal/api/recovery"
	"github.com/lionetto/portfolio-server/internal/assistant"
	"github.com/lionetto/portfolio-server/internal/auth"
	"github.com/lionetto/portfolio-server/internal/blob"
	"github.com/lionetto/portfolio-server/internal/events"
	"github.com/lionetto/portfolio-server/internal/services"
)

// NewRouter wires all HTTP routes to their handlers.
func NewRouter(
	content *services.ContentService,
	gallery *services.GalleryService,
	gate auth.Authorizer,
	sessions *assistant.Sessions,
	bus *events.Bus,
	uploadsDir string,
) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	contentHandler := NewContentHandler(content)
	root.HandleFunc("/api/site-content", contentHandler.GetSiteContent).Methods("GET")
	root.HandleFunc("/api/site-content", contentHandler.SaveSiteContent).Methods("POST")
	root.HandleFunc("/api/profile-image", contentHandler.UploadProfileImage).Methods("POST")

	galleryHandler := NewGalleryHandler(gallery)
	root.HandleFunc("/api/portfolio", galleryHandler.ListPortfolio).Methods("GET")
	root.HandleFunc("/api/portfolio", galleryHandler.CreatePortfolioItem).Methods("POST")
	root.HandleFunc("/api/portfolio/{id}", galleryHandler.DeletePortfolioItem).Methods("DELETE")

	loginHandler := NewLoginHandler(gate)
	root.HandleFunc("/api/login", loginHandler.Login).Methods("POST")

	chatHandler := NewChatHandler(content, sessions)
	root.HandleFunc("/api/chat/sessions", chatHandler.StartSession).Methods("POST")
	root.HandleFunc("/api/chat/sessions/{id}/messages", chatHandler.SendMessage).Methods("POST")

	eventsHandler := NewEventsHandler(bus)
	root.HandleFunc("/api/events", eventsHandler.Stream).Methods("GET")

	healthHandler := NewHealthHandler()
	root.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Uploaded images are served directly from disk.
	root.PathPrefix(blob.PublicPrefix).Handler(
		http.StripPrefix(blob.PublicPrefix, http.FileServer(http.Dir(uploadsDir))))

	return root
}
