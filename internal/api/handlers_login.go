package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lionetto/portfolio-server/internal/api/respond"
	"github.com/lionetto/portfolio-server/internal/auth"
	"github.com/lionetto/portfolio-server/internal/model"
)

// LoginHandler verifies the admin credential. No token is issued; the client
// keeps the raw password in memory and re-sends it with every mutation.
type LoginHandler struct {
	gate auth.Authorizer
}

func NewLoginHandler(gate auth.Authorizer) *LoginHandler {
	return &LoginHandler{gate: gate}
}

// Login POST /api/login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if err := h.gate.Authorize(r.Context(), req.Password); err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			respond.WriteUnauthorized(w, "Password errata")
			return
		}
		respond.WriteInternalError(w, "Login failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
