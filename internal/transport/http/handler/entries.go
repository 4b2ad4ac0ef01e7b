package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scode24/dsa-tracker-backend/internal/application/entry"
	"github.com/scode24/dsa-tracker-backend/internal/domain"
	jwtinfra "github.com/scode24/dsa-tracker-backend/internal/infrastructure/jwt"
	"github.com/scode24/dsa-tracker-backend/internal/pkg/validate"
	"github.com/scode24/dsa-tracker-backend/internal/transport/http/middleware"
)

// EntryHandler handles log-entry CRUD and search endpoints.
type EntryHandler struct {
	svc entry.Service
}

func NewEntryHandler(svc entry.Service) *EntryHandler { return &EntryHandler{svc: svc} }

func callerClaims(w http.ResponseWriter, r *http.Request) (*jwtinfra.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return claims, true
}

func (h *EntryHandler) Save(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var req domain.SaveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.svc.Save(r.Context(), claims.UserID, req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Data saved successfully"})
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var req domain.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "id"), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Data updated successfully"})
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Entry has been deleted successfully"})
}

func (h *EntryHandler) FetchAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.List(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Search matches the searchValue header against the caller's entries.
func (h *EntryHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	term := r.Header.Get("searchValue")
	if term == "" {
		term = r.URL.Query().Get("searchValue")
	}
	entries, err := h.svc.Search(r.Context(), claims.UserID, term)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
