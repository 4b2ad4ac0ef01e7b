package handler

import (
	"net/http"
	"strconv"

	"github.com/scode24/dsa-tracker-backend/internal/application/otp"
)

// OtpHandler handles the password-reset code endpoints.
type OtpHandler struct {
	svc otp.Service
}

func NewOtpHandler(svc otp.Service) *OtpHandler { return &OtpHandler{svc: svc} }

// Generate issues a fresh code for the email header and mails it.
func (h *OtpHandler) Generate(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email header required")
		return
	}
	if _, err := h.svc.Generate(r.Context(), email); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "mail sent"})
}

// Verify checks the otp header against the live code for the email header.
// Both "wrong code" and "no code issued" answer not-verified.
func (h *OtpHandler) Verify(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	code, err := strconv.Atoi(r.Header.Get("otp"))
	if email == "" || err != nil {
		writeError(w, http.StatusBadRequest, "email and otp headers required")
		return
	}
	ok, err := h.svc.Verify(r.Context(), email, code)
	if err != nil {
		httpError(w, err)
		return
	}
	if ok {
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "verified"})
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "not-verified"})
}
