package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOtpSvc struct{ mock.Mock }

func (m *mockOtpSvc) Generate(ctx context.Context, email string) (int, error) {
	args := m.Called(ctx, email)
	return args.Int(0), args.Error(1)
}

func (m *mockOtpSvc) Verify(ctx context.Context, email string, code int) (bool, error) {
	args := m.Called(ctx, email, code)
	return args.Bool(0), args.Error(1)
}

// --- Generate ---

func TestGenerateOtp_MissingEmailHeader(t *testing.T) {
	h := NewOtpHandler(&mockOtpSvc{})
	r := httptest.NewRequest(http.MethodPost, "/generateOtp", nil)
	rr := httptest.NewRecorder()
	h.Generate(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGenerateOtp_HappyPath(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Generate", mock.Anything, "a@b.com").Return(54321, nil)
	h := NewOtpHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/generateOtp", nil)
	r.Header.Set("email", "a@b.com")
	rr := httptest.NewRecorder()
	h.Generate(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "mail sent", resp.Message)
	// The code travels only by mail, never in the HTTP response.
	assert.NotContains(t, rr.Body.String(), "54321")
	svc.AssertExpectations(t)
}

func TestGenerateOtp_DeliveryFailure(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Generate", mock.Anything, "a@b.com").Return(0, errors.New("smtp down"))
	h := NewOtpHandler(svc)
	r := httptest.NewRequest(http.MethodPost, "/generateOtp", nil)
	r.Header.Set("email", "a@b.com")
	rr := httptest.NewRecorder()
	h.Generate(rr, r)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// --- Verify ---

func TestVerifyOtp_MissingHeaders(t *testing.T) {
	h := NewOtpHandler(&mockOtpSvc{})
	r := httptest.NewRequest(http.MethodGet, "/verifyOtp", nil)
	rr := httptest.NewRecorder()
	h.Verify(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOtp_NonNumericCode(t *testing.T) {
	h := NewOtpHandler(&mockOtpSvc{})
	r := httptest.NewRequest(http.MethodGet, "/verifyOtp", nil)
	r.Header.Set("email", "a@b.com")
	r.Header.Set("otp", "abcde")
	rr := httptest.NewRecorder()
	h.Verify(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerifyOtp_Verified(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Verify", mock.Anything, "a@b.com", 54321).Return(true, nil)
	h := NewOtpHandler(svc)
	r := httptest.NewRequest(http.MethodGet, "/verifyOtp", nil)
	r.Header.Set("email", "a@b.com")
	r.Header.Set("otp", "54321")
	rr := httptest.NewRecorder()
	h.Verify(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "verified", resp.Message)
}

func TestVerifyOtp_NotVerified(t *testing.T) {
	svc := &mockOtpSvc{}
	svc.On("Verify", mock.Anything, "a@b.com", 11111).Return(false, nil)
	h := NewOtpHandler(svc)
	r := httptest.NewRequest(http.MethodGet, "/verifyOtp", nil)
	r.Header.Set("email", "a@b.com")
	r.Header.Set("otp", "11111")
	rr := httptest.NewRecorder()
	h.Verify(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "not-verified", resp.Message)
}
