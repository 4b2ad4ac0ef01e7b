package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/scode24/dsa-tracker-backend/internal/domain"
)

// Codes are 5-digit, matching what the web client expects.
const (
	codeMin = 10000
	codeMax = 99999
)

const mailSubject = "DSA Tracker App : OTP for password reset"

// Service issues and verifies password-reset codes.
type Service interface {
	// Generate replaces any live code for email with a fresh one and mails it.
	// A delivery failure is returned to the caller but does not roll back the
	// ledger write: the code stays usable until it expires.
	Generate(ctx context.Context, email string) (int, error)
	// Verify reports whether code is the live code for email. A wrong code and
	// no code at all are indistinguishable. Verification is a pure read; the
	// code stays live until it expires or a new issuance overwrites it.
	Verify(ctx context.Context, email string, code int) (bool, error)
}

type ledger interface {
	Put(ctx context.Context, c *domain.OtpCode) error
	FindMatching(ctx context.Context, email string, code int) (bool, error)
}

type mailSender interface {
	SendEmail(to, subject, body string) error
}

type service struct {
	ledger ledger
	mailer mailSender
	ttl    time.Duration
}

type ServiceDeps struct {
	Ledger ledger
	Mailer mailSender
	TTL    time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		ledger: deps.Ledger,
		mailer: deps.Mailer,
		ttl:    deps.TTL,
	}
}

func (s *service) Generate(ctx context.Context, email string) (int, error) {
	if email == "" {
		return 0, fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return 0, err
	}
	code := codeMin + int(n.Int64())

	now := time.Now()
	c := &domain.OtpCode{
		Email:     email,
		Code:      code,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	// Put overwrites by email, discarding any previous code for this address.
	if err := s.ledger.Put(ctx, c); err != nil {
		return 0, err
	}

	if err := s.mailer.SendEmail(email, mailSubject, fmt.Sprintf("OTP is %d", code)); err != nil {
		return 0, fmt.Errorf("send otp mail: %w", err)
	}
	return code, nil
}

func (s *service) Verify(ctx context.Context, email string, code int) (bool, error) {
	if email == "" {
		return false, fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}
	return s.ledger.FindMatching(ctx, email, code)
}
