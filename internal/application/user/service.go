package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scode24/dsa-tracker-backend/internal/domain"
	"github.com/scode24/dsa-tracker-backend/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

const fieldPasswordHash = "password_hash"

// LoginResult is the outcome of a login attempt. On a credential mismatch
// Token is empty and UserInfo is an empty slice; the caller still gets a 200,
// mirroring the web client's contract.
type LoginResult struct {
	Token    string
	UserInfo []domain.User
}

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error)
	// Get returns the user record for an authenticated caller's id.
	Get(ctx context.Context, userID string) (*domain.User, error)
	// CheckEmail returns all users registered with email (normally 0 or 1).
	CheckEmail(ctx context.Context, email string) ([]domain.User, error)
	// ResetPassword overwrites the password for email. The OTP verification
	// step is a separate client-driven call; this operation does not recheck it.
	ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
}

type userStore interface {
	Put(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type tokenSigner interface {
	Sign(userID, name, email string) (string, error)
}

type service struct {
	repo   userStore
	signer tokenSigner
}

type ServiceDeps struct {
	UserRepo userStore
	Signer   tokenSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.UserRepo, signer: deps.Signer}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("user with provided email id already exists: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*LoginResult, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &LoginResult{UserInfo: []domain.User{}}, nil
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return &LoginResult{UserInfo: []domain.User{}}, nil
	}
	token, err := s.signer.Sign(u.UserID, u.Name, u.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, UserInfo: []domain.User{*u}}, nil
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

func (s *service) CheckEmail(ctx context.Context, email string) ([]domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, u.UserID, map[string]interface{}{fieldPasswordHash: string(hash)})
}
