package user

import (
	"context"
	"errors"
	"testing"

	"github.com/scode24/dsa-tracker-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Put(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) FindByEmail(ctx context.Context, email string) ([]domain.User, error) {
	args := m.Called(ctx, email)
	if us, _ := args.Get(0).([]domain.User); us != nil {
		return us, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return m.Called(ctx, userID, updates).Error(0)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(userID, name, email string) (string, error) {
	args := m.Called(userID, name, email)
	return args.String(0), args.Error(1)
}

func newTestService(us *mockUserStore, sg *mockSigner) Service {
	return NewService(ServiceDeps{UserRepo: us, Signer: sg})
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// --- Register ---

func TestRegister_DuplicateEmail(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{UserID: "u1"}, nil)

	svc := newTestService(us, nil)
	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name: "Alice", Email: "a@b.com", Password: "secret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	us.AssertNotCalled(t, "Put")
}

func TestRegister_HappyPath_HashesPassword(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, domain.ErrNotFound)
	us.On("Put", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	svc := newTestService(us, nil)
	u, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name: "Alice", Email: "a@b.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.UserID)
	assert.Equal(t, "Alice", u.Name)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
	us.AssertExpectations(t)
}

// --- Login ---

func TestLogin_UnknownEmail_ReturnsEmptyToken(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "x@x.com").Return(nil, domain.ErrNotFound)

	svc := newTestService(us, nil)
	result, err := svc.Login(context.Background(), domain.LoginRequest{Email: "x@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, result.Token)
	assert.Empty(t, result.UserInfo)
}

func TestLogin_WrongPassword_ReturnsEmptyToken(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		UserID: "u1", Email: "a@b.com", PasswordHash: hashOf(t, "right"),
	}, nil)

	svc := newTestService(us, nil)
	result, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@b.com", Password: "wrong"})
	require.NoError(t, err)
	assert.Empty(t, result.Token)
	assert.Empty(t, result.UserInfo)
}

func TestLogin_HappyPath(t *testing.T) {
	us := &mockUserStore{}
	sg := &mockSigner{}
	us.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		UserID: "u1", Name: "Alice", Email: "a@b.com", PasswordHash: hashOf(t, "secret"),
	}, nil)
	sg.On("Sign", "u1", "Alice", "a@b.com").Return("signed-token", nil)

	svc := newTestService(us, sg)
	result, err := svc.Login(context.Background(), domain.LoginRequest{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	require.Len(t, result.UserInfo, 1)
	assert.Equal(t, "u1", result.UserInfo[0].UserID)
	sg.AssertExpectations(t)
}

// --- ResetPassword ---

func TestResetPassword_UnknownEmail(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "x@x.com").Return(nil, domain.ErrNotFound)

	svc := newTestService(us, nil)
	err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{Email: "x@x.com", Password: "new"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestResetPassword_StoresNewHash(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{UserID: "u1"}, nil)
	us.On("Update", mock.Anything, "u1", mock.MatchedBy(func(m map[string]interface{}) bool {
		h, ok := m[fieldPasswordHash].(string)
		return ok && bcrypt.CompareHashAndPassword([]byte(h), []byte("newpass")) == nil
	})).Return(nil)

	svc := newTestService(us, nil)
	err := svc.ResetPassword(context.Background(), domain.ResetPasswordRequest{Email: "a@b.com", Password: "newpass"})
	require.NoError(t, err)
	us.AssertExpectations(t)
}
