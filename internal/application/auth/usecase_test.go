package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/mocks"
	"github.com/neryad/piki-backend/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newCodec(t *testing.T, opts ...jwt.Option) *jwt.Codec {
	t.Helper()
	c, err := jwt.NewCodec(testSecret, "piki-backend-test", time.Hour, opts...)
	require.NoError(t, err)
	return c
}

func storedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:        3,
		Name:      "Ana",
		LastName:  "Pérez",
		Phone:     "809-555-0101",
		Email:     "ana@piki.do",
		Password:  string(hash),
		RoleID:    1,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLogin_CamposObligatorios(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	uc := NewAuthUseCase(repo, newCodec(t))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@piki.do"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestLogin_UsuarioNoEncontrado(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "nadie@piki.do").Return(nil, nil)
	uc := NewAuthUseCase(repo, newCodec(t))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@piki.do", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ana@piki.do").Return(storedUser(t, "correcta"), nil)
	uc := NewAuthUseCase(repo, newCodec(t))

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@piki.do", Password: "incorrecta"})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_ContrasenaDistingueMayusculas(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ana@piki.do").Return(storedUser(t, "Secret123!"), nil)
	uc := NewAuthUseCase(repo, newCodec(t))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@piki.do", Password: "secret123!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@piki.do", Password: "Secret123!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.LoggedUser.Token)
}

func TestLogin_Exitoso_DevuelveTokenYUsuarioSinPassword(t *testing.T) {
	user := storedUser(t, "correcta")
	repo := new(mocks.MockUserRepository)
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	codec := newCodec(t)
	uc := NewAuthUseCase(repo, codec)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: "correcta"})
	require.NoError(t, err)

	logged := resp.LoggedUser
	assert.Equal(t, user.ID, logged.ID)
	assert.Equal(t, user.Email, logged.Email)
	assert.Equal(t, user.RoleID, logged.RoleID)

	claims, err := codec.Verify(logged.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.Identity{ID: user.ID, Email: user.Email}, claims.Identity())
	repo.AssertExpectations(t)
}

func TestRefresh_ExpiracionEstrictamentePosterior(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }
	codec := newCodec(t, jwt.WithClock(clock))
	uc := NewAuthUseCase(new(mocks.MockUserRepository), codec)

	tok, _, err := codec.Issue(jwt.Identity{ID: 3, Email: "ana@piki.do"})
	require.NoError(t, err)
	old, err := codec.Verify(tok)
	require.NoError(t, err)

	// mismo instante: now+ttl coincide con la expiración anterior
	resp, err := uc.Refresh(old)
	require.NoError(t, err)

	renewed, err := codec.Verify(resp.Token)
	require.NoError(t, err)
	assert.True(t, renewed.ExpiresAtTime().After(old.ExpiresAtTime()))
	assert.Equal(t, old.Identity(), renewed.Identity())
}

func TestRefresh_UsaTTLConfigurado(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	current := start
	clock := func() time.Time { return current }
	codec := newCodec(t, jwt.WithClock(clock))
	uc := NewAuthUseCase(new(mocks.MockUserRepository), codec)

	tok, _, err := codec.Issue(jwt.Identity{ID: 3, Email: "ana@piki.do"})
	require.NoError(t, err)
	old, err := codec.Verify(tok)
	require.NoError(t, err)

	current = start.Add(10 * time.Minute)
	resp, err := uc.Refresh(old)
	require.NoError(t, err)

	renewed, err := codec.Verify(resp.Token)
	require.NoError(t, err)
	assert.True(t, current.Add(time.Hour).Equal(renewed.ExpiresAtTime()))
}

func TestRefresh_SinClaims(t *testing.T) {
	uc := NewAuthUseCase(new(mocks.MockUserRepository), newCodec(t))
	_, err := uc.Refresh(nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
