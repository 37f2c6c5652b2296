package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/application/usecase"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/mocks"
)

func strPtr(s string) *string { return &s }

func validUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     "Ana",
		LastName: "Pérez",
		Phone:    "809-555-0101",
		Email:    "ana@piki.do",
		Password: "secreto123",
		RoleID:   1,
	}
}

func TestUserCreate_GuardaHashBcrypt(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	var saved *entity.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.User)
			saved.ID = 10
		}).
		Return(nil)
	uc := usecase.NewUserUseCase(repo)

	resp, err := uc.Create(context.Background(), validUser())
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, int64(10), resp.ID)
	assert.NotEqual(t, "secreto123", saved.Password, "nunca se persiste la contraseña en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secreto123")))
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestUserCreate_CampoFaltante(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	uc := usecase.NewUserUseCase(repo)

	in := validUser()
	in.RoleID = 0
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validUser()
	in.Password = ""
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), validUser())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_RehasheaSoloSiHayPassword(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	var changes entity.UserChanges
	repo.On("Update", mock.Anything, int64(4), mock.AnythingOfType("entity.UserChanges")).
		Run(func(args mock.Arguments) { changes = args.Get(2).(entity.UserChanges) }).
		Return(true, nil)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Update(context.Background(), 4, dto.UpdateUserRequest{Phone: strPtr("809-000-0000")})
	require.NoError(t, err)
	assert.Nil(t, changes.PasswordHash)
	assert.Nil(t, changes.Name)
	assert.Equal(t, "809-000-0000", *changes.Phone)

	err = uc.Update(context.Background(), 4, dto.UpdateUserRequest{Password: strPtr("nueva")})
	require.NoError(t, err)
	require.NotNil(t, changes.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*changes.PasswordHash), []byte("nueva")))
}

func TestUserPassword_MasDe72BytesEsInvalida(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	uc := usecase.NewUserUseCase(repo)
	long := strings.Repeat("a", 80)

	in := validUser()
	in.Password = long
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Update(context.Background(), 4, dto.UpdateUserRequest{Password: &long})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserPassword_72BytesEsValida(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	uc := usecase.NewUserUseCase(repo)

	in := validUser()
	in.Password = strings.Repeat("a", 72)
	_, err := uc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestUserUpdate_NoExiste(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("Update", mock.Anything, int64(99), mock.Anything).Return(false, nil)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Update(context.Background(), 99, dto.UpdateUserRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserList_SinPasswords(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("List", mock.Anything).Return([]*entity.User{
		{ID: 1, Email: "a@piki.do", Password: "$2a$hash"},
		{ID: 2, Email: "b@piki.do", Password: "$2a$hash"},
	}, nil)
	uc := usecase.NewUserUseCase(repo)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "b@piki.do", list[1].Email)
}

func TestUserGetByID_NoExisteDevuelveNil(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)
	uc := usecase.NewUserUseCase(repo)

	u, err := uc.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, u)
}
