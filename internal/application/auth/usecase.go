package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/domain"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
	"github.com/neryad/piki-backend/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: login y refresh.
type AuthUseCase struct {
	userRepo repository.UserRepository
	codec    *jwt.Codec
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, codec *jwt.Codec) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, codec: codec}
}

// Login verifica email/password, genera JWT y retorna el usuario sin password con su token.
// ErrInvalidInput si falta un campo, ErrUserNotFound si el email no existe,
// ErrInvalidCredentials si la contraseña no coincide.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, _, err := uc.codec.Issue(jwt.Identity{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		LoggedUser: dto.LoggedUser{UserResponse: toUserResponse(user), Token: token},
	}, nil
}

// Refresh emite un token nuevo para la identidad de un token ya verificado.
// No consulta el almacén; la expiración la decide el codec con su propio reloj.
func (uc *AuthUseCase) Refresh(claims *jwt.Claims) (*dto.RefreshResponse, error) {
	if claims == nil {
		return nil, domain.ErrUnauthorized
	}
	token, _, err := uc.codec.Renew(claims)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Token: token}, nil
}

// toUserResponse proyecta un usuario sin el hash de la contraseña.
func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Email:     u.Email,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
	}
}
