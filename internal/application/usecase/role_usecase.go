package usecase

import (
	"context"

	"github.com/neryad/piki-backend/internal/application/dto"
	"github.com/neryad/piki-backend/internal/domain/entity"
	"github.com/neryad/piki-backend/internal/domain/repository"
)

// RoleUseCase CRUD de roles. Los roles no intervienen en la autorización.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

func (uc *RoleUseCase) Create(ctx context.Context, in dto.RoleRequest) (*dto.RoleResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role := &entity.Role{Name: in.Name}
	if err := uc.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (uc *RoleUseCase) List(ctx context.Context) ([]*dto.RoleResponse, error) {
	roles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return out, nil
}

func (uc *RoleUseCase) GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil || role == nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.RoleRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	return uc.repo.Update(ctx, id, in.Name)
}

func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{ID: r.ID, Name: r.Name}
}
