package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// BranchUseCase casos de uso CRUD para sucursales. La tripleta de subsidio en
// nil hereda la configuración de la empresa.
type BranchUseCase struct {
	repo        repository.BranchRepository
	companyRepo repository.CompanyRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, companyRepo repository.CompanyRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una sucursal bajo la empresa dada.
func (uc *BranchUseCase) Create(companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.SubsidyType != nil {
		if err := validateSubsidyType(*in.SubsidyType); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		Name:                in.Name,
		Address:             in.Address,
		SubsidizesEmployees: in.SubsidizesEmployees,
		SubsidyType:         in.SubsidyType,
		SubsidyValue:        in.SubsidyValue,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID obtiene una sucursal por ID.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return toBranchResponse(branch), nil
}

// Update actualiza la sucursal, incluido su override de subsidio (nil lo borra
// y vuelve a heredar de la empresa).
func (uc *BranchUseCase) Update(id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if in.SubsidyType != nil {
		if err := validateSubsidyType(*in.SubsidyType); err != nil {
			return nil, err
		}
	}
	branch.Name = in.Name
	branch.Address = in.Address
	branch.SubsidizesEmployees = in.SubsidizesEmployees
	branch.SubsidyType = in.SubsidyType
	branch.SubsidyValue = in.SubsidyValue
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// ListByCompany lista las sucursales de una empresa.
func (uc *BranchUseCase) ListByCompany(companyID string) ([]dto.BranchResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

// Delete elimina una sucursal.
func (uc *BranchUseCase) Delete(id string) error {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:                  b.ID,
		CompanyID:           b.CompanyID,
		Name:                b.Name,
		Address:             b.Address,
		SubsidizesEmployees: b.SubsidizesEmployees,
		SubsidyType:         b.SubsidyType,
		SubsidyValue:        b.SubsidyValue,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}
