package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados, incluidas sus asignaciones
// de entrega (sucursales y puntos adicionales) y su override personal de subsidio.
type EmployeeUseCase struct {
	repo       repository.EmployeeRepository
	branchRepo repository.BranchRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, branchRepo repository.BranchRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, branchRepo: branchRepo}
}

// Create crea un empleado. La cédula es única por empresa y la sucursal base
// debe existir y pertenecer a la misma empresa.
func (uc *EmployeeUseCase) Create(companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndDocument(companyID, in.Document)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkBranch(companyID, in.BranchID); err != nil {
		return nil, err
	}
	if in.SubsidyType != nil {
		if err := validateSubsidyType(*in.SubsidyType); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		BranchID:     in.BranchID,
		Document:     in.Document,
		Name:         in.Name,
		Email:        in.Email,
		IsSubsidized: in.IsSubsidized,
		SubsidyType:  in.SubsidyType,
		SubsidyValue: in.SubsidyValue,
		Status:       "active",
		BranchIDs:    in.BranchIDs,
		LocationIDs:  in.LocationIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un empleado con sus asignaciones cargadas.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	return toEmployeeResponse(emp), nil
}

// Update actualiza datos, subsidio y asignaciones del empleado. La cédula no
// se modifica.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	if err := uc.checkBranch(emp.CompanyID, in.BranchID); err != nil {
		return nil, err
	}
	if in.SubsidyType != nil {
		if err := validateSubsidyType(*in.SubsidyType); err != nil {
			return nil, err
		}
	}
	emp.BranchID = in.BranchID
	emp.Name = in.Name
	emp.Email = in.Email
	emp.IsSubsidized = in.IsSubsidized
	emp.SubsidyType = in.SubsidyType
	emp.SubsidyValue = in.SubsidyValue
	emp.BranchIDs = in.BranchIDs
	emp.LocationIDs = in.LocationIDs
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// List lista empleados por empresa con paginación.
func (uc *EmployeeUseCase) List(companyID string, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id string) error {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *EmployeeUseCase) checkBranch(companyID, branchID string) error {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return err
	}
	if branch == nil || branch.CompanyID != companyID {
		return domain.ErrInvalidInput
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		CompanyID:    e.CompanyID,
		BranchID:     e.BranchID,
		Document:     e.Document,
		Name:         e.Name,
		Email:        e.Email,
		IsSubsidized: e.IsSubsidized,
		SubsidyType:  e.SubsidyType,
		SubsidyValue: e.SubsidyValue,
		Status:       e.Status,
		BranchIDs:    e.BranchIDs,
		LocationIDs:  e.LocationIDs,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
