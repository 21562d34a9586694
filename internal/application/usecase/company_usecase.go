package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
	"github.com/jhoicas/Comedor-api/internal/domain/subsidy"
)

// CompanyUseCase casos de uso CRUD para empresas y su subsidio por defecto.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa. El NIT es único en el sistema.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByNIT(in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := validateSubsidyType(in.SubsidyType); err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		NIT:                 in.NIT,
		Address:             in.Address,
		Phone:               in.Phone,
		Email:               in.Email,
		Status:              "active",
		SubsidizesEmployees: in.SubsidizesEmployees,
		SubsidyType:         in.SubsidyType,
		SubsidyValue:        in.SubsidyValue,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Update actualiza datos y subsidio de la empresa. El NIT no se modifica.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if err := validateSubsidyType(in.SubsidyType); err != nil {
		return nil, err
	}
	company.Name = in.Name
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.SubsidizesEmployees = in.SubsidizesEmployees
	company.SubsidyType = in.SubsidyType
	company.SubsidyValue = in.SubsidyValue
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una empresa.
func (uc *CompanyUseCase) Delete(id string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateSubsidyType acepta vacío (sin subsidio configurado) o un tipo conocido.
func validateSubsidyType(t string) error {
	if t == "" || t == subsidy.TypeFixedAmount || t == subsidy.TypePercent {
		return nil
	}
	return domain.ErrInvalidInput
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                  c.ID,
		Name:                c.Name,
		NIT:                 c.NIT,
		Address:             c.Address,
		Phone:               c.Phone,
		Email:               c.Email,
		Status:              c.Status,
		SubsidizesEmployees: c.SubsidizesEmployees,
		SubsidyType:         c.SubsidyType,
		SubsidyValue:        c.SubsidyValue,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
