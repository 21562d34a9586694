package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OptionUseCase casos de uso CRUD para el catálogo de platos.
type OptionUseCase struct {
	repo repository.OptionRepository
}

// NewOptionUseCase construye el caso de uso.
func NewOptionUseCase(repo repository.OptionRepository) *OptionUseCase {
	return &OptionUseCase{repo: repo}
}

// Create crea un plato. El código es único por empresa; el costo no puede ser
// negativo y el precio, si viene, tampoco.
func (uc *OptionUseCase) Create(companyID string, in dto.CreateOptionRequest) (*dto.OptionResponse, error) {
	existing, _ := uc.repo.GetByCompanyAndCode(companyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := validatePrices(in.Cost, in.Price); err != nil {
		return nil, err
	}
	now := time.Now()
	option := &entity.Option{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Cost:         in.Cost,
		Price:        in.Price,
		IsSubsidized: in.IsSubsidized,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(option); err != nil {
		return nil, err
	}
	return toOptionResponse(option), nil
}

// GetByID obtiene un plato por ID.
func (uc *OptionUseCase) GetByID(id string) (*dto.OptionResponse, error) {
	option, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, nil
	}
	return toOptionResponse(option), nil
}

// Update actualiza un plato. El código no se modifica.
func (uc *OptionUseCase) Update(id string, in dto.UpdateOptionRequest) (*dto.OptionResponse, error) {
	option, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, nil
	}
	if err := validatePrices(in.Cost, in.Price); err != nil {
		return nil, err
	}
	option.Name = in.Name
	option.Description = in.Description
	option.Cost = in.Cost
	option.Price = in.Price
	option.IsSubsidized = in.IsSubsidized
	option.UpdatedAt = time.Now()
	if err := uc.repo.Update(option); err != nil {
		return nil, err
	}
	return toOptionResponse(option), nil
}

// List lista platos por empresa con paginación.
func (uc *OptionUseCase) List(companyID string, page dto.PageRequest) (*dto.OptionListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OptionResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOptionResponse(o))
	}
	return &dto.OptionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un plato del catálogo.
func (uc *OptionUseCase) Delete(id string) error {
	option, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if option == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validatePrices(cost decimal.Decimal, price *decimal.Decimal) error {
	if cost.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if price != nil && price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toOptionResponse(o *entity.Option) *dto.OptionResponse {
	return &dto.OptionResponse{
		ID:           o.ID,
		CompanyID:    o.CompanyID,
		Code:         o.Code,
		Name:         o.Name,
		Description:  o.Description,
		Cost:         o.Cost,
		Price:        o.Price,
		IsSubsidized: o.IsSubsidized,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
