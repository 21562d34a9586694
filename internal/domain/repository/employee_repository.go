package repository

import "github.com/jhoicas/Comedor-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetByID carga también las asignaciones de entrega (BranchIDs, LocationIDs);
// Create y Update las reemplazan por completo con las del entity.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByCompanyAndDocument(companyID, document string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Employee, error)
	ListByBranch(branchID string) ([]*entity.Employee, error)
	Delete(id string) error
}
