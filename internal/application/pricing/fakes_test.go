package pricing_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// Fakes en memoria mínimos para valorización: solo los métodos que el caso de
// uso toca hacen trabajo real; el resto devuelve nil para satisfacer el puerto.

type fakeCompanyRepo struct{ companies map[string]*entity.Company }

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *fakeCompanyRepo) GetByNIT(nit string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(c *entity.Company) error               { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) Delete(id string) error { delete(r.companies, id); return nil }

type fakeBranchRepo struct{ branches map[string]*entity.Branch }

func (r *fakeBranchRepo) Create(b *entity.Branch) error { r.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) GetByID(id string) (*entity.Branch, error) {
	return r.branches[id], nil
}
func (r *fakeBranchRepo) Update(b *entity.Branch) error { r.branches[b.ID] = b; return nil }
func (r *fakeBranchRepo) ListByCompany(companyID string) ([]*entity.Branch, error) {
	return nil, nil
}
func (r *fakeBranchRepo) Delete(id string) error { delete(r.branches, id); return nil }

type fakeEmployeeRepo struct{ emps map[string]*entity.Employee }

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.emps[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.emps[id], nil
}
func (r *fakeEmployeeRepo) GetByCompanyAndDocument(companyID, document string) (*entity.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error { r.emps[e.ID] = e; return nil }
func (r *fakeEmployeeRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) ListByBranch(branchID string) ([]*entity.Employee, error) {
	return nil, nil
}
func (r *fakeEmployeeRepo) Delete(id string) error { delete(r.emps, id); return nil }

type fakeOptionRepo struct{ opts map[string]*entity.Option }

func (r *fakeOptionRepo) Create(o *entity.Option) error { r.opts[o.ID] = o; return nil }
func (r *fakeOptionRepo) GetByID(id string) (*entity.Option, error) {
	return r.opts[id], nil
}
func (r *fakeOptionRepo) GetByCompanyAndCode(companyID, code string) (*entity.Option, error) {
	return nil, nil
}
func (r *fakeOptionRepo) ListByIDs(ids []string) ([]*entity.Option, error) {
	var out []*entity.Option
	for _, id := range ids {
		if o, ok := r.opts[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *fakeOptionRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Option, error) {
	return nil, nil
}
func (r *fakeOptionRepo) Update(o *entity.Option) error { r.opts[o.ID] = o; return nil }
func (r *fakeOptionRepo) Delete(id string) error        { delete(r.opts, id); return nil }

type fakeMenuRepo struct{ menus map[string]*entity.Menu }

func (r *fakeMenuRepo) Create(m *entity.Menu) error { r.menus[m.ID] = m; return nil }
func (r *fakeMenuRepo) GetByID(id string) (*entity.Menu, error) {
	return r.menus[id], nil
}
func (r *fakeMenuRepo) GetByWeek(companyID string, branchID *string, weekStart time.Time) (*entity.Menu, error) {
	return nil, nil
}
func (r *fakeMenuRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Menu, error) {
	return nil, nil
}
func (r *fakeMenuRepo) Update(m *entity.Menu) error { r.menus[m.ID] = m; return nil }
func (r *fakeMenuRepo) Delete(id string) error      { delete(r.menus, id); return nil }

type fakeMenuDayRepo struct{ days map[string]*entity.MenuDay }

func (r *fakeMenuDayRepo) CreateBatch(days []*entity.MenuDay) error {
	for _, d := range days {
		r.days[d.ID] = d
	}
	return nil
}
func (r *fakeMenuDayRepo) GetByID(id string) (*entity.MenuDay, error) {
	return r.days[id], nil
}
func (r *fakeMenuDayRepo) ListByMenu(menuID string) ([]*entity.MenuDay, error) {
	var out []*entity.MenuDay
	for _, d := range r.days {
		if d.MenuID == menuID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	return out, nil
}
func (r *fakeMenuDayRepo) Update(d *entity.MenuDay) error { r.days[d.ID] = d; return nil }

type fakeSelectionRepo struct{ sels map[string]*entity.Selection }

func (r *fakeSelectionRepo) Create(s *entity.Selection) error { r.sels[s.ID] = s; return nil }
func (r *fakeSelectionRepo) GetByID(id string) (*entity.Selection, error) {
	return r.sels[id], nil
}
func (r *fakeSelectionRepo) GetByEmployeeAndDay(employeeID, menuDayID string) (*entity.Selection, error) {
	return nil, nil
}
func (r *fakeSelectionRepo) ListByMenuDayIDs(menuDayIDs []string) ([]*entity.Selection, error) {
	ids := make(map[string]bool, len(menuDayIDs))
	for _, id := range menuDayIDs {
		ids[id] = true
	}
	var out []*entity.Selection
	for _, s := range r.sels {
		if ids[s.MenuDayID] {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *fakeSelectionRepo) Update(s *entity.Selection) error { r.sels[s.ID] = s; return nil }
func (r *fakeSelectionRepo) DeleteByMenuDay(menuDayID string) error {
	for id, s := range r.sels {
		if s.MenuDayID == menuDayID {
			delete(r.sels, id)
		}
	}
	return nil
}
func (r *fakeSelectionRepo) CountByMenu(menuID string) (int, error) { return len(r.sels), nil }

type fakeAdditionalRepo struct{}

func (fakeAdditionalRepo) Create(l *entity.MenuAdditional) error { return nil }
func (fakeAdditionalRepo) ListByMenu(menuID string) ([]*entity.MenuAdditional, error) {
	return nil, nil
}
func (fakeAdditionalRepo) Delete(id string) error { return nil }

type fakeTxRunner struct {
	menuRepo repository.MenuRepository
	dayRepo  repository.MenuDayRepository
	selRepo  repository.SelectionRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	menuRepo repository.MenuRepository,
	dayRepo repository.MenuDayRepository,
	selRepo repository.SelectionRepository,
	addlRepo repository.MenuAdditionalRepository,
) error) error {
	return fn(r.menuRepo, r.dayRepo, r.selRepo, fakeAdditionalRepo{})
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
