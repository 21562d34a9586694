package survey_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Sustituyen a los adaptadores
// de PostgreSQL en las pruebas de los casos de uso.
// ──────────────────────────────────────────────────────────────────────────────

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeMenuRepo struct{ menus map[string]*entity.Menu }

func newFakeMenuRepo() *fakeMenuRepo { return &fakeMenuRepo{menus: map[string]*entity.Menu{}} }

func (r *fakeMenuRepo) Create(m *entity.Menu) error {
	cp := *m
	r.menus[m.ID] = &cp
	return nil
}

func (r *fakeMenuRepo) GetByID(id string) (*entity.Menu, error) {
	m, ok := r.menus[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMenuRepo) GetByWeek(companyID string, branchID *string, weekStart time.Time) (*entity.Menu, error) {
	for _, m := range r.menus {
		if m.CompanyID != companyID || !m.WeekStart.Equal(weekStart) {
			continue
		}
		if (m.BranchID == nil) != (branchID == nil) {
			continue
		}
		if branchID != nil && *m.BranchID != *branchID {
			continue
		}
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeMenuRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Menu, error) {
	var out []*entity.Menu
	for _, m := range r.menus {
		if m.CompanyID == companyID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMenuRepo) Update(m *entity.Menu) error {
	cp := *m
	r.menus[m.ID] = &cp
	return nil
}

func (r *fakeMenuRepo) Delete(id string) error {
	delete(r.menus, id)
	return nil
}

type fakeMenuDayRepo struct{ days map[string]*entity.MenuDay }

func newFakeMenuDayRepo() *fakeMenuDayRepo { return &fakeMenuDayRepo{days: map[string]*entity.MenuDay{}} }

func (r *fakeMenuDayRepo) CreateBatch(days []*entity.MenuDay) error {
	for _, d := range days {
		cp := *d
		r.days[d.ID] = &cp
	}
	return nil
}

func (r *fakeMenuDayRepo) GetByID(id string) (*entity.MenuDay, error) {
	d, ok := r.days[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeMenuDayRepo) ListByMenu(menuID string) ([]*entity.MenuDay, error) {
	var out []*entity.MenuDay
	for _, d := range r.days {
		if d.MenuID == menuID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].ScheduleID < out[j].ScheduleID
	})
	return out, nil
}

func (r *fakeMenuDayRepo) Update(d *entity.MenuDay) error {
	cp := *d
	r.days[d.ID] = &cp
	return nil
}

type fakeSelectionRepo struct{ sels map[string]*entity.Selection }

func newFakeSelectionRepo() *fakeSelectionRepo {
	return &fakeSelectionRepo{sels: map[string]*entity.Selection{}}
}

func (r *fakeSelectionRepo) Create(s *entity.Selection) error {
	cp := *s
	r.sels[s.ID] = &cp
	return nil
}

func (r *fakeSelectionRepo) GetByID(id string) (*entity.Selection, error) {
	s, ok := r.sels[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSelectionRepo) GetByEmployeeAndDay(employeeID, menuDayID string) (*entity.Selection, error) {
	for _, s := range r.sels {
		if s.EmployeeID == employeeID && s.MenuDayID == menuDayID {
			cp := *s
			return &cp, nil
		}
	}
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
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSelectionRepo) Update(s *entity.Selection) error {
	cp := *s
	r.sels[s.ID] = &cp
	return nil
}

func (r *fakeSelectionRepo) DeleteByMenuDay(menuDayID string) error {
	for id, s := range r.sels {
		if s.MenuDayID == menuDayID {
			delete(r.sels, id)
		}
	}
	return nil
}

func (r *fakeSelectionRepo) CountByMenu(menuID string) (int, error) {
	// El fake no conoce la relación día→menú; las pruebas que lo necesitan
	// pasan por ListByMenuDayIDs.
	return len(r.sels), nil
}

type fakeAdditionalRepo struct{ links map[string]*entity.MenuAdditional }

func newFakeAdditionalRepo() *fakeAdditionalRepo {
	return &fakeAdditionalRepo{links: map[string]*entity.MenuAdditional{}}
}

func (r *fakeAdditionalRepo) Create(l *entity.MenuAdditional) error {
	cp := *l
	r.links[l.ID] = &cp
	return nil
}

func (r *fakeAdditionalRepo) ListByMenu(menuID string) ([]*entity.MenuAdditional, error) {
	var out []*entity.MenuAdditional
	for _, l := range r.links {
		if l.MenuID == menuID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAdditionalRepo) Delete(id string) error {
	delete(r.links, id)
	return nil
}

type fakeEmployeeRepo struct{ emps map[string]*entity.Employee }

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{emps: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error { r.emps[e.ID] = e; return nil }

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.emps[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByCompanyAndDocument(companyID, document string) (*entity.Employee, error) {
	for _, e := range r.emps {
		if e.CompanyID == companyID && e.Document == document {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(e *entity.Employee) error { r.emps[e.ID] = e; return nil }

func (r *fakeEmployeeRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.emps {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) ListByBranch(branchID string) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.emps {
		if e.BranchID == branchID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Delete(id string) error { delete(r.emps, id); return nil }

type fakeLocationRepo struct{ locs map[string]*entity.Location }

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locs: map[string]*entity.Location{}}
}

func (r *fakeLocationRepo) Create(l *entity.Location) error { r.locs[l.ID] = l; return nil }

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.locs[id]
	if !ok {
		return nil, nil
	}
	return l, nil
}

func (r *fakeLocationRepo) ListByCompany(companyID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locs {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) Update(l *entity.Location) error { r.locs[l.ID] = l; return nil }

func (r *fakeLocationRepo) Delete(id string) error { delete(r.locs, id); return nil }

type fakeScheduleRepo struct{ schedules []*entity.Schedule }

func (r *fakeScheduleRepo) Create(s *entity.Schedule) error {
	r.schedules = append(r.schedules, s)
	return nil
}

func (r *fakeScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	for _, s := range r.schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) ListByCompany(companyID string) ([]*entity.Schedule, error) {
	return r.schedules, nil
}

func (r *fakeScheduleRepo) ListActiveByCompany(companyID string) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range r.schedules {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Update(s *entity.Schedule) error { return nil }

func (r *fakeScheduleRepo) Delete(id string) error { return nil }

type fakeOptionRepo struct{ opts map[string]*entity.Option }

func newFakeOptionRepo() *fakeOptionRepo { return &fakeOptionRepo{opts: map[string]*entity.Option{}} }

func (r *fakeOptionRepo) Create(o *entity.Option) error { r.opts[o.ID] = o; return nil }

func (r *fakeOptionRepo) GetByID(id string) (*entity.Option, error) {
	o, ok := r.opts[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (r *fakeOptionRepo) GetByCompanyAndCode(companyID, code string) (*entity.Option, error) {
	for _, o := range r.opts {
		if o.CompanyID == companyID && o.Code == code {
			return o, nil
		}
	}
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
	var out []*entity.Option
	for _, o := range r.opts {
		if o.CompanyID == companyID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOptionRepo) Update(o *entity.Option) error { r.opts[o.ID] = o; return nil }

func (r *fakeOptionRepo) Delete(id string) error { delete(r.opts, id); return nil }

type fakeConfigRepo struct{ cfg entity.MenuConfig }

func (r *fakeConfigRepo) GetOrCreate() (*entity.MenuConfig, error) {
	cp := r.cfg
	return &cp, nil
}

func (r *fakeConfigRepo) Update(cfg *entity.MenuConfig) error {
	r.cfg = *cfg
	return nil
}

// fakeTxRunner pasa los mismos fakes dentro del "tx" (los fakes ya son
// atómicos a efectos de las pruebas).
type fakeTxRunner struct {
	menuRepo repository.MenuRepository
	dayRepo  repository.MenuDayRepository
	selRepo  repository.SelectionRepository
	addlRepo repository.MenuAdditionalRepository
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	menuRepo repository.MenuRepository,
	dayRepo repository.MenuDayRepository,
	selRepo repository.SelectionRepository,
	addlRepo repository.MenuAdditionalRepository,
) error) error {
	return fn(r.menuRepo, r.dayRepo, r.selRepo, r.addlRepo)
}
