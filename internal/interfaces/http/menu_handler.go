package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	appsurvey "github.com/jhoicas/Comedor-api/internal/application/survey"
	"github.com/jhoicas/Comedor-api/internal/domain"
	domsurvey "github.com/jhoicas/Comedor-api/internal/domain/survey"
)

// MenuHandler maneja el ciclo de vida del menú semanal: obtención perezosa,
// edición de días, cierre/reapertura, adicionales y propagación a sucursales.
type MenuHandler struct {
	weeklyUC    *appsurvey.WeeklyMenuUseCase
	propagateUC *appsurvey.PropagateMenuUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(weeklyUC *appsurvey.WeeklyMenuUseCase, propagateUC *appsurvey.PropagateMenuUseCase) *MenuHandler {
	return &MenuHandler{weeklyUC: weeklyUC, propagateUC: propagateUC}
}

// GetWeekly godoc
// @Summary      Obtener (o crear) el menú semanal
// @Description  branch_id vacío pide el menú de empresa; week_start vacío pide la semana siguiente.
// @Tags         menus
// @Security     Bearer
// @Produce      json
// @Param        branch_id   query  string  false  "ID de la sucursal"
// @Param        week_start  query  string  false  "Lunes de la semana (2006-01-02)"
// @Success      200  {object}  dto.MenuResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/menus/weekly [get]
func (h *MenuHandler) GetWeekly(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.GetWeeklyMenuRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	var branchID *string
	if in.BranchID != "" {
		branchID = &in.BranchID
	}
	var weekStart *time.Time
	if in.WeekStart != "" {
		t, err := time.Parse("2006-01-02", in.WeekStart)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "week_start debe tener formato 2006-01-02"})
		}
		weekStart = &t
	}
	out, err := h.weeklyUC.GetOrCreateWeekly(c.UserContext(), companyID, branchID, weekStart)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateDay godoc
// @Summary      Editar un día del menú
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del día del menú"
// @Param        body  body  dto.UpdateMenuDayRequest  true  "Casillas y flags del día"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/menus/days/{id} [put]
func (h *MenuHandler) UpdateDay(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMenuDayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.weeklyUC.UpdateDay(c.UserContext(), id, in); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "día del menú no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "alguna opción referenciada no existe"})
		}
		if err == domain.ErrInvalidOperation {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SURVEY_CLOSED", Message: "la encuesta del menú está cerrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Close godoc
// @Summary      Cerrar manualmente la encuesta del menú
// @Tags         menus
// @Security     Bearer
// @Param        id  path  string  true  "ID del menú"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/close [post]
func (h *MenuHandler) Close(c *fiber.Ctx) error {
	return h.setClosure(c, true)
}

// Reopen godoc
// @Summary      Reabrir manualmente la encuesta del menú
// @Tags         menus
// @Security     Bearer
// @Param        id  path  string  true  "ID del menú"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/reopen [post]
func (h *MenuHandler) Reopen(c *fiber.Ctx) error {
	return h.setClosure(c, false)
}

func (h *MenuHandler) setClosure(c *fiber.Ctx, close bool) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var err error
	if close {
		err = h.weeklyUC.Close(c.UserContext(), id)
	} else {
		err = h.weeklyUC.Reopen(c.UserContext(), id)
	}
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetAdditionals godoc
// @Summary      Reemplazar los adicionales fijos del menú
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del menú"
// @Param        body  body  dto.SetAdditionalsRequest  true  "IDs de opciones adicionales"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/additionals [put]
func (h *MenuHandler) SetAdditionals(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SetAdditionalsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.weeklyUC.SetAdditionals(c.UserContext(), id, in.OptionIDs); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "alguna opción referenciada no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar un menú sin selecciones
// @Tags         menus
// @Security     Bearer
// @Param        id  path  string  true  "ID del menú"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/menus/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.weeklyUC.Delete(c.UserContext(), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_SELECTIONS", Message: "el menú tiene selecciones registradas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Clone godoc
// @Summary      Propagar el menú de empresa a sucursales
// @Description  Una sucursal con la encuesta completa por algún empleado se salta, no es un error.
// @Tags         menus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloneMenuRequest  true  "Semana y sucursales destino"
// @Success      200   {object}  dto.CloneMenuResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menus/clone [post]
func (h *MenuHandler) Clone(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.CloneMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.WeekStart == "" || len(in.BranchIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "week_start y branch_ids son requeridos"})
	}
	parsed, err := time.Parse("2006-01-02", in.WeekStart)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "week_start debe tener formato 2006-01-02"})
	}
	weekStart, weekEnd := domsurvey.WeekRange(parsed)
	updated, skipped, err := h.propagateUC.CloneToBranches(c.UserContext(), companyID, weekStart, weekEnd, in.BranchIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CloneMenuResponse{Updated: updated, Skipped: skipped})
}
