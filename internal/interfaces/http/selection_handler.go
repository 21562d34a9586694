package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comedor-api/internal/application/auth"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	appsurvey "github.com/jhoicas/Comedor-api/internal/application/survey"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
)

// SelectionHandler maneja el registro de elecciones. Un usuario con rol
// empleado solo opera sobre su propio Employee y dentro de la ventana de
// edición; un admin puede registrar por cualquier empleado y saltarse la
// ventana.
type SelectionHandler struct {
	registerUC *appsurvey.RegisterSelectionUseCase
	weeklyUC   *appsurvey.WeeklyMenuUseCase
	authUC     *auth.AuthUseCase
}

// NewSelectionHandler construye el handler.
func NewSelectionHandler(
	registerUC *appsurvey.RegisterSelectionUseCase,
	weeklyUC *appsurvey.WeeklyMenuUseCase,
	authUC *auth.AuthUseCase,
) *SelectionHandler {
	return &SelectionHandler{registerUC: registerUC, weeklyUC: weeklyUC, authUC: authUC}
}

// Register godoc
// @Summary      Registrar o actualizar la elección de un día
// @Tags         selections
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSelectionRequest  true  "Elección del empleado"
// @Success      200   {object}  dto.SelectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/selections [post]
func (h *SelectionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MenuDayID == "" || in.Slot == "" || in.DeliveryBranchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "menu_day_id, slot y delivery_branch_id son requeridos"})
	}

	employeeID := in.EmployeeID
	if GetRole(c) == entity.RoleEmpleado {
		me, err := h.authUC.Me(GetUserID(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no válido"})
		}
		if me.EmployeeID == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "usuario sin empleado vinculado"})
		}
		employeeID = *me.EmployeeID
		// El empleado solo elige mientras su ventana de edición está activa.
		if err := h.weeklyUC.EnsureDayEditable(c.UserContext(), in.MenuDayID); err != nil {
			if err == domain.ErrNotFound {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "día del menú no encontrado"})
			}
			if err == domain.ErrInvalidOperation {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "WINDOW_CLOSED", Message: "la ventana de edición de este día ya cerró"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	if employeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id es requerido"})
	}

	sel, err := h.registerUC.Register(c.UserContext(), appsurvey.RegisterSelectionInput{
		EmployeeID:         employeeID,
		MenuDayID:          in.MenuDayID,
		Slot:               in.Slot,
		DeliveryBranchID:   in.DeliveryBranchID,
		DeliveryLocationID: in.DeliveryLocationID,
		AdditionalOptionID: in.AdditionalOptionID,
	})
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "día del menú o empleado no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "slot, punto de entrega o sucursal inválidos"})
		}
		if err == domain.ErrInvalidOperation {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "ADDITIONAL_UNAVAILABLE", Message: "el adicional no está disponible en este menú"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toSelectionResponse(sel))
}

func toSelectionResponse(s *entity.Selection) dto.SelectionResponse {
	return dto.SelectionResponse{
		ID:                 s.ID,
		EmployeeID:         s.EmployeeID,
		MenuDayID:          s.MenuDayID,
		Slot:               s.Slot,
		DeliveryBranchID:   s.DeliveryBranchID,
		DeliveryLocationID: s.DeliveryLocationID,
		AdditionalOptionID: s.AdditionalOptionID,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
