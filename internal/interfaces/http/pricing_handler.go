package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/application/pricing"
	"github.com/jhoicas/Comedor-api/internal/domain"
)

// PricingHandler maneja la facturación semanal y el cierre de nómina.
type PricingHandler struct {
	uc *pricing.UseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.UseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// WeeklyBilling godoc
// @Summary      Facturación semanal de un menú
// @Description  Valoriza cada selección con el subsidio vigente; las líneas ya estampadas por nómina se devuelven desde el snapshot.
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del menú"
// @Success      200  {object}  dto.WeeklyBillingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/billing [get]
func (h *PricingHandler) WeeklyBilling(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.WeeklyBilling(c.UserContext(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ClosePayroll godoc
// @Summary      Cerrar nómina de un menú
// @Description  Estampa precio y subsidio en cada selección; las ya estampadas se dejan intactas (idempotente).
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del menú"
// @Success      200  {object}  dto.ClosePayrollResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menus/{id}/close-payroll [post]
func (h *PricingHandler) ClosePayroll(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ClosePayroll(c.UserContext(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "menú no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
