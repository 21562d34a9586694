package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/application/usecase"
)

// MenuConfigHandler maneja la configuración global de la encuesta.
type MenuConfigHandler struct {
	uc *usecase.MenuConfigUseCase
}

// NewMenuConfigHandler construye el handler.
func NewMenuConfigHandler(uc *usecase.MenuConfigUseCase) *MenuConfigHandler {
	return &MenuConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración de la encuesta
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MenuConfigResponse
// @Router       /api/config/menu [get]
func (h *MenuConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración de la encuesta
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateMenuConfigRequest  true  "Configuración"
// @Success      200   {object}  dto.MenuConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config/menu [put]
func (h *MenuConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMenuConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
