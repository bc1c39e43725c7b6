package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/usecase"
	"github.com/jhoicas/ObraCore-api/internal/domain"
)

// SettingsHandler ajustes de la cuenta: llaves de integración (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// CreateAPIKey godoc
// @Summary      Emitir llave de integración (el secreto solo se muestra una vez)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAPIKeyRequest  true  "Nombre de la llave"
// @Success      201   {object}  dto.APIKeyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/api-keys [post]
func (h *SettingsHandler) CreateAPIKey(c *fiber.Ctx) error {
	var in dto.CreateAPIKeyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateAPIKey(GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el nombre es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAPIKeys godoc
// @Summary      Listar llaves de integración (sin secretos)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIKeyListResponse
// @Router       /api/settings/api-keys [get]
func (h *SettingsHandler) ListAPIKeys(c *fiber.Ctx) error {
	out, err := h.uc.ListAPIKeys()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
