package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/inventory"
	"github.com/jhoicas/ObraCore-api/internal/application/usecase"
	"github.com/jhoicas/ObraCore-api/internal/domain"
)

// TransactionHandler maneja las peticiones HTTP del libro de movimientos de stock (protegido).
type TransactionHandler struct {
	postUC *inventory.PostTransactionUseCase
	uc     *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(postUC *inventory.PostTransactionUseCase, uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{postUC: postUC, uc: uc}
}

// Post godoc
// @Summary      Registrar movimiento de stock (IN/OUT/RETURN)
// @Description  Inserta el asiento y actualiza stock (y MAUC en entradas con
//               costo) de forma atómica. OUT por encima del stock disponible
//               se rechaza sin efectos.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostTransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.PostTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Post(c *fiber.Ctx) error {
	var in dto.PostTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.postUC.Post(c.Context(), GetActor(c), inventory.PostTransactionInput{
		ProductID:       in.ProductID,
		TransactionType: in.TransactionType,
		Quantity:        in.Quantity,
		UnitCost:        in.UnitCost,
		Reason:          in.Reason,
		ProjectName:     in.ProjectName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PostTransactionResponse{
		Transaction: usecase.ToTransactionResponse(result.Transaction),
		NewStock:    result.NewStock,
		NewMAUC:     result.NewMAUC,
	})
}

// History godoc
// @Summary      Historial de movimientos de un producto (más reciente primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Límite (1..200)"  default(50)
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/transactions [get]
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	// Montado en /products/:id/transactions y en /transactions?product_id=.
	id := c.Params("id")
	if id == "" {
		id = c.Query("product_id")
	}
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "product_id es requerido"})
	}
	out, err := h.uc.History(id, c.QueryInt("limit", 0))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen de movimientos de los últimos 7 días por tipo
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TransactionSummaryResponse
// @Router       /api/transactions/summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
