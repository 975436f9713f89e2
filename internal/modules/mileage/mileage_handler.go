package mileage

import (
	"net/http"

	"mileage-logbook/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for mileage computation.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new mileage handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the mileage endpoint. It is unauthenticated: the
// computation touches no user data.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/mileage", h.Calculate)
}

// Calculate computes total and per-leg distances for a sequence of
// addresses. Fewer than two addresses is rejected before any upstream call.
func (h *Handler) Calculate(c echo.Context) error {
	var req models.MileageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "At least two addresses are required"})
	}

	result, err := h.svc.Compute(c.Request().Context(), req.Addresses)
	if err != nil {
		if err == models.ErrSequenceTooShort {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "At least two addresses are required"})
		}
		c.Logger().Error("Handler.Calculate: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to compute mileage"})
	}

	return c.JSON(http.StatusOK, result)
}
