package address

import (
	"net/http"

	"mileage-logbook/internal/middleware"
	"mileage-logbook/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for addresses.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate // For request body validation
}

// NewHandler creates a new address handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the address CRUD routes on a bearer-protected group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/addresses", h.List)
	g.POST("/addresses", h.Create)
	g.PUT("/addresses/:addressId", h.Update)
	g.DELETE("/addresses/:addressId", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	addresses, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Error("Handler.List: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to retrieve addresses"})
	}
	if addresses == nil {
		addresses = []*models.Address{}
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *Handler) Create(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	var req models.AddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	created, err := h.svc.Create(c.Request().Context(), userID, req.Address)
	if err != nil {
		if err == models.ErrEmptyAddress {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.Create: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to save address"})
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)
	addressID := c.Param("addressId")

	var req models.AddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	updated, err := h.svc.Update(c.Request().Context(), userID, addressID, req.Address)
	if err != nil {
		if err == models.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Address not found"})
		}
		if err == models.ErrEmptyAddress {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.Update: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update address"})
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)
	addressID := c.Param("addressId")

	if err := h.svc.Delete(c.Request().Context(), userID, addressID); err != nil {
		if err == models.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Address not found"})
		}
		c.Logger().Error("Handler.Delete: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to delete address"})
	}

	return c.NoContent(http.StatusNoContent)
}
