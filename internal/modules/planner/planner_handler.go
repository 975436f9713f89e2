package planner

import (
	"errors"
	"net/http"

	"mileage-logbook/internal/middleware"
	"mileage-logbook/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for the in-progress trip draft.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
}

// NewHandler creates a new planner handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the planner routes on a bearer-protected group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/planner", h.Get)
	g.DELETE("/planner", h.Clear)
	g.POST("/planner/stops", h.AddStop)
	g.DELETE("/planner/stops/:key", h.RemoveStop)
	g.PUT("/planner/order", h.Reorder)
	g.POST("/planner/calculate", h.Calculate)
	g.POST("/planner/save", h.Save)
}

func (h *Handler) Get(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)
	return c.JSON(http.StatusOK, h.svc.Get(c.Request().Context(), userID))
}

func (h *Handler) Clear(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)
	h.svc.Clear(c.Request().Context(), userID)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddStop(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	var req models.AddStopRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	draft, err := h.svc.AddStop(c.Request().Context(), userID, req.AddressID)
	if err != nil {
		if err == models.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Address not found"})
		}
		c.Logger().Error("Handler.AddStop: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to add stop"})
	}
	return c.JSON(http.StatusOK, draft)
}

func (h *Handler) RemoveStop(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)
	key := c.Param("key")

	draft, err := h.svc.RemoveStop(c.Request().Context(), userID, key)
	if err != nil {
		if err == models.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Stop not found"})
		}
		c.Logger().Error("Handler.RemoveStop: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to remove stop"})
	}
	return c.JSON(http.StatusOK, draft)
}

func (h *Handler) Reorder(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	var req models.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}

	draft, err := h.svc.Reorder(c.Request().Context(), userID, req.OldIndex, req.NewIndex)
	if err != nil {
		if errors.Is(err, models.ErrInvalidReorder) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.Reorder: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to reorder stops"})
	}
	return c.JSON(http.StatusOK, draft)
}

func (h *Handler) Calculate(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	draft, err := h.svc.Calculate(c.Request().Context(), userID)
	if err != nil {
		if err == models.ErrSequenceTooShort {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "At least two stops are required"})
		}
		c.Logger().Error("Handler.Calculate: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to compute mileage"})
	}
	return c.JSON(http.StatusOK, draft)
}

func (h *Handler) Save(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	var req models.SaveDraftRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	saved, err := h.svc.Save(c.Request().Context(), userID, req)
	if err != nil {
		if err == models.ErrSequenceTooShort || err == models.ErrNothingCalculated || errors.Is(err, models.ErrInvalidDatetime) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.Save: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to save trip"})
	}
	return c.JSON(http.StatusCreated, saved)
}
