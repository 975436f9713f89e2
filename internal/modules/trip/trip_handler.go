package trip

import (
	"errors"
	"net/http"

	"mileage-logbook/internal/middleware"
	"mileage-logbook/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for saved trips.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate // For request body validation
}

// NewHandler creates a new trip handler.
func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the trip CRUD routes on a bearer-protected group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/trips", h.List)
	g.POST("/trips", h.Create)
	g.PUT("/trips/:tripId", h.Update)
	g.DELETE("/trips/:tripId", h.Delete)
}

// List returns the caller's trip history. Absent query params simply don't
// constrain the listing.
func (h *Handler) List(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	filter := models.TripFilter{
		StartDate: c.QueryParam("startDate"),
		EndDate:   c.QueryParam("endDate"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}

	trips, err := h.svc.List(c.Request().Context(), userID, filter)
	if err != nil {
		if errors.Is(err, models.ErrInvalidDatetime) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.List: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to retrieve trips"})
	}
	if trips == nil {
		trips = []*models.Trip{}
	}
	return c.JSON(http.StatusOK, trips)
}

func (h *Handler) Create(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)

	var req models.SaveTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	saved, err := h.svc.Create(c.Request().Context(), userID, req)
	if err != nil {
		if err == models.ErrSequenceTooShort || errors.Is(err, models.ErrInvalidDatetime) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.Create: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to save trip"})
	}

	return c.JSON(http.StatusCreated, saved)
}

func (h *Handler) Update(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)
	tripID := c.Param("tripId")

	var req models.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	updated, err := h.svc.UpdateDatetime(c.Request().Context(), userID, tripID, req.TripDatetime)
	if err != nil {
		if err == models.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Trip not found"})
		}
		if errors.Is(err, models.ErrInvalidDatetime) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		}
		c.Logger().Error("Handler.Update: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update trip"})
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c echo.Context) error {
	userID := c.Get(middleware.ContextUserKey).(string)
	tripID := c.Param("tripId")

	if err := h.svc.Delete(c.Request().Context(), userID, tripID); err != nil {
		if err == models.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Trip not found"})
		}
		c.Logger().Error("Handler.Delete: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to delete trip"})
	}

	return c.NoContent(http.StatusNoContent)
}
