package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
)

// ShiftHandler exposes shift scheduling. Overlapping shifts are
// accepted; preventing them is out of scope for this model.
type ShiftHandler struct {
	Shifts *store.ShiftStore
}

// List handles GET /v1/shifts, optionally filtered by ?user_id=.
func (h *ShiftHandler) List(c echo.Context) error {
	if userID := c.QueryParam("user_id"); userID != "" {
		return c.JSON(http.StatusOK, h.Shifts.ForUser(userID))
	}
	return c.JSON(http.StatusOK, h.Shifts.Shifts())
}

// Create handles POST /v1/shifts.
func (h *ShiftHandler) Create(c echo.Context) error {
	var body struct {
		UserID string    `json:"user_id"`
		Start  time.Time `json:"start"`
		End    time.Time `json:"end"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == "" || body.Start.IsZero() || body.End.IsZero() || !body.End.After(body.Start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and a valid start/end range are required"})
	}
	sh, err := h.Shifts.Create(model.Shift{UserID: body.UserID, Start: body.Start, End: body.End})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return shiftError(c, err)
	}
	return c.JSON(http.StatusCreated, sh)
}

// Update handles PUT /v1/shifts/:id.
func (h *ShiftHandler) Update(c echo.Context) error {
	var body struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Start.IsZero() || body.End.IsZero() || !body.End.After(body.Start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "a valid start/end range is required"})
	}
	sh, err := h.Shifts.Update(c.Param("id"), model.Shift{Start: body.Start, End: body.End})
	if err != nil {
		return shiftError(c, err)
	}
	return c.JSON(http.StatusOK, sh)
}

// Delete handles DELETE /v1/shifts/:id.
func (h *ShiftHandler) Delete(c echo.Context) error {
	if err := h.Shifts.Delete(c.Param("id")); err != nil {
		return shiftError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func shiftError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrShiftNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "shift not found"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "shift operation failed"})
}
