package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"krisefikser/internal/delivery/http/response"
	domainerrors "krisefikser/internal/domain/errors"
	"krisefikser/internal/domain/entity"
	"krisefikser/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for crisis event handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

type eventRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64    `json:"longitude" validate:"min=-180,max=180"`
	Radius      float64    `json:"radius" validate:"gte=0"`
	Severity    string     `json:"severity" validate:"required"`
	StartTime   *time.Time `json:"startTime"`
}

type eventResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Radius      float64    `json:"radius"`
	Severity    string     `json:"severity"`
	StartTime   *time.Time `json:"startTime,omitempty"`
}

func (r eventRequest) toInput() usecase.EventInput {
	return usecase.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Radius:      r.Radius,
		Severity:    r.Severity,
		StartTime:   r.StartTime,
	}
}

func toEventResponse(event *entity.Event) eventResponse {
	return eventResponse{
		ID:          event.ID,
		Title:       event.Title,
		Description: event.Description,
		Latitude:    event.Latitude,
		Longitude:   event.Longitude,
		Radius:      event.Radius,
		Severity:    event.Severity,
		StartTime:   event.StartTime,
	}
}

// List returns every event.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.uc.ListEvents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]eventResponse, 0, len(events))
	for _, event := range events {
		payload = append(payload, toEventResponse(event))
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// Get returns a single event by ID.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	event, err := h.uc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventResponse(event), "")
}

// Create registers a new event. Admin only.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventResponse(event), "Event created")
}

// Update replaces an existing event. Admin only.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventResponse(event), "Event updated")
}

// Delete removes an event. Admin only.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be an integer")
	}

	return id, nil
}
