package handler

import (
	"log/slog"
	"net/http"

	"krisefikser/internal/delivery/http/response"
	domainerrors "krisefikser/internal/domain/errors"
	"krisefikser/internal/domain/entity"
	"krisefikser/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MapPointTypeHandler holds dependencies for map point type handlers.
type MapPointTypeHandler struct {
	uc     usecase.MapPointTypeUsecase
	logger *slog.Logger
}

// NewMapPointTypeHandler is the constructor for MapPointTypeHandler, injected by Fx.
func NewMapPointTypeHandler(uc usecase.MapPointTypeUsecase, logger *slog.Logger) *MapPointTypeHandler {
	return &MapPointTypeHandler{
		uc:     uc,
		logger: logger,
	}
}

type mapPointTypeRequest struct {
	Title       string `json:"title" validate:"required"`
	IconURL     string `json:"iconUrl" validate:"omitempty,url"`
	Description string `json:"description"`
	OpeningTime string `json:"openingTime"`
}

type mapPointTypeResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IconURL     string `json:"iconUrl"`
	Description string `json:"description"`
	OpeningTime string `json:"openingTime"`
}

func (r mapPointTypeRequest) toInput() usecase.MapPointTypeInput {
	return usecase.MapPointTypeInput{
		Title:       r.Title,
		IconURL:     r.IconURL,
		Description: r.Description,
		OpeningTime: r.OpeningTime,
	}
}

func toMapPointTypeResponse(mpt *entity.MapPointType) mapPointTypeResponse {
	return mapPointTypeResponse{
		ID:          mpt.ID,
		Title:       mpt.Title,
		IconURL:     mpt.IconURL,
		Description: mpt.Description,
		OpeningTime: mpt.OpeningTime,
	}
}

// List returns every map point type.
func (h *MapPointTypeHandler) List(c echo.Context) error {
	mpts, err := h.uc.ListMapPointTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]mapPointTypeResponse, 0, len(mpts))
	for _, mpt := range mpts {
		payload = append(payload, toMapPointTypeResponse(mpt))
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// Get returns a single map point type by ID.
func (h *MapPointTypeHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	mpt, err := h.uc.GetMapPointType(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMapPointTypeResponse(mpt), "")
}

// Create registers a new map point type. Admin only.
func (h *MapPointTypeHandler) Create(c echo.Context) error {
	var req mapPointTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid map point type input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	mpt, err := h.uc.CreateMapPointType(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMapPointTypeResponse(mpt), "Map point type created")
}

// Update replaces an existing map point type. Admin only.
func (h *MapPointTypeHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req mapPointTypeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid map point type input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	mpt, err := h.uc.UpdateMapPointType(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMapPointTypeResponse(mpt), "Map point type updated")
}

// Delete removes a map point type. Admin only.
func (h *MapPointTypeHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMapPointType(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
