// Package http exposes the rate aggregation pipeline over a JSON API.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	getShippingRatesHandler queries.GetShippingRatesQueryHandler
}

// NewServer creates a new HTTP server with the required query handler.
func NewServer(getShippingRatesHandler queries.GetShippingRatesQueryHandler) *Server {
	return &Server{
		getShippingRatesHandler: getShippingRatesHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/rates", s.GetRates)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetRates handles POST /api/v1/rates - quotes every shipping option for
// one parcel. Client mistakes map to 400, missing service configuration
// to 500; carrier outages never surface as errors here.
func (s *Server) GetRates(ctx echo.Context) error {
	var req rateRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Error: "invalid request body",
		})
	}

	unit := kernel.WeightUnit(req.WeightUnit)
	if unit == "" {
		unit = kernel.WeightUnitGrams
	}

	query, err := queries.NewGetShippingRatesQuery(
		req.Country, req.Street, req.City, req.Province, req.PostalCode,
		req.Weight, unit,
		req.LengthCm, req.WidthCm, req.HeightCm)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response, err := s.getShippingRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ratesResponse{
		Rates:  toRateDTOs(response.Rates),
		Origin: response.Origin,
	})
}

// errorJSON maps application errors onto HTTP status codes. Validation
// failures are the client's fault; everything else is ours.
func errorJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrNotConfigured):
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "failed to retrieve shipping rates",
			Details: err.Error(),
		})
	}
}
