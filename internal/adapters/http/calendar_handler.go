package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ramdanilegend/calendar-ms/internal/domain/entities"
	"github.com/ramdanilegend/calendar-ms/internal/infrastructure/config"
	"github.com/ramdanilegend/calendar-ms/internal/infrastructure/logger"
	"github.com/ramdanilegend/calendar-ms/internal/ports"
)

// CalendarHandler handles calendar conversion requests
type CalendarHandler struct {
	service     ports.ConversionService
	logger      *logger.Logger
	defaults    config.CalendarConfig
	conversions *prometheus.CounterVec
}

// NewCalendarHandler creates a new calendar handler. The conversions
// counter may be nil when metrics are disabled.
func NewCalendarHandler(service ports.ConversionService, defaults config.CalendarConfig, logger *logger.Logger, conversions *prometheus.CounterVec) *CalendarHandler {
	return &CalendarHandler{
		service:     service,
		logger:      logger,
		defaults:    defaults,
		conversions: conversions,
	}
}

// ConversionRequest is the HTTP body for the direction-specific
// endpoints. Structural date validation stays in the engine so lenient
// mode can return best-effort results; the handler only checks presence.
type ConversionRequest struct {
	Year              int    `json:"year" validate:"required"`
	Month             int    `json:"month" validate:"required"`
	Day               int    `json:"day" validate:"required"`
	Region            string `json:"region" validate:"omitempty,max=64"`
	AllowFallback     *bool  `json:"allow_fallback"`
	IncludeMonthNames *bool  `json:"include_month_names"`
	Strict            bool   `json:"strict"`
}

// options resolves request fields against the configured defaults
func (h *CalendarHandler) options(req ConversionRequest) entities.ConversionOptions {
	opts := entities.DefaultOptions()
	opts.Region = entities.Region(h.defaults.DefaultRegion)
	opts.AllowFallback = h.defaults.AllowFallback
	opts.IncludeMonthNames = h.defaults.IncludeMonthNames

	if req.Region != "" {
		opts.Region = entities.Region(req.Region)
	}
	if req.AllowFallback != nil {
		opts.AllowFallback = *req.AllowFallback
	}
	if req.IncludeMonthNames != nil {
		opts.IncludeMonthNames = *req.IncludeMonthNames
	}
	opts.Strict = req.Strict

	return opts
}

// Convert handles the generic conversion endpoint
func (h *CalendarHandler) Convert(c echo.Context) error {
	var req ports.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Convert(c.Request().Context(), req)
	if err != nil {
		return h.conversionError(c, err)
	}

	h.countConversion(result)
	return c.JSON(http.StatusOK, result)
}

// GregorianToHijri handles Gregorian to Hijri conversion
func (h *CalendarHandler) GregorianToHijri(c echo.Context) error {
	var req ConversionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date := entities.GregorianDate{Year: req.Year, Month: req.Month, Day: req.Day}
	result, err := h.service.GregorianToHijri(c.Request().Context(), date, h.options(req))
	if err != nil {
		return h.conversionError(c, err)
	}

	h.countConversion(result)
	return c.JSON(http.StatusOK, result)
}

// HijriToGregorian handles Hijri to Gregorian conversion
func (h *CalendarHandler) HijriToGregorian(c echo.Context) error {
	var req ConversionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date := entities.HijriDate{Year: req.Year, Month: req.Month, Day: req.Day}
	result, err := h.service.HijriToGregorian(c.Request().Context(), date, h.options(req))
	if err != nil {
		return h.conversionError(c, err)
	}

	h.countConversion(result)
	return c.JSON(http.StatusOK, result)
}

// ConvertForIndonesia handles conversion under the Indonesian rukyat
// policy
func (h *CalendarHandler) ConvertForIndonesia(c echo.Context) error {
	var req ConversionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date := entities.GregorianDate{Year: req.Year, Month: req.Month, Day: req.Day}
	result, err := h.service.ConvertForIndonesia(c.Request().Context(), date, h.options(req))
	if err != nil {
		return h.conversionError(c, err)
	}

	h.countConversion(result)
	return c.JSON(http.StatusOK, result)
}

// ConvertToday handles conversion of the current date
func (h *CalendarHandler) ConvertToday(c echo.Context) error {
	region := entities.Region(c.QueryParam("region"))

	result, err := h.service.ConvertToday(c.Request().Context(), region)
	if err != nil {
		return h.conversionError(c, err)
	}

	h.countConversion(result)
	return c.JSON(http.StatusOK, result)
}

// ValidateDate handles stand-alone date validation
func (h *CalendarHandler) ValidateDate(c echo.Context) error {
	var req ports.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var result entities.DateValidationResult
	switch req.Calendar {
	case entities.CalendarGregorian:
		result = entities.ValidateGregorianDate(entities.GregorianDate{Year: req.Year, Month: req.Month, Day: req.Day})
	default:
		result = entities.ValidateHijriDate(entities.HijriDate{Year: req.Year, Month: req.Month, Day: req.Day})
	}

	return c.JSON(http.StatusOK, result)
}

// ListRegions handles listing the available regions and their mappings
func (h *CalendarHandler) ListRegions(c echo.Context) error {
	regions := h.service.AvailableRegions()
	mappings := make([]entities.RegionalMapping, 0, len(regions))
	for _, region := range regions {
		if mapping, ok := h.service.RegionalMapping(region); ok {
			mappings = append(mappings, mapping)
		}
	}

	return c.JSON(http.StatusOK, RegionsResponse{Regions: regions, Mappings: mappings})
}

// GetRegion handles getting a single regional mapping
func (h *CalendarHandler) GetRegion(c echo.Context) error {
	region := entities.Region(c.Param("region"))

	mapping, ok := h.service.RegionalMapping(region)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Region not found")
	}

	return c.JSON(http.StatusOK, mapping)
}

// ListMonths handles listing the Hijri month names
func (h *CalendarHandler) ListMonths(c echo.Context) error {
	names := entities.HijriMonthNames()
	months := make([]MonthResponse, 0, len(names))
	for i, name := range names {
		months = append(months, MonthResponse{Number: i + 1, Name: name})
	}

	return c.JSON(http.StatusOK, months)
}

// GetMonth handles getting a single Hijri month name. Out-of-range
// numbers return the degraded placeholder rather than an error.
func (h *CalendarHandler) GetMonth(c echo.Context) error {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid month number")
	}

	return c.JSON(http.StatusOK, MonthResponse{Number: number, Name: entities.HijriMonthName(number)})
}

// conversionError maps engine error codes to HTTP statuses
func (h *CalendarHandler) conversionError(c echo.Context, err error) error {
	convErr, ok := entities.AsConversionError(err)
	if !ok {
		h.logger.Error("Conversion failed", "error", err, "path", c.Request().URL.Path)
		return echo.NewHTTPError(http.StatusInternalServerError, "Conversion failed")
	}

	switch convErr.Code {
	case entities.ErrCodeInvalidGregorianDate, entities.ErrCodeInvalidHijriDate:
		return echo.NewHTTPError(http.StatusBadRequest, convErr)
	case entities.ErrCodeNoRegionalMapping:
		return echo.NewHTTPError(http.StatusNotFound, convErr)
	default:
		h.logger.Error("Conversion failed", "error", convErr, "path", c.Request().URL.Path)
		return echo.NewHTTPError(http.StatusInternalServerError, convErr)
	}
}

// countConversion records a completed conversion in the metrics counter
func (h *CalendarHandler) countConversion(result *entities.ConversionResult) {
	if h.conversions == nil {
		return
	}
	h.conversions.WithLabelValues(
		string(result.SourceCalendar),
		string(result.TargetCalendar),
		string(result.Region),
		string(result.Confidence),
	).Inc()
}

// Response types
type RegionsResponse struct {
	Regions  []entities.Region          `json:"regions"`
	Mappings []entities.RegionalMapping `json:"mappings"`
}

type MonthResponse struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
