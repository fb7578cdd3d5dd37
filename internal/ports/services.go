package ports

import (
	"context"

	"github.com/ramdanilegend/calendar-ms/internal/domain/entities"
)

// ConversionService interface for calendar conversion operations
type ConversionService interface {
	Convert(ctx context.Context, req ConvertRequest) (*entities.ConversionResult, error)
	GregorianToHijri(ctx context.Context, date entities.GregorianDate, opts entities.ConversionOptions) (*entities.ConversionResult, error)
	HijriToGregorian(ctx context.Context, date entities.HijriDate, opts entities.ConversionOptions) (*entities.ConversionResult, error)
	ConvertForIndonesia(ctx context.Context, date entities.GregorianDate, opts entities.ConversionOptions) (*entities.ConversionResult, error)
	ConvertToday(ctx context.Context, region entities.Region) (*entities.ConversionResult, error)
	AvailableRegions() []entities.Region
	RegionalMapping(region entities.Region) (entities.RegionalMapping, bool)
}

// Request/Response Types

// ConvertRequest is the generic conversion request. Calendar names the
// calendar of the supplied date; the target is implied by the source.
type ConvertRequest struct {
	Calendar          entities.Calendar `json:"calendar" validate:"required,oneof=gregorian hijri"`
	Year              int               `json:"year" validate:"required"`
	Month             int               `json:"month" validate:"required"`
	Day               int               `json:"day" validate:"required"`
	Region            entities.Region   `json:"region" validate:"omitempty,max=64"`
	AllowFallback     *bool             `json:"allow_fallback"`
	IncludeMonthNames bool              `json:"include_month_names"`
	Strict            bool              `json:"strict"`
}

// Options resolves the request into engine options, applying the lenient
// defaults for fields the caller left unset.
func (r ConvertRequest) Options() entities.ConversionOptions {
	opts := entities.DefaultOptions()
	if r.Region != "" {
		opts.Region = r.Region
	}
	if r.AllowFallback != nil {
		opts.AllowFallback = *r.AllowFallback
	}
	opts.IncludeMonthNames = r.IncludeMonthNames
	opts.Strict = r.Strict
	return opts
}
