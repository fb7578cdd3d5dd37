package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ramdanilegend/calendar-ms/internal/domain/entities"
	"github.com/ramdanilegend/calendar-ms/internal/infrastructure/logger"
	"github.com/ramdanilegend/calendar-ms/internal/ports"
)

// ConversionService orchestrates calendar conversions: validation gate,
// regional policy resolution, the day-count bridge, and confidence and
// fallback bookkeeping. One instance serves all callers; it holds no
// mutable state beyond its injected collaborators.
type ConversionService struct {
	bridge ports.DayCountBridge
	logger *logger.Logger
	now    func() time.Time
}

// NewConversionService creates a new conversion service
func NewConversionService(bridge ports.DayCountBridge, logger *logger.Logger) *ConversionService {
	return &ConversionService{
		bridge: bridge,
		logger: logger,
		now:    time.Now,
	}
}

// Convert is the generic entry point; it dispatches on the calendar of
// the supplied date.
func (s *ConversionService) Convert(ctx context.Context, req ports.ConvertRequest) (*entities.ConversionResult, error) {
	switch req.Calendar {
	case entities.CalendarGregorian:
		date := entities.GregorianDate{Year: req.Year, Month: req.Month, Day: req.Day}
		return s.GregorianToHijri(ctx, date, req.Options())
	case entities.CalendarHijri, entities.CalendarHijriIndonesia:
		date := entities.HijriDate{Year: req.Year, Month: req.Month, Day: req.Day}
		return s.HijriToGregorian(ctx, date, req.Options())
	default:
		return nil, fmt.Errorf("unsupported source calendar %q", req.Calendar)
	}
}

// GregorianToHijri converts a Gregorian date to the Hijri calendar under
// the regional policy selected in opts.
func (s *ConversionService) GregorianToHijri(ctx context.Context, date entities.GregorianDate, opts entities.ConversionOptions) (*entities.ConversionResult, error) {
	region := resolveRegion(opts.Region)
	target := hijriTargetFor(region)

	// Validation gates the conversion only in strict mode; otherwise the
	// caller gets a best-effort result.
	if validation := entities.ValidateGregorianDate(date); !validation.IsValid {
		if opts.Strict {
			return nil, entities.NewInvalidDateError(entities.ErrCodeInvalidGregorianDate, date.String(), target, validation.Errors)
		}
		s.logger.Warn("Proceeding with invalid gregorian date", "date", date.String(), "errors", validation.Errors)
	}

	mapping, fallbackUsed, note, err := s.resolveMapping(region, opts, date.String(), target)
	if err != nil {
		return nil, err
	}

	var notes []string
	if note != "" {
		notes = append(notes, note)
	}

	hijri, err := s.bridge.GregorianToHijri(date)
	if err != nil {
		return nil, entities.NewConversionFailedError(date.String(), target, err)
	}

	confidence := entities.ConfidenceHigh
	if fallbackUsed {
		confidence = entities.ConfidenceLow
	}

	if mapping.AdjustmentDays != 0 {
		hijri, err = s.adjustHijriDate(hijri, mapping.AdjustmentDays)
		if err != nil {
			return nil, entities.NewConversionFailedError(date.String(), target, err)
		}
		if mapping.RukyatBased {
			if confidence != entities.ConfidenceLow {
				confidence = entities.ConfidenceMedium
			}
			notes = append(notes, fmt.Sprintf("adjusted %+d day(s) for local sighting practices", mapping.AdjustmentDays))
		}
	}

	if opts.IncludeMonthNames {
		hijri.MonthName = entities.HijriMonthName(hijri.Month)
	}

	result := &entities.ConversionResult{
		OriginalDate:   date,
		ConvertedDate:  hijri,
		SourceCalendar: entities.CalendarGregorian,
		TargetCalendar: target,
		Region:         region,
		Confidence:     confidence,
		Notes:          strings.Join(notes, "; "),
		FallbackUsed:   fallbackUsed,
	}

	s.logger.LogConversion(string(entities.CalendarGregorian), string(target), string(region), string(confidence), fallbackUsed)

	return result, nil
}

// HijriToGregorian converts a Hijri date to the Gregorian calendar. The
// regional adjustment is inverted on the input before the bridge runs,
// because the bridge only knows the canonical correspondence.
func (s *ConversionService) HijriToGregorian(ctx context.Context, date entities.HijriDate, opts entities.ConversionOptions) (*entities.ConversionResult, error) {
	region := resolveRegion(opts.Region)
	target := entities.CalendarGregorian

	if validation := entities.ValidateHijriDate(date); !validation.IsValid {
		if opts.Strict {
			return nil, entities.NewInvalidDateError(entities.ErrCodeInvalidHijriDate, date.String(), target, validation.Errors)
		}
		s.logger.Warn("Proceeding with invalid hijri date", "date", date.String(), "errors", validation.Errors)
	}

	mapping, fallbackUsed, note, err := s.resolveMapping(region, opts, date.String(), target)
	if err != nil {
		return nil, err
	}

	var notes []string
	if note != "" {
		notes = append(notes, note)
	}

	confidence := entities.ConfidenceHigh
	if fallbackUsed {
		confidence = entities.ConfidenceLow
	}

	canonical := date
	if mapping.AdjustmentDays != 0 {
		canonical, err = s.adjustHijriDate(date, -mapping.AdjustmentDays)
		if err != nil {
			return nil, entities.NewConversionFailedError(date.String(), target, err)
		}
		if mapping.RukyatBased {
			if confidence != entities.ConfidenceLow {
				confidence = entities.ConfidenceMedium
			}
			notes = append(notes, "reverse-adjusted for local sighting practices")
		}
	}

	gregorian, err := s.bridge.HijriToGregorian(canonical)
	if err != nil {
		return nil, entities.NewConversionFailedError(date.String(), target, err)
	}

	original := date
	if opts.IncludeMonthNames {
		original.MonthName = entities.HijriMonthName(original.Month)
	}

	result := &entities.ConversionResult{
		OriginalDate:   original,
		ConvertedDate:  gregorian,
		SourceCalendar: entities.CalendarHijri,
		TargetCalendar: target,
		Region:         region,
		Confidence:     confidence,
		Notes:          strings.Join(notes, "; "),
		FallbackUsed:   fallbackUsed,
	}

	s.logger.LogConversion(string(entities.CalendarHijri), string(target), string(region), string(confidence), fallbackUsed)

	return result, nil
}

// ConvertForIndonesia converts a Gregorian date under the Indonesian
// rukyat policy. Month names are always included and a standing note
// reminds callers that sighting-based results may vary.
func (s *ConversionService) ConvertForIndonesia(ctx context.Context, date entities.GregorianDate, opts entities.ConversionOptions) (*entities.ConversionResult, error) {
	opts.Region = entities.RegionIndonesia
	opts.IncludeMonthNames = true

	result, err := s.GregorianToHijri(ctx, date, opts)
	if err != nil {
		return nil, err
	}

	note := "sighting-based results may vary with local rukyat observation"
	if result.Notes != "" {
		result.Notes = result.Notes + "; " + note
	} else {
		result.Notes = note
	}

	return result, nil
}

// ConvertToday converts the current date (UTC) to the Hijri calendar for
// the given region, with month names included.
func (s *ConversionService) ConvertToday(ctx context.Context, region entities.Region) (*entities.ConversionResult, error) {
	now := s.now().UTC()
	date := entities.GregorianDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}

	opts := entities.DefaultOptions()
	opts.Region = resolveRegion(region)
	opts.IncludeMonthNames = true

	return s.GregorianToHijri(ctx, date, opts)
}

// AvailableRegions returns all regions with a registered mapping
func (s *ConversionService) AvailableRegions() []entities.Region {
	return entities.Regions()
}

// RegionalMapping returns the mapping registered for a region
func (s *ConversionService) RegionalMapping(region entities.Region) (entities.RegionalMapping, bool) {
	return entities.MappingFor(region)
}

// resolveMapping looks up the regional policy, applying the global
// fallback when the region is unknown and the caller allows it.
func (s *ConversionService) resolveMapping(region entities.Region, opts entities.ConversionOptions, original string, target entities.Calendar) (entities.RegionalMapping, bool, string, error) {
	mapping, ok := entities.MappingFor(region)
	if ok {
		return mapping, false, "", nil
	}

	if !opts.AllowFallback {
		return entities.RegionalMapping{}, false, "", entities.NewUnmappedRegionError(region, original, target)
	}

	global, _ := entities.MappingFor(entities.RegionGlobal)
	note := fmt.Sprintf("no mapping registered for region %q, using global correspondence", region)
	s.logger.Warn("Falling back to global mapping", "region", region)

	return global, true, note, nil
}

// adjustHijriDate shifts a Hijri date by whole calendar days. The engine
// has no native Hijri arithmetic, so the shift round-trips through
// Gregorian: the bridge guarantees month and year rollover stay correct
// at the cost of two extra bridge calls.
func (s *ConversionService) adjustHijriDate(date entities.HijriDate, days int) (entities.HijriDate, error) {
	if days == 0 {
		return date, nil
	}

	gregorian, err := s.bridge.HijriToGregorian(date)
	if err != nil {
		return entities.HijriDate{}, fmt.Errorf("adjusting hijri date: %w", err)
	}

	shifted := time.Date(gregorian.Year, time.Month(gregorian.Month), gregorian.Day, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, days)

	adjusted, err := s.bridge.GregorianToHijri(entities.GregorianDate{
		Year:  shifted.Year(),
		Month: int(shifted.Month()),
		Day:   shifted.Day(),
	})
	if err != nil {
		return entities.HijriDate{}, fmt.Errorf("adjusting hijri date: %w", err)
	}

	return adjusted, nil
}

// resolveRegion applies the global default for an unset region
func resolveRegion(region entities.Region) entities.Region {
	if region == "" {
		return entities.RegionGlobal
	}
	return region
}

// hijriTargetFor names the target calendar for a Gregorian-to-Hijri
// conversion; Indonesia gets its own label.
func hijriTargetFor(region entities.Region) entities.Calendar {
	if region == entities.RegionIndonesia {
		return entities.CalendarHijriIndonesia
	}
	return entities.CalendarHijri
}
