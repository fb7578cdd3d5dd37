package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramdanilegend/calendar-ms/internal/adapters/hijricalc"
	"github.com/ramdanilegend/calendar-ms/internal/domain/entities"
	"github.com/ramdanilegend/calendar-ms/internal/infrastructure/logger"
	"github.com/ramdanilegend/calendar-ms/internal/ports"
)

func newTestService() *ConversionService {
	return NewConversionService(hijricalc.NewTabularBridge(), logger.NewNop())
}

func TestGregorianToHijri_GlobalRegion(t *testing.T) {
	svc := newTestService()

	result, err := svc.GregorianToHijri(context.Background(),
		entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, entities.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, entities.CalendarGregorian, result.SourceCalendar)
	assert.Equal(t, entities.CalendarHijri, result.TargetCalendar)
	assert.Equal(t, entities.RegionGlobal, result.Region)
	assert.Equal(t, entities.ConfidenceHigh, result.Confidence)
	assert.False(t, result.FallbackUsed)

	hijri, ok := result.ConvertedDate.(entities.HijriDate)
	require.True(t, ok)
	assert.Equal(t, entities.HijriDate{Year: 1445, Month: 6, Day: 19}, hijri)
}

func TestGregorianToHijri_IndonesiaDiverges(t *testing.T) {
	svc := newTestService()
	date := entities.GregorianDate{Year: 2024, Month: 1, Day: 1}

	global, err := svc.GregorianToHijri(context.Background(), date, entities.DefaultOptions())
	require.NoError(t, err)

	opts := entities.DefaultOptions()
	opts.Region = entities.RegionIndonesia
	indonesia, err := svc.GregorianToHijri(context.Background(), date, opts)
	require.NoError(t, err)

	assert.NotEqual(t, global.ConvertedDate, indonesia.ConvertedDate)
	assert.Equal(t, entities.ConfidenceMedium, indonesia.Confidence)
	assert.Equal(t, entities.CalendarHijriIndonesia, indonesia.TargetCalendar)
	assert.Contains(t, indonesia.Notes, "sighting")

	hijri, ok := indonesia.ConvertedDate.(entities.HijriDate)
	require.True(t, ok)
	assert.Equal(t, entities.HijriDate{Year: 1445, Month: 6, Day: 18}, hijri)
}

func TestGregorianToHijri_SaudiArabiaStaysCanonical(t *testing.T) {
	svc := newTestService()
	date := entities.GregorianDate{Year: 2024, Month: 1, Day: 1}

	opts := entities.DefaultOptions()
	opts.Region = entities.RegionSaudiArabia
	result, err := svc.GregorianToHijri(context.Background(), date, opts)
	require.NoError(t, err)

	assert.Equal(t, entities.ConfidenceHigh, result.Confidence)
	assert.Equal(t, entities.HijriDate{Year: 1445, Month: 6, Day: 19}, result.ConvertedDate)
}

func TestGregorianToHijri_MalaysiaZeroOffsetKeepsHighConfidence(t *testing.T) {
	svc := newTestService()

	// Rukyat-based but no offset modelled, so no adjustment runs and the
	// confidence is not downgraded.
	opts := entities.DefaultOptions()
	opts.Region = entities.RegionMalaysia
	result, err := svc.GregorianToHijri(context.Background(),
		entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, opts)
	require.NoError(t, err)

	assert.Equal(t, entities.ConfidenceHigh, result.Confidence)
	assert.Equal(t, entities.HijriDate{Year: 1445, Month: 6, Day: 19}, result.ConvertedDate)
}

func TestGregorianToHijri_UnknownRegionFallsBack(t *testing.T) {
	svc := newTestService()

	opts := entities.DefaultOptions()
	opts.Region = entities.Region("unknown_region")
	result, err := svc.GregorianToHijri(context.Background(),
		entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, opts)
	require.NoError(t, err)

	assert.True(t, result.FallbackUsed)
	assert.Equal(t, entities.ConfidenceLow, result.Confidence)
	assert.Contains(t, result.Notes, "global")
	assert.Equal(t, entities.HijriDate{Year: 1445, Month: 6, Day: 19}, result.ConvertedDate)
}

func TestGregorianToHijri_UnknownRegionWithoutFallbackFails(t *testing.T) {
	svc := newTestService()

	opts := entities.DefaultOptions()
	opts.Region = entities.Region("unknown_region")
	opts.AllowFallback = false
	_, err := svc.GregorianToHijri(context.Background(),
		entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, opts)

	convErr, ok := entities.AsConversionError(err)
	require.True(t, ok)
	assert.Equal(t, entities.ErrCodeNoRegionalMapping, convErr.Code)
	assert.Equal(t, "2024-01-01", convErr.OriginalDate)
}

func TestGregorianToHijri_StrictModeRejectsInvalidDate(t *testing.T) {
	svc := newTestService()
	date := entities.GregorianDate{Year: 2023, Month: 2, Day: 30}

	opts := entities.DefaultOptions()
	opts.Strict = true
	_, err := svc.GregorianToHijri(context.Background(), date, opts)

	convErr, ok := entities.AsConversionError(err)
	require.True(t, ok)
	assert.Equal(t, entities.ErrCodeInvalidGregorianDate, convErr.Code)
	assert.NotEmpty(t, convErr.Details)
}

func TestGregorianToHijri_LenientModeConvertsInvalidDate(t *testing.T) {
	svc := newTestService()
	date := entities.GregorianDate{Year: 2023, Month: 2, Day: 30}

	result, err := svc.GregorianToHijri(context.Background(), date, entities.DefaultOptions())
	require.NoError(t, err)
	assert.NotNil(t, result.ConvertedDate)
}

func TestGregorianToHijri_IncludeMonthNames(t *testing.T) {
	svc := newTestService()

	opts := entities.DefaultOptions()
	opts.IncludeMonthNames = true
	result, err := svc.GregorianToHijri(context.Background(),
		entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, opts)
	require.NoError(t, err)

	hijri, ok := result.ConvertedDate.(entities.HijriDate)
	require.True(t, ok)
	assert.Equal(t, "Jumada al-Thani", hijri.MonthName)
}

func TestHijriToGregorian_GlobalRegion(t *testing.T) {
	svc := newTestService()

	result, err := svc.HijriToGregorian(context.Background(),
		entities.HijriDate{Year: 1445, Month: 6, Day: 19}, entities.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, entities.CalendarHijri, result.SourceCalendar)
	assert.Equal(t, entities.CalendarGregorian, result.TargetCalendar)
	assert.Equal(t, entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, result.ConvertedDate)
	assert.Equal(t, entities.ConfidenceHigh, result.Confidence)
}

func TestHijriToGregorian_IndonesiaReverseAdjustment(t *testing.T) {
	svc := newTestService()

	opts := entities.DefaultOptions()
	opts.Region = entities.RegionIndonesia
	result, err := svc.HijriToGregorian(context.Background(),
		entities.HijriDate{Year: 1445, Month: 6, Day: 18}, opts)
	require.NoError(t, err)

	assert.Equal(t, entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, result.ConvertedDate)
	assert.Equal(t, entities.ConfidenceMedium, result.Confidence)
	assert.Contains(t, result.Notes, "reverse-adjusted")
}

func TestHijriToGregorian_StrictModeRejectsInvalidDate(t *testing.T) {
	svc := newTestService()

	opts := entities.DefaultOptions()
	opts.Strict = true
	_, err := svc.HijriToGregorian(context.Background(),
		entities.HijriDate{Year: 1445, Month: 13, Day: 15}, opts)

	convErr, ok := entities.AsConversionError(err)
	require.True(t, ok)
	assert.Equal(t, entities.ErrCodeInvalidHijriDate, convErr.Code)
	assert.Contains(t, convErr.Details, "Month must be between 1 and 12")
}

func TestRoundTrip_WithinOneCalendarDay(t *testing.T) {
	svc := newTestService()
	regions := append(svc.AvailableRegions(), entities.Region("unknown_region"))

	start := time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, region := range regions {
		opts := entities.DefaultOptions()
		opts.Region = region

		for i := 0; i < 120; i++ {
			day := start.AddDate(0, 0, i*97)
			date := entities.GregorianDate{Year: day.Year(), Month: int(day.Month()), Day: day.Day()}

			toHijri, err := svc.GregorianToHijri(context.Background(), date, opts)
			require.NoError(t, err)

			hijri, ok := toHijri.ConvertedDate.(entities.HijriDate)
			require.True(t, ok)

			back, err := svc.HijriToGregorian(context.Background(), hijri, opts)
			require.NoError(t, err)

			gregorian, ok := back.ConvertedDate.(entities.GregorianDate)
			require.True(t, ok)

			got := time.Date(gregorian.Year, time.Month(gregorian.Month), gregorian.Day, 0, 0, 0, 0, time.UTC)
			diff := got.Sub(day)
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 24*time.Hour,
				"round-tripping %s via region %s drifted to %s", date, region, gregorian)
		}
	}
}

func TestConvert_DispatchesOnSourceCalendar(t *testing.T) {
	svc := newTestService()

	fromGregorian, err := svc.Convert(context.Background(), ports.ConvertRequest{
		Calendar: entities.CalendarGregorian,
		Year:     2024, Month: 1, Day: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.CalendarHijri, fromGregorian.TargetCalendar)

	fromHijri, err := svc.Convert(context.Background(), ports.ConvertRequest{
		Calendar: entities.CalendarHijri,
		Year:     1445, Month: 6, Day: 19,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.CalendarGregorian, fromHijri.TargetCalendar)

	_, err = svc.Convert(context.Background(), ports.ConvertRequest{
		Calendar: entities.Calendar("julian"),
		Year:     2024, Month: 1, Day: 1,
	})
	assert.Error(t, err)
}

func TestConvertForIndonesia(t *testing.T) {
	svc := newTestService()

	result, err := svc.ConvertForIndonesia(context.Background(),
		entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, entities.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, entities.RegionIndonesia, result.Region)
	assert.Equal(t, entities.CalendarHijriIndonesia, result.TargetCalendar)
	assert.Contains(t, result.Notes, "rukyat")

	hijri, ok := result.ConvertedDate.(entities.HijriDate)
	require.True(t, ok)
	assert.Equal(t, "Jumada al-Thani", hijri.MonthName)
}

func TestConvertToday_UsesCurrentDate(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time {
		return time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	}

	result, err := svc.ConvertToday(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, result.OriginalDate)
	assert.Equal(t, entities.RegionGlobal, result.Region)

	hijri, ok := result.ConvertedDate.(entities.HijriDate)
	require.True(t, ok)
	assert.Equal(t, "Jumada al-Thani", hijri.MonthName)
}

func TestAdjustHijriDate_HandlesMonthRollover(t *testing.T) {
	svc := newTestService()

	// 1445-01-30 is the last day of Muharram in the tabular calendar
	adjusted, err := svc.adjustHijriDate(entities.HijriDate{Year: 1445, Month: 1, Day: 30}, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.HijriDate{Year: 1445, Month: 2, Day: 1}, adjusted)

	back, err := svc.adjustHijriDate(adjusted, -1)
	require.NoError(t, err)
	assert.Equal(t, entities.HijriDate{Year: 1445, Month: 1, Day: 30}, back)
}

func TestAdjustHijriDate_ZeroIsNoOp(t *testing.T) {
	failing := NewConversionService(failingBridge{}, logger.NewNop())

	date := entities.HijriDate{Year: 1445, Month: 6, Day: 19}
	adjusted, err := failing.adjustHijriDate(date, 0)
	require.NoError(t, err)
	assert.Equal(t, date, adjusted)
}

func TestGregorianToHijri_BridgeFailureWrapped(t *testing.T) {
	svc := NewConversionService(failingBridge{}, logger.NewNop())

	_, err := svc.GregorianToHijri(context.Background(),
		entities.GregorianDate{Year: 2024, Month: 1, Day: 1}, entities.DefaultOptions())

	convErr, ok := entities.AsConversionError(err)
	require.True(t, ok)
	assert.Equal(t, entities.ErrCodeConversionFailed, convErr.Code)
	assert.Equal(t, "2024-01-01", convErr.OriginalDate)
}

// failingBridge simulates an unexpected day-count failure
type failingBridge struct{}

func (failingBridge) GregorianToHijri(entities.GregorianDate) (entities.HijriDate, error) {
	return entities.HijriDate{}, errors.New("bridge unavailable")
}

func (failingBridge) HijriToGregorian(entities.HijriDate) (entities.GregorianDate, error) {
	return entities.GregorianDate{}, errors.New("bridge unavailable")
}
