package entities

// ConversionOptions configures a single conversion call. The zero value is
// not meaningful; use DefaultOptions as the base.
type ConversionOptions struct {
	Region            Region `json:"region"`
	AllowFallback     bool   `json:"allow_fallback"`
	IncludeMonthNames bool   `json:"include_month_names"`
	Strict            bool   `json:"strict"`
}

// DefaultOptions returns the lenient defaults used by convenience APIs:
// global region, fallback allowed, no month names, non-strict validation.
func DefaultOptions() ConversionOptions {
	return ConversionOptions{
		Region:            RegionGlobal,
		AllowFallback:     true,
		IncludeMonthNames: false,
		Strict:            false,
	}
}

// ConversionResult is the sole output of a conversion. OriginalDate and
// ConvertedDate hold a GregorianDate or HijriDate according to the source
// and target calendars.
//
// Invariants: FallbackUsed implies ConfidenceLow; a rukyat-based adjustment
// implies ConfidenceMedium unless already downgraded to low by fallback.
type ConversionResult struct {
	OriginalDate   any        `json:"original_date"`
	ConvertedDate  any        `json:"converted_date"`
	SourceCalendar Calendar   `json:"source_calendar"`
	TargetCalendar Calendar   `json:"target_calendar"`
	Region         Region     `json:"region"`
	Confidence     Confidence `json:"confidence"`
	Notes          string     `json:"notes,omitempty"`
	FallbackUsed   bool       `json:"fallback_used"`
}
