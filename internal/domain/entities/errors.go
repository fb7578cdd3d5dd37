package entities

import (
	"errors"
	"fmt"
)

// ErrorCode classifies conversion failures
type ErrorCode string

const (
	ErrCodeInvalidGregorianDate ErrorCode = "INVALID_GREGORIAN_DATE"
	ErrCodeInvalidHijriDate     ErrorCode = "INVALID_HIJRI_DATE"
	ErrCodeNoRegionalMapping    ErrorCode = "NO_REGIONAL_MAPPING"
	ErrCodeConversionFailed     ErrorCode = "CONVERSION_FAILED"
)

// ConversionError carries the failure code together with the original
// input and target calendar for diagnostics.
type ConversionError struct {
	Code           ErrorCode `json:"code"`
	Message        string    `json:"message"`
	OriginalDate   string    `json:"original_date"`
	TargetCalendar Calendar  `json:"target_calendar"`
	Details        []string  `json:"details,omitempty"`
	Err            error     `json:"-"`
}

// Error implements the error interface
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause, if any
func (e *ConversionError) Unwrap() error { return e.Err }

// NewInvalidDateError builds a strict-mode validation failure. The code is
// chosen from the source calendar of the rejected date.
func NewInvalidDateError(code ErrorCode, original string, target Calendar, details []string) *ConversionError {
	return &ConversionError{
		Code:           code,
		Message:        "date failed validation",
		OriginalDate:   original,
		TargetCalendar: target,
		Details:        details,
	}
}

// NewUnmappedRegionError builds the failure returned when an unknown
// region is requested with fallback disabled.
func NewUnmappedRegionError(region Region, original string, target Calendar) *ConversionError {
	return &ConversionError{
		Code:           ErrCodeNoRegionalMapping,
		Message:        fmt.Sprintf("no regional mapping registered for %q", region),
		OriginalDate:   original,
		TargetCalendar: target,
	}
}

// NewConversionFailedError wraps an unexpected bridge or arithmetic
// failure, preserving the input for diagnostics.
func NewConversionFailedError(original string, target Calendar, err error) *ConversionError {
	return &ConversionError{
		Code:           ErrCodeConversionFailed,
		Message:        "conversion failed",
		OriginalDate:   original,
		TargetCalendar: target,
		Err:            err,
	}
}

// AsConversionError unwraps err into a *ConversionError if one is present
// anywhere in its chain
func AsConversionError(err error) (*ConversionError, bool) {
	var convErr *ConversionError
	if errors.As(err, &convErr) {
		return convErr, true
	}
	return nil, false
}
