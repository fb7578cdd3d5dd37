package ports

import "github.com/ramdanilegend/calendar-ms/internal/domain/entities"

// DayCountBridge is the epoch-based day-count primitive behind every
// conversion. Implementations map the canonical (global) correspondence
// only: no regional adjustment, no validation. They must be pure and safe
// for unsynchronized concurrent use; the engine trusts their output as
// ground truth.
type DayCountBridge interface {
	GregorianToHijri(date entities.GregorianDate) (entities.HijriDate, error)
	HijriToGregorian(date entities.HijriDate) (entities.GregorianDate, error)
}
