// Package hijricalc implements the canonical Gregorian/Hijri day-count
// correspondence using the civil (tabular) Islamic calendar: a 30-year
// cycle with eleven leap years anchored at Julian Day Number 1948440
// (16 July 622 CE). The tables match calculation-based calendars such as
// Umm al-Qura to within a day, which is the accuracy contract the
// conversion engine is built around.
package hijricalc

import (
	"fmt"

	"github.com/ramdanilegend/calendar-ms/internal/domain/entities"
	"github.com/ramdanilegend/calendar-ms/internal/ports"
)

// hijriEpochJDN is the Julian Day Number of 1 Muharram 1 AH (civil epoch)
const hijriEpochJDN = 1948440

// TabularBridge converts dates through Julian Day Numbers. Stateless and
// safe for unsynchronized concurrent use.
type TabularBridge struct{}

// NewTabularBridge creates the arithmetic day-count bridge
func NewTabularBridge() *TabularBridge {
	return &TabularBridge{}
}

var _ ports.DayCountBridge = (*TabularBridge)(nil)

// GregorianToHijri maps a Gregorian date to its tabular Hijri equivalent
func (b *TabularBridge) GregorianToHijri(date entities.GregorianDate) (entities.HijriDate, error) {
	jdn := gregorianToJDN(date.Year, date.Month, date.Day)
	if jdn <= hijriEpochJDN-1 {
		return entities.HijriDate{}, fmt.Errorf("date %s precedes the Hijri epoch", date)
	}
	year, month, day := jdnToHijri(jdn)
	return entities.HijriDate{Year: year, Month: month, Day: day}, nil
}

// HijriToGregorian maps a tabular Hijri date to its Gregorian equivalent
func (b *TabularBridge) HijriToGregorian(date entities.HijriDate) (entities.GregorianDate, error) {
	jdn := hijriToJDN(date.Year, date.Month, date.Day)
	if jdn <= 0 {
		return entities.GregorianDate{}, fmt.Errorf("hijri date %s maps to a negative day count", date)
	}
	year, month, day := jdnToGregorian(jdn)
	return entities.GregorianDate{Year: year, Month: month, Day: day}, nil
}

// gregorianToJDN converts a proleptic Gregorian date to a Julian Day
// Number (Fliegel-Van Flandern).
func gregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian converts a Julian Day Number back to a proleptic
// Gregorian date.
func jdnToGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// hijriToJDN converts a civil Hijri date to a Julian Day Number. Month
// lengths alternate 30/29 with the leap day landing in Dhu al-Hijjah.
func hijriToJDN(year, month, day int) int {
	return (11*year+3)/30 + 354*year + 30*month - (month-1)/2 + day + hijriEpochJDN - 385
}

// jdnToHijri converts a Julian Day Number to a civil Hijri date using the
// 30-year intercalation cycle (10631 days).
func jdnToHijri(jdn int) (year, month, day int) {
	l := jdn - hijriEpochJDN + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354

	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	month = (24 * l) / 709
	day = l - (709*month)/24
	year = 30*n + j - 30
	return year, month, day
}
