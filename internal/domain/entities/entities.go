package entities

import "fmt"

// Calendar identifies a calendar system handled by the service
type Calendar string

const (
	CalendarGregorian      Calendar = "gregorian"
	CalendarHijri          Calendar = "hijri"
	CalendarHijriIndonesia Calendar = "hijri_indonesia"
)

// Region identifies a sighting jurisdiction. Arbitrary values are accepted
// at the boundary; unknown ones are resolved through the fallback policy.
type Region string

const (
	RegionGlobal      Region = "global"
	RegionIndonesia   Region = "indonesia"
	RegionSaudiArabia Region = "saudi_arabia"
	RegionMalaysia    Region = "malaysia"
)

// String returns the region as a human-readable string
func (r Region) String() string { return string(r) }

// Confidence indicates how much regional approximation or fallback was
// involved in producing a conversion result
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// GregorianDate is a civil calendar date. Value type, no identity beyond
// its fields.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date as YYYY-MM-DD
func (d GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// HijriDate is an Islamic lunar calendar date. MonthName is display-only
// and populated only when requested.
type HijriDate struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name,omitempty"`
}

// String formats the date as YYYY-MM-DD
func (d HijriDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// hijriMonthNames holds the twelve Hijri month names in calendar order
var hijriMonthNames = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-Awwal",
	"Rabi al-Thani",
	"Jumada al-Awwal",
	"Jumada al-Thani",
	"Rajab",
	"Shaban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qadah",
	"Dhu al-Hijjah",
}

// HijriMonthName returns the name of a Hijri month (1-12). Out-of-range
// input returns a placeholder naming the invalid month number; display
// helpers never fail.
func HijriMonthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("Invalid Month %d", month)
	}
	return hijriMonthNames[month-1]
}

// HijriMonthNames returns the twelve Hijri month names in calendar order
func HijriMonthNames() []string {
	names := make([]string, len(hijriMonthNames))
	copy(names, hijriMonthNames[:])
	return names
}
