package entities

// RegionalMapping describes how a region's sighting practice shifts the
// canonical Umm al-Qura correspondence.
type RegionalMapping struct {
	Region         Region `json:"region"`
	AdjustmentDays int    `json:"adjustment_days"`
	RukyatBased    bool   `json:"rukyat_based"`
	Description    string `json:"description"`
}

// regionalMappings is the fixed regional policy table. Built once at
// process start and read-only afterwards, so concurrent lookups need no
// locking. Order matters: Regions() reports entries in this order.
var regionalMappings = []RegionalMapping{
	{
		Region:         RegionGlobal,
		AdjustmentDays: 0,
		RukyatBased:    false,
		Description:    "Canonical Umm al-Qura correspondence, no regional adjustment",
	},
	{
		Region:         RegionIndonesia,
		AdjustmentDays: -1,
		RukyatBased:    true,
		Description:    "Indonesian rukyat practice, typically one day behind Umm al-Qura",
	},
	{
		Region:         RegionSaudiArabia,
		AdjustmentDays: 0,
		RukyatBased:    false,
		Description:    "Official Umm al-Qura calendar of Saudi Arabia",
	},
	{
		Region:         RegionMalaysia,
		AdjustmentDays: 0,
		RukyatBased:    true,
		// Sighting-based but no offset is modelled for Malaysia yet.
		Description: "Malaysian rukyat and hisab practice, offset not modelled",
	},
}

// MappingFor returns the adjustment policy registered for a region. The
// second return value is false for unknown regions.
func MappingFor(region Region) (RegionalMapping, bool) {
	for _, m := range regionalMappings {
		if m.Region == region {
			return m, true
		}
	}
	return RegionalMapping{}, false
}

// Regions returns all regions with a registered mapping, in stable
// registration order.
func Regions() []Region {
	regions := make([]Region, 0, len(regionalMappings))
	for _, m := range regionalMappings {
		regions = append(regions, m.Region)
	}
	return regions
}

// Mappings returns a copy of the full regional policy table in stable
// registration order.
func Mappings() []RegionalMapping {
	mappings := make([]RegionalMapping, len(regionalMappings))
	copy(mappings, regionalMappings)
	return mappings
}
