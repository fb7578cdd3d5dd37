package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegions_StableOrderAcrossCalls(t *testing.T) {
	expected := []Region{RegionGlobal, RegionIndonesia, RegionSaudiArabia, RegionMalaysia}

	assert.Equal(t, expected, Regions())
	assert.Equal(t, expected, Regions())
}

func TestMappingFor_RegisteredRegions(t *testing.T) {
	global, ok := MappingFor(RegionGlobal)
	require.True(t, ok)
	assert.Equal(t, 0, global.AdjustmentDays)
	assert.False(t, global.RukyatBased)

	indonesia, ok := MappingFor(RegionIndonesia)
	require.True(t, ok)
	assert.Equal(t, -1, indonesia.AdjustmentDays)
	assert.True(t, indonesia.RukyatBased)

	saudi, ok := MappingFor(RegionSaudiArabia)
	require.True(t, ok)
	assert.Equal(t, 0, saudi.AdjustmentDays)
	assert.False(t, saudi.RukyatBased)

	// Malaysia is sighting-based but carries no modelled offset
	malaysia, ok := MappingFor(RegionMalaysia)
	require.True(t, ok)
	assert.Equal(t, 0, malaysia.AdjustmentDays)
	assert.True(t, malaysia.RukyatBased)
}

func TestMappingFor_UnknownRegion(t *testing.T) {
	_, ok := MappingFor(Region("atlantis"))
	assert.False(t, ok)
}

func TestMappings_ReturnsCopy(t *testing.T) {
	mappings := Mappings()
	require.Len(t, mappings, 4)

	mappings[0].AdjustmentDays = 99
	global, _ := MappingFor(RegionGlobal)
	assert.Equal(t, 0, global.AdjustmentDays)
}
