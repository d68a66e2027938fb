package order

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatwithmaddie/menu-backend/internal/models"
)

func TestDefaultZones(t *testing.T) {
	zones := DefaultZones()

	assert.Len(t, zones.All(), 8)
	assert.Equal(t, "akwa", zones.Default().ID)

	zone, ok := zones.Lookup("bonapriso")
	require.True(t, ok)
	assert.Equal(t, 1500.0, zone.Fee)

	_, ok = zones.Lookup("yaounde")
	assert.False(t, ok)
}

func TestNewZones_Validation(t *testing.T) {
	tests := []struct {
		name  string
		zones []models.DeliveryZone
	}{
		{name: "empty"},
		{name: "missing id", zones: []models.DeliveryZone{{Fee: 1}}},
		{name: "duplicate", zones: []models.DeliveryZone{{ID: "a"}, {ID: "a"}}},
		{name: "negative fee", zones: []models.DeliveryZone{{ID: "a", Fee: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewZones(tt.zones)
			assert.Error(t, err)
		})
	}
}

func TestLoadZones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.yaml")
	content := `zones:
  - id: kotto
    fee: 1200
    name:
      en: Kotto
      fr: Kotto
  - id: makepe
    fee: 1000
    name: {en: Makepe, fr: Makèpè}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	zones, err := LoadZones(path)
	require.NoError(t, err)
	assert.Equal(t, "kotto", zones.Default().ID)

	zone, ok := zones.Lookup("makepe")
	require.True(t, ok)
	assert.Equal(t, "Makèpè", zone.LocalizedName("fr"))

	_, err = LoadZones(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
