// Package order turns a cart into the text message and WhatsApp link that
// hand an order over to the kitchen.
package order

import (
	"errors"
	"fmt"
	"os"

	"github.com/eatwithmaddie/menu-backend/internal/models"
	"gopkg.in/yaml.v3"
)

var defaultZones = []models.DeliveryZone{
	{ID: "akwa", Fee: 1000, Name: map[string]string{"en": "Akwa", "fr": "Akwa"}},
	{ID: "deido", Fee: 1000, Name: map[string]string{"en": "Deido", "fr": "Deido"}},
	{ID: "bonamoussadi", Fee: 1000, Name: map[string]string{"en": "Bonamoussadi", "fr": "Bonamoussadi"}},
	{ID: "logpom", Fee: 1000, Name: map[string]string{"en": "Logpom", "fr": "Logpom"}},
	{ID: "logbessou", Fee: 1000, Name: map[string]string{"en": "Logbessou", "fr": "Logbessou"}},
	{ID: "bonaberi", Fee: 1500, Name: map[string]string{"en": "Bonaberi", "fr": "Bonaberi"}},
	{ID: "bonanjo", Fee: 1500, Name: map[string]string{"en": "Bonanjo", "fr": "Bonanjo"}},
	{ID: "bonapriso", Fee: 1500, Name: map[string]string{"en": "Bonapriso", "fr": "Bonapriso"}},
}

// Zones is the ordered list of delivery zones; the first one is the default
type Zones struct {
	zones []models.DeliveryZone
	byID  map[string]int
}

// DefaultZones returns the built-in Douala zones
func DefaultZones() *Zones {
	z, _ := NewZones(defaultZones)
	return z
}

// NewZones validates zones: at least one, unique non-empty ids, fees >= 0
func NewZones(zones []models.DeliveryZone) (*Zones, error) {
	if len(zones) == 0 {
		return nil, errors.New("at least one delivery zone is required")
	}

	z := &Zones{
		zones: make([]models.DeliveryZone, len(zones)),
		byID:  make(map[string]int, len(zones)),
	}
	for i, zone := range zones {
		if zone.ID == "" {
			return nil, fmt.Errorf("delivery zone %d has no id", i+1)
		}
		if _, dup := z.byID[zone.ID]; dup {
			return nil, fmt.Errorf("duplicate delivery zone id: %s", zone.ID)
		}
		if zone.Fee < 0 {
			return nil, fmt.Errorf("delivery zone %s has a negative fee", zone.ID)
		}
		z.zones[i] = zone
		z.byID[zone.ID] = i
	}
	return z, nil
}

type zonesFile struct {
	Zones []models.DeliveryZone `yaml:"zones"`
}

// LoadZones reads zones from a YAML file of the form
//
//	zones:
//	  - id: akwa
//	    fee: 1000
//	    name: {en: Akwa, fr: Akwa}
func LoadZones(path string) (*Zones, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file: %w", err)
	}

	var file zonesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse zones file: %w", err)
	}
	return NewZones(file.Zones)
}

// All returns a copy of the zones in display order
func (z *Zones) All() []models.DeliveryZone {
	return append([]models.DeliveryZone(nil), z.zones...)
}

// Default returns the first zone
func (z *Zones) Default() models.DeliveryZone {
	return z.zones[0]
}

// Lookup finds a zone by id
func (z *Zones) Lookup(id string) (models.DeliveryZone, bool) {
	i, ok := z.byID[id]
	if !ok {
		return models.DeliveryZone{}, false
	}
	return z.zones[i], true
}
