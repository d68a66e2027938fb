package models

// DeliveryZone is a Douala neighbourhood with a flat delivery fee in FCFA
type DeliveryZone struct {
	ID   string            `json:"id" yaml:"id"`
	Fee  float64           `json:"fee" yaml:"fee"`
	Name map[string]string `json:"name" yaml:"name"`
}

// LocalizedName returns the zone name in lang, falling back to English and then the id
func (z DeliveryZone) LocalizedName(lang string) string {
	if name := z.Name[lang]; name != "" {
		return name
	}
	if name := z.Name["en"]; name != "" {
		return name
	}
	return z.ID
}
