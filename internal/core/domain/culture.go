// Package domain contains the core domain types for agroview.
package domain

// CultureType identifies the crop variety of a culture record.
type CultureType string

const (
	// CultureSoja is a soybean culture.
	CultureSoja CultureType = "soja"
	// CultureCana is a sugarcane culture.
	CultureCana CultureType = "cana"
)

// cultureTypeCodes maps culture types to the numeric codes the REST service
// uses in request bodies (1 = Soja, 2 = Cana-de-Açúcar).
var cultureTypeCodes = map[CultureType]int{
	CultureSoja: 1,
	CultureCana: 2,
}

// cultureTypeNames maps the service's display names back to culture types.
var cultureTypeNames = map[string]CultureType{
	"Soja":           CultureSoja,
	"Cana-de-Açúcar": CultureCana,
}

// Code returns the numeric API code for the culture type, or 0 if unknown.
func (t CultureType) Code() int {
	return cultureTypeCodes[t]
}

// DisplayName returns the human-readable name the service uses.
func (t CultureType) DisplayName() string {
	switch t {
	case CultureSoja:
		return "Soja"
	case CultureCana:
		return "Cana-de-Açúcar"
	default:
		return string(t)
	}
}

// Valid reports whether the type is one of the two known cultures.
func (t CultureType) Valid() bool {
	_, ok := cultureTypeCodes[t]
	return ok
}

// ParseCultureType resolves a culture type from either the short prefix form
// ("soja", "cana") or the service's display name.
func ParseCultureType(s string) (CultureType, error) {
	if t := CultureType(s); t.Valid() {
		return t, nil
	}
	if t, ok := cultureTypeNames[s]; ok {
		return t, nil
	}
	return "", ErrInvalidCultureType
}

// Culture is one agricultural culture record as served by the REST API.
// Soja records carry Variety; Cana records carry Cycle and Irrigation.
type Culture struct {
	ID            Identity    `json:"id"`
	Type          CultureType `json:"type"`
	Area          float64     `json:"area"`
	Spacing       float64     `json:"spacing"`
	Variety       string      `json:"variety,omitempty"`
	Cycle         string      `json:"cycle,omitempty"`
	Irrigation    bool        `json:"irrigation"`
	PlantingLines float64     `json:"planting_lines,omitempty"`
	Deleted       bool        `json:"deleted,omitempty"`
}
