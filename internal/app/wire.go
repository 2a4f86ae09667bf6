package app

import (
	"encoding/json"
	"strings"

	"go.farmtech.dev/agroview/internal/core/domain"
)

// cultureWire is the shape a culture takes on the wire. The server emits ids
// as numbers or strings depending on the endpoint, so the field is decoded
// loosely.
type cultureWire struct {
	ID            flexibleID `json:"id"`
	Type          int        `json:"culture_type"`
	Area          float64    `json:"area"`
	Spacing       float64    `json:"espacamento"`
	Variety       string     `json:"variedade"`
	Cycle         string     `json:"ciclo"`
	Irrigation    bool       `json:"irrigacao"`
	PlantingLines float64    `json:"linhas_calculadas"`
	Deleted       bool       `json:"deleted"`
}

type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	*f = flexibleID(s)
	return nil
}

func (w cultureWire) cultureType() domain.CultureType {
	switch w.Type {
	case domain.CultureSoja.Code():
		return domain.CultureSoja
	case domain.CultureCana.Code():
		return domain.CultureCana
	default:
		return domain.CultureType("")
	}
}

func (w cultureWire) snapshot() domain.CultureSnapshot {
	return domain.CultureSnapshot{
		ServerID: string(w.ID),
		Type:     w.cultureType(),
	}
}

func (w cultureWire) culture(id domain.Identity) domain.Culture {
	return domain.Culture{
		ID:            id,
		Type:          w.cultureType(),
		Area:          w.Area,
		Spacing:       w.Spacing,
		Variety:       w.Variety,
		Cycle:         w.Cycle,
		Irrigation:    w.Irrigation,
		PlantingLines: w.PlantingLines,
		Deleted:       w.Deleted,
	}
}

// createBody converts a create request into the server's wire payload. The
// server keys the culture kind by numeric code.
func createBody(req CreateCultureRequest) map[string]any {
	body := map[string]any{
		"culture_type": req.Type.Code(),
		"area":         req.Area,
		"espacamento":  req.Spacing,
		"irrigacao":    req.Irrigation,
	}
	if req.Variety != "" {
		body["variedade"] = req.Variety
	}
	if req.Cycle != "" {
		body["ciclo"] = req.Cycle
	}
	return body
}

// updateBody converts an update request into a sparse wire payload holding
// only the fields that changed.
func updateBody(req UpdateCultureRequest) map[string]any {
	body := map[string]any{}
	if req.Area != nil {
		body["area"] = *req.Area
	}
	if req.Spacing != nil {
		body["espacamento"] = *req.Spacing
	}
	if req.Variety != nil {
		body["variedade"] = *req.Variety
	}
	if req.Cycle != nil {
		body["ciclo"] = *req.Cycle
	}
	if req.Irrigation != nil {
		body["irrigacao"] = *req.Irrigation
	}
	return body
}

func decodeCultures(data json.RawMessage) ([]cultureWire, error) {
	var wires []cultureWire
	if err := json.Unmarshal(data, &wires); err != nil {
		// Some endpoints wrap the list in an object.
		var wrapped struct {
			Cultures []cultureWire `json:"cultures"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		wires = wrapped.Cultures
	}
	return wires, nil
}

