package domain

import (
	"encoding/json"
	"time"
)

// Completable is implemented by models that can report whether they carry
// enough data to be rendered without a refetch.
type Completable interface {
	IsComplete() bool
}

// WeatherAware is implemented by models that may carry weather readings.
type WeatherAware interface {
	HasWeatherData() bool
}

// WeatherData is the current-weather portion of an analysis payload.
type WeatherData struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
}

// AnalysisRecord is a weather/agronomic analysis for one culture, as fetched
// from the weather-analysis endpoint and retained in the durable store.
type AnalysisRecord struct {
	CultureID       Identity     `json:"culture_id"`
	CultureType     CultureType  `json:"culture_type"`
	Area            float64      `json:"area"`
	Spacing         float64      `json:"spacing"`
	Irrigation      bool         `json:"irrigation"`
	Weather         *WeatherData `json:"weather,omitempty"`
	Impact          string       `json:"agricultural_impact,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	FetchedAt       time.Time    `json:"fetched_at"`
}

// IsComplete reports whether the record passes the completeness check: a
// known culture type and a positive planted area. Records failing this are
// discarded from the store and refetched.
func (r *AnalysisRecord) IsComplete() bool {
	return r.CultureType.Valid() && r.Area > 0
}

// HasWeatherData reports whether the record carries weather readings.
func (r *AnalysisRecord) HasWeatherData() bool {
	return r.Weather != nil
}

// Type returns the culture type the analysis belongs to.
func (r *AnalysisRecord) Type() CultureType {
	return r.CultureType
}

// DecodeAnalysisRecord builds an AnalysisRecord from an envelope data
// payload. The wire shape nests culture info and weather separately; the
// decoded record is the flat, validated form the rest of the system uses.
func DecodeAnalysisRecord(id Identity, data json.RawMessage, fetchedAt time.Time) (*AnalysisRecord, error) {
	var wire struct {
		CultureInfo struct {
			Type       string  `json:"tipo"`
			Area       float64 `json:"area"`
			Spacing    float64 `json:"espacamento"`
			Irrigation bool    `json:"irrigacao"`
		} `json:"cultura_info"`
		CurrentWeather  *WeatherData `json:"current_weather"`
		Impact          string       `json:"agricultural_impact"`
		Recommendations []string     `json:"recommendations"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, ErrMalformedPayload
	}

	cultureType, err := ParseCultureType(wire.CultureInfo.Type)
	if err != nil {
		// Leave the type empty so the completeness check fails downstream;
		// a wrong type is incomplete data, not a transport problem.
		cultureType = ""
	}

	return &AnalysisRecord{
		CultureID:       id,
		CultureType:     cultureType,
		Area:            wire.CultureInfo.Area,
		Spacing:         wire.CultureInfo.Spacing,
		Irrigation:      wire.CultureInfo.Irrigation,
		Weather:         wire.CurrentWeather,
		Impact:          wire.Impact,
		Recommendations: wire.Recommendations,
		FetchedAt:       fetchedAt,
	}, nil
}
