package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.farmtech.dev/agroview/internal/core/domain"
)

const analysisPayload = `{
	"cultura_info": {"tipo": "Soja", "area": 120.5, "espacamento": 0.45, "irrigacao": false},
	"current_weather": {"temperature": 27.3, "humidity": 60, "wind_speed": 11.2, "condition": "clear"},
	"agricultural_impact": "favorável para o plantio",
	"recommendations": ["monitorar umidade", "adiar irrigação"]
}`

func TestDecodeAnalysisRecord(t *testing.T) {
	t.Parallel()

	id := domain.Identity{Prefix: domain.CultureSoja, Sequence: 0}
	fetchedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("full payload", func(t *testing.T) {
		t.Parallel()
		rec, err := domain.DecodeAnalysisRecord(id, []byte(analysisPayload), fetchedAt)
		require.NoError(t, err)

		assert.Equal(t, id, rec.CultureID)
		assert.Equal(t, domain.CultureSoja, rec.CultureType)
		assert.InDelta(t, 120.5, rec.Area, 0.001)
		assert.InDelta(t, 0.45, rec.Spacing, 0.001)
		assert.True(t, rec.IsComplete())
		require.True(t, rec.HasWeatherData())
		assert.InDelta(t, 27.3, rec.Weather.Temperature, 0.001)
		assert.Equal(t, "favorável para o plantio", rec.Impact)
		assert.Len(t, rec.Recommendations, 2)
		assert.Equal(t, fetchedAt, rec.FetchedAt)
	})

	t.Run("unknown type yields incomplete record", func(t *testing.T) {
		t.Parallel()
		rec, err := domain.DecodeAnalysisRecord(id, []byte(`{"cultura_info":{"tipo":"Milho","area":50}}`), fetchedAt)
		require.NoError(t, err)
		assert.False(t, rec.IsComplete())
	})

	t.Run("zero area yields incomplete record", func(t *testing.T) {
		t.Parallel()
		rec, err := domain.DecodeAnalysisRecord(id, []byte(`{"cultura_info":{"tipo":"Soja"}}`), fetchedAt)
		require.NoError(t, err)
		assert.False(t, rec.IsComplete())
	})

	t.Run("missing weather is complete but not weather-aware", func(t *testing.T) {
		t.Parallel()
		rec, err := domain.DecodeAnalysisRecord(id, []byte(`{"cultura_info":{"tipo":"Cana-de-Açúcar","area":30,"espacamento":1.5}}`), fetchedAt)
		require.NoError(t, err)
		assert.True(t, rec.IsComplete())
		assert.False(t, rec.HasWeatherData())
	})

	t.Run("structurally wrong payload is malformed", func(t *testing.T) {
		t.Parallel()
		_, err := domain.DecodeAnalysisRecord(id, []byte(`"just a string"`), fetchedAt)
		require.ErrorIs(t, err, domain.ErrMalformedPayload)
	})
}

func TestRetryPolicy_Backoff(t *testing.T) {
	t.Parallel()

	policy := domain.RetryPolicy{MaxRetries: 3, BaseDelay: 500 * time.Millisecond}

	assert.Equal(t, 500*time.Millisecond, policy.Backoff(0))
	assert.Equal(t, time.Second, policy.Backoff(1))
	assert.Equal(t, 2*time.Second, policy.Backoff(2))
}
