package render_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.farmtech.dev/agroview/internal/adapters/render"
	"go.farmtech.dev/agroview/internal/core/domain"
)

func newTestRenderer(t *testing.T) (*render.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return render.NewRenderer(buf), buf
}

func TestRenderer_ShowLoading(t *testing.T) {
	r, buf := newTestRenderer(t)
	r.ShowLoading(domain.Identity{Prefix: domain.CultureSoja, Sequence: 0})

	g := goldie.New(t)
	g.Assert(t, "show_loading", buf.Bytes())
}

func TestRenderer_RenderAnalysis(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		r, buf := newTestRenderer(t)
		r.RenderAnalysis(&domain.AnalysisRecord{
			CultureID:   domain.Identity{Prefix: domain.CultureSoja, Sequence: 0},
			CultureType: domain.CultureSoja,
			Area:        80,
			Spacing:     0.5,
			Weather: &domain.WeatherData{
				Temperature: 27.3,
				Humidity:    60,
				WindSpeed:   11.2,
				Condition:   "clear",
			},
			Impact:          "favorável para o plantio",
			Recommendations: []string{"monitorar umidade", "adiar irrigação"},
		})

		g := goldie.New(t)
		g.Assert(t, "analysis_full", buf.Bytes())
	})

	t.Run("record without weather", func(t *testing.T) {
		r, buf := newTestRenderer(t)
		r.RenderAnalysis(&domain.AnalysisRecord{
			CultureID:   domain.Identity{Prefix: domain.CultureCana, Sequence: 1},
			CultureType: domain.CultureCana,
			Area:        60,
			Spacing:     1.4,
		})

		g := goldie.New(t)
		g.Assert(t, "analysis_minimal", buf.Bytes())
	})
}

func TestRenderer_ShowSelectionPrompt(t *testing.T) {
	r, buf := newTestRenderer(t)
	r.ShowSelectionPrompt("analysis for soja_0 is already running, try again shortly")

	g := goldie.New(t)
	g.Assert(t, "selection_prompt", buf.Bytes())
}

func TestRenderer_ClearAnalysis(t *testing.T) {
	r, buf := newTestRenderer(t)
	r.ClearAnalysis()
	assert.Equal(t, "\n", buf.String())
}
