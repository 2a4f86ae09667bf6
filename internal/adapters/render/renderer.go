// Package render provides the line-oriented terminal renderer for analyses.
package render

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.farmtech.dev/agroview/internal/core/domain"
	"go.farmtech.dev/agroview/internal/ui/output"
	"go.farmtech.dev/agroview/internal/ui/style"
)

// Renderer implements ports.AnalysisRenderer as plain chronological lines,
// suitable for both interactive terminals and CI logs.
type Renderer struct {
	mu     sync.Mutex
	stdout io.Writer
	out    *termenv.Output
}

// NewRenderer creates a Renderer. A nil writer defaults to os.Stdout.
func NewRenderer(stdout io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{
		stdout: stdout,
		out:    output.New(stdout),
	}
}

// ShowLoading prints a progress line for the culture being analyzed.
func (r *Renderer) ShowLoading(id domain.Identity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.out.String(fmt.Sprintf("[%s]", id)).Faint().String()
	_, _ = fmt.Fprintf(r.stdout, "%s Loading analysis...\n", prefix)
}

// RenderAnalysis presents a settled analysis model.
func (r *Renderer) RenderAnalysis(rec *domain.AnalysisRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := r.out.String(fmt.Sprintf("%s %s", style.Check, rec.CultureID)).
		Foreground(termenv.RGBColor(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stdout, "%s %s, %.2f ha (spacing %.2f m)\n",
		header, rec.CultureType.DisplayName(), rec.Area, rec.Spacing)

	if rec.HasWeatherData() {
		w := rec.Weather
		_, _ = fmt.Fprintf(r.stdout, "  weather: %.1f°C, %.0f%% humidity, wind %.1f km/h (%s)\n",
			w.Temperature, w.Humidity, w.WindSpeed, w.Condition)
	}
	if rec.Impact != "" {
		_, _ = fmt.Fprintf(r.stdout, "  impact: %s\n", rec.Impact)
	}
	for _, rcm := range rec.Recommendations {
		_, _ = fmt.Fprintf(r.stdout, "  %s %s\n", style.Dot, rcm)
	}
}

// ClearAnalysis prints a separator; a line renderer has no panel to clear.
func (r *Renderer) ClearAnalysis() {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.stdout)
}

// ShowSelectionPrompt presents an informational message in place of an
// analysis.
func (r *Renderer) ShowSelectionPrompt(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	styled := r.out.String(style.Warning + " " + message).
		Foreground(termenv.RGBColor(string(style.Yellow))).String()
	_, _ = fmt.Fprintln(r.stdout, styled)
}
