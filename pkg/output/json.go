package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/iwvelando/lng-economics/internal/scenario"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/optimization"
)

// Envelope is the JSON document written for a run.
type Envelope struct {
	RunID       string           `json:"runId"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Scenarios   []ScenarioRecord `json:"scenarios"`
}

// ScenarioRecord is one scenario in an Envelope.
type ScenarioRecord struct {
	Name      string                  `json:"name"`
	Cargo     economics.CargoTerms    `json:"cargo"`
	Shipping  economics.ShippingTerms `json:"shipping"`
	Report    economics.Report        `json:"report"`
	Warnings  []string                `json:"warnings,omitempty"`
	Breakeven []optimization.Summary  `json:"breakeven,omitempty"`
}

// NewEnvelope builds the JSON document for results. Reports are rounded.
func NewEnvelope(runID string, generatedAt time.Time, results []scenario.Result) Envelope {
	env := Envelope{
		RunID:       runID,
		GeneratedAt: generatedAt.UTC(),
		Scenarios:   make([]ScenarioRecord, 0, len(results)),
	}
	for _, result := range results {
		env.Scenarios = append(env.Scenarios, ScenarioRecord{
			Name:      result.Name,
			Cargo:     result.Report.Cargo,
			Shipping:  result.Report.Shipping,
			Report:    result.Report.Rounded(),
			Warnings:  result.Warnings,
			Breakeven: result.Breakeven,
		})
	}
	return env
}

// JSONFormat writes results as an indented Envelope.
func JSONFormat(w io.Writer, runID string, generatedAt time.Time, results []scenario.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewEnvelope(runID, generatedAt, results))
}
