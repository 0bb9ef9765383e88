// Package scenario evaluates the cargo scenarios of a configuration file.
package scenario

import (
	"fmt"

	"github.com/iwvelando/lng-economics/internal/breakeven"
	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/optimization"
	"github.com/iwvelando/lng-economics/pkg/validation"
	"go.uber.org/zap"
)

// Result holds the evaluation of a single scenario.
type Result struct {
	Name      string                 `json:"name"`
	Report    economics.Report       `json:"report"`
	Warnings  []string               `json:"warnings,omitempty"`
	Breakeven []optimization.Summary `json:"breakeven,omitempty"`
}

// Run evaluates every active scenario in file order.
func Run(logger *zap.Logger, conf config.Configuration) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	solver := breakeven.NewSolver(logger)

	var results []Result
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "scenario.Run"),
			)
			continue
		}

		cargo, shipping, err := scenario.Resolve(conf.Common)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		result, err := Evaluate(solver, scenario.Name, cargo, shipping, scenario.Breakeven)
		if err != nil {
			return results, err
		}
		for _, warning := range result.Warnings {
			logger.Warn(warning,
				zap.String("op", "scenario.Run"),
				zap.String("scenario", scenario.Name),
			)
		}
		logger.Debug("scenario evaluated",
			zap.String("op", "scenario.Run"),
			zap.String("scenario", scenario.Name),
			zap.Float64("totalPnl", result.Report.TotalPnL),
		)
		results = append(results, result)
	}

	return results, nil
}

// Evaluate computes one cargo, its input warnings and any breakeven
// directives.
func Evaluate(solver *breakeven.Solver, name string, cargo economics.CargoTerms, shipping economics.ShippingTerms, directives []config.BreakevenConfig) (Result, error) {
	report, err := economics.Compute(cargo, shipping)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", name, err)
	}

	result := Result{
		Name:     name,
		Report:   report,
		Warnings: validation.ScenarioWarnings(cargo, shipping),
	}

	if len(directives) > 0 {
		if solver == nil {
			solver = breakeven.NewSolver(nil)
		}
		summaries, err := solver.SolveAll(cargo, shipping, directives)
		if err != nil {
			return Result{}, fmt.Errorf("scenario %s: %w", name, err)
		}
		result.Breakeven = summaries
	}

	return result, nil
}
