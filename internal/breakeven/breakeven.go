// Package breakeven solves for the value of a single cargo input at which
// total P&L reaches a target.
package breakeven

import (
	"fmt"
	"math"

	"github.com/iwvelando/lng-economics/internal/config"
	"github.com/iwvelando/lng-economics/pkg/economics"
	"github.com/iwvelando/lng-economics/pkg/format"
	"github.com/iwvelando/lng-economics/pkg/mathutil"
	"github.com/iwvelando/lng-economics/pkg/optimization"
	"go.uber.org/zap"
)

// Solver runs breakeven directives against a resolved cargo.
type Solver struct {
	logger *zap.Logger
}

type evaluation struct {
	value    float64
	totalPnL float64
	residual float64
}

func (e evaluation) hit() bool {
	return mathutil.IsZero(e.residual)
}

// NewSolver constructs a Solver. A nil logger disables logging.
func NewSolver(logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{logger: logger}
}

// Solve bisects cfg.Field between cfg.Min and cfg.Max. The cargo and voyage
// are passed by value and are never modified.
func (s *Solver) Solve(cargo economics.CargoTerms, shipping economics.ShippingTerms, cfg config.BreakevenConfig) (optimization.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return optimization.Summary{}, err
	}
	field := cfg.Field
	minVal, maxVal := *cfg.Min, *cfg.Max

	original, err := getField(cargo, shipping, field)
	if err != nil {
		return optimization.Summary{}, err
	}

	evaluate := func(value float64) (evaluation, error) {
		c, sh := cargo, shipping
		if err := setField(&c, &sh, field, value); err != nil {
			return evaluation{}, err
		}
		report, err := economics.Compute(c, sh)
		if err != nil {
			return evaluation{}, fmt.Errorf("breakeven %s at %g: %w", field, value, err)
		}
		return evaluation{value: value, totalPnL: report.TotalPnL, residual: report.TotalPnL - cfg.Target}, nil
	}

	summary := optimization.Summary{
		Field:           field,
		Original:        original,
		OriginalDisplay: formatFieldDisplay(field, original),
		Min:             minVal,
		Max:             maxVal,
		TargetPnL:       cfg.Target,
	}
	finish := func(e evaluation, iterations int, converged bool, notes ...string) optimization.Summary {
		summary.Value = e.value
		summary.ValueDisplay = formatFieldDisplay(field, e.value)
		summary.TotalPnL = e.totalPnL
		summary.Residual = e.residual
		summary.Iterations = iterations
		summary.Converged = converged
		summary.Notes = append(summary.Notes, notes...)
		s.logger.Debug("breakeven solved",
			zap.String("op", "breakeven.Solve"),
			zap.String("field", field),
			zap.Float64("original", original),
			zap.Float64("value", e.value),
			zap.Float64("totalPnl", e.totalPnL),
			zap.Int("iterations", iterations),
			zap.Bool("converged", converged),
		)
		return summary
	}

	lower, err := evaluate(minVal)
	if err != nil {
		return optimization.Summary{}, err
	}
	if lower.hit() {
		return finish(lower, 0, true), nil
	}
	upper, err := evaluate(maxVal)
	if err != nil {
		return optimization.Summary{}, err
	}
	if upper.hit() {
		return finish(upper, 0, true), nil
	}

	if mathutil.SameSign(lower.residual, upper.residual) {
		closest := upper
		if math.Abs(lower.residual) < math.Abs(upper.residual) {
			closest = lower
		}
		note := fmt.Sprintf(
			"total P&L ranges from %s to %s for %s between %s and %s; target %s is not bracketed",
			format.Currency(lower.totalPnL),
			format.Currency(upper.totalPnL),
			field,
			formatFieldDisplay(field, minVal),
			formatFieldDisplay(field, maxVal),
			format.Currency(cfg.Target),
		)
		s.logger.Warn("breakeven target not bracketed",
			zap.String("op", "breakeven.Solve"),
			zap.String("field", field),
			zap.Float64("min", minVal),
			zap.Float64("max", maxVal),
			zap.Float64("target", cfg.Target),
		)
		return finish(closest, 0, false, note), nil
	}

	best := lower
	if math.Abs(upper.residual) < math.Abs(lower.residual) {
		best = upper
	}
	iterations := 0
	for iterations < cfg.MaxIterations {
		if upper.value-lower.value < cfg.Tolerance {
			return finish(best, iterations, true), nil
		}
		mid, err := evaluate(lower.value + (upper.value-lower.value)/2)
		if err != nil {
			return optimization.Summary{}, err
		}
		iterations++
		if math.Abs(mid.residual) <= math.Abs(best.residual) {
			best = mid
		}
		if mid.hit() {
			return finish(mid, iterations, true), nil
		}
		if mathutil.SameSign(mid.residual, lower.residual) {
			lower = mid
		} else {
			upper = mid
		}
	}
	if upper.value-lower.value < cfg.Tolerance {
		return finish(best, iterations, true), nil
	}

	note := fmt.Sprintf("stopped after %d iterations with residual %s", iterations, format.Currency(best.residual))
	return finish(best, iterations, false, note), nil
}

// SolveAll runs every directive in order and stops at the first error.
func (s *Solver) SolveAll(cargo economics.CargoTerms, shipping economics.ShippingTerms, directives []config.BreakevenConfig) ([]optimization.Summary, error) {
	var summaries []optimization.Summary
	for i := range directives {
		summary, err := s.Solve(cargo, shipping, directives[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
