// Package optimization provides shared data structures for breakeven results.
package optimization

// Summary captures the result of a single breakeven directive.
type Summary struct {
	Field           string   `json:"field"`
	Original        float64  `json:"original"`
	Value           float64  `json:"value"`
	Min             float64  `json:"min"`
	Max             float64  `json:"max"`
	TargetPnL       float64  `json:"targetPnl"`
	TotalPnL        float64  `json:"totalPnl"`
	Residual        float64  `json:"residual"`
	Iterations      int      `json:"iterations"`
	Converged       bool     `json:"converged"`
	Notes           []string `json:"notes,omitempty"`
	ValueDisplay    string   `json:"valueDisplay,omitempty"`
	OriginalDisplay string   `json:"originalDisplay,omitempty"`
}
