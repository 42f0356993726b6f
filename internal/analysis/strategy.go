package analysis

import "fmt"

// Strategy identifies one of the evaluation patterns used to rank
// candidate entry points in the weekly report.
type Strategy string

const (
	StrategyProfitEfficiency Strategy = "profit_efficiency"
	StrategyWinRate          Strategy = "win_rate"
	StrategyTimeEfficiency   Strategy = "time_efficiency"
	StrategyMaxProfit        Strategy = "max_profit"

	// US-session variants appear in the outcome report but are not part
	// of the default selection universe.
	StrategyProfitEfficiencyUS Strategy = "profit_efficiency_us"
	StrategyWinRateUS          Strategy = "win_rate_us"
	StrategyTimeEfficiencyUS   Strategy = "time_efficiency_us"
	StrategyMaxProfitUS        Strategy = "max_profit_us"
)

// TargetStrategies is the fixed set of strategies the selector reports on,
// in display order.
var TargetStrategies = []Strategy{
	StrategyProfitEfficiency,
	StrategyWinRate,
	StrategyTimeEfficiency,
	StrategyMaxProfit,
}

// DefaultCorrelation maps candidate-report strategy keys to the point
// names used by the outcome report. The two reports were produced by
// different upstream systems and disagree on naming, so every target
// strategy must have an entry here.
var DefaultCorrelation = map[Strategy]string{
	StrategyProfitEfficiency:   "profit_efficiency_std",
	StrategyWinRate:            "win_rate",
	StrategyTimeEfficiency:     "time_efficiency",
	StrategyMaxProfit:          "max_profit",
	StrategyProfitEfficiencyUS: "profit_efficiency_std_us",
	StrategyWinRateUS:          "win_rate_us",
	StrategyTimeEfficiencyUS:   "time_efficiency_us",
	StrategyMaxProfitUS:        "max_profit_us",
}

var displayNames = map[Strategy]string{
	StrategyProfitEfficiency: "Profit Efficiency",
	StrategyWinRate:          "Win Rate",
	StrategyTimeEfficiency:   "Time Efficiency",
	StrategyMaxProfit:        "Max Profit",
}

// DisplayName returns the human-readable name used in output headers.
func (s Strategy) DisplayName() string {
	if name, ok := displayNames[s]; ok {
		return name
	}
	return string(s)
}

// ValidateCorrelation checks that every target strategy resolves to an
// outcome-report point name. A missing entry would silently produce an
// empty shortlist for that strategy, so it is rejected up front.
func ValidateCorrelation(targets []Strategy, correlation map[Strategy]string) error {
	for _, s := range targets {
		key, ok := correlation[s]
		if !ok || key == "" {
			return fmt.Errorf("strategy %q has no outcome-report point name mapping", s)
		}
	}
	return nil
}
