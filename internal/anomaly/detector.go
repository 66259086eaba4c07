package anomaly

import (
	"fmt"

	"github.com/shopspring/decimal"

	"zoo/internal/eventlog"
	id "zoo/pkg/domain"
)

// Rule configures one detector instance. The newest observation is compared
// against the mean of the up to Window-1 observations preceding it.
type Rule struct {
	Kind            Kind
	Window          int
	MinObservations int
	ThresholdPct    decimal.Decimal
	Level           eventlog.AlertLevel
	AlertKind       eventlog.AlertKind
}

var (
	// WeightRule compares a weight with the moving average of the previous five.
	WeightRule = Rule{
		Kind:            KindWeight,
		Window:          6,
		MinObservations: 3,
		ThresholdPct:    decimal.NewFromInt(10),
		Level:           eventlog.LevelHigh,
		AlertKind:       eventlog.AlertWeightAnomaly,
	}
	// FeedingRule compares a feeding amount with the average of the previous seven.
	FeedingRule = Rule{
		Kind:            KindFeeding,
		Window:          8,
		MinObservations: 2,
		ThresholdPct:    decimal.NewFromInt(40),
		Level:           eventlog.LevelMedium,
		AlertKind:       eventlog.AlertFeedingAnomaly,
	}
)

// RuleFor returns the rule watching kind.
func RuleFor(kind Kind) Rule {
	if kind == KindFeeding {
		return FeedingRule
	}
	return WeightRule
}

var hundred = decimal.NewFromInt(100)

// Evaluate applies rule to observations ordered newest first. Observations
// beyond the rule's window are ignored.
//
// The threshold test is exact: with n baseline observations summing to s, the
// newest value v deviates by more than t percent iff |n*v - s| * 100 > t * |s|.
// No division happens before the comparison, so a change of exactly t percent
// never alerts.
func Evaluate(rule Rule, animal id.AnimalID, observations []Observation) *Result {
	if len(observations) > rule.Window {
		observations = observations[:rule.Window]
	}
	res := &Result{
		AnimalID: animal,
		Kind:     rule.Kind,
	}
	if len(observations) < rule.MinObservations || len(observations) < 2 {
		res.Verdict = VerdictInsufficientData
		res.Samples = max(len(observations)-1, 0)
		res.Message = fmt.Sprintf("insufficient data: need at least %d %s observations, have %d",
			rule.MinObservations, rule.Kind.label(), len(observations))
		return res
	}

	newest := observations[0]
	baseline := observations[1:]
	n := decimal.NewFromInt(int64(len(baseline)))
	sum := decimal.Zero
	for _, o := range baseline {
		sum = sum.Add(o.Value)
	}

	res.newest = newest
	res.Current = newest.Value
	res.Samples = len(baseline)
	if sum.IsZero() {
		res.Verdict = VerdictCannotCompute
		res.Message = fmt.Sprintf("recent average %s is zero, change cannot be computed", rule.Kind.label())
		return res
	}

	avg := sum.Div(n)
	res.Baseline = avg.Round(3)
	res.ChangePct = newest.Value.Sub(avg).Div(avg).Mul(hundred).Round(1)

	deviation := newest.Value.Mul(n).Sub(sum).Abs().Mul(hundred)
	if deviation.GreaterThan(rule.ThresholdPct.Mul(sum.Abs())) {
		res.Verdict = VerdictAnomaly
		res.Message = fmt.Sprintf("%s anomaly %s (recent average %skg, current %skg)",
			rule.Kind.label(), formatPct(res.ChangePct), id.FormatKg(avg.Round(2)), id.FormatKg(newest.Value))
		return res
	}
	res.Verdict = VerdictNormal
	res.Message = fmt.Sprintf("%s within range %s (recent average %skg, current %skg)",
		rule.Kind.label(), formatPct(res.ChangePct), id.FormatKg(avg.Round(2)), id.FormatKg(newest.Value))
	return res
}

func formatPct(pct decimal.Decimal) string {
	if pct.IsPositive() {
		return "+" + pct.StringFixed(1) + "%"
	}
	return pct.StringFixed(1) + "%"
}
