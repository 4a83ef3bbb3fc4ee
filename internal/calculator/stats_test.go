package calculator

import (
	"math"
	"testing"

	"WeeklyPulse/internal/model"
)

func returnsOf(pcts ...float64) []model.WeeklyReturn {
	out := make([]model.WeeklyReturn, len(pcts))
	d := day(2025, 1, 3)
	for i, p := range pcts {
		out[i] = model.WeeklyReturn{WeekEnd: d, Pct: p}
		d = d.AddDate(0, 0, 7)
	}
	return out
}

func TestStatistics_KnownValues(t *testing.T) {
	rec := Statistics(returnsOf(1, 2, 3, 4))
	if rec == nil {
		t.Fatal("expected a record")
	}
	if math.Abs(rec.Average-2.5) > 1e-9 {
		t.Errorf("average = %f, want 2.5", rec.Average)
	}
	if rec.Minimum != 1 || rec.Maximum != 4 {
		t.Errorf("min/max = %f/%f, want 1/4", rec.Minimum, rec.Maximum)
	}
	// Sample std dev of {1,2,3,4}: sqrt(5/3).
	want := math.Sqrt(5.0 / 3.0)
	if math.Abs(rec.StdDev-want) > 1e-9 {
		t.Errorf("stddev = %f, want %f", rec.StdDev, want)
	}
	if rec.Count != 4 {
		t.Errorf("count = %d, want 4", rec.Count)
	}
}

func TestStatistics_SingleSample(t *testing.T) {
	rec := Statistics(returnsOf(5.0))
	if rec == nil {
		t.Fatal("expected a record")
	}
	if rec.Average != 5.0 || rec.Minimum != 5.0 || rec.Maximum != 5.0 {
		t.Errorf("single sample should collapse avg/min/max to 5.0, got %+v", rec)
	}
	if rec.StdDev != 0 {
		t.Errorf("stddev with one sample must be 0, got %f", rec.StdDev)
	}
	if rec.Count != 1 {
		t.Errorf("count = %d, want 1", rec.Count)
	}
}

func TestStatistics_Empty(t *testing.T) {
	if rec := Statistics(nil); rec != nil {
		t.Errorf("empty input must yield nil, got %+v", rec)
	}
}

func TestRiskAdjustedReturn_Guard(t *testing.T) {
	if _, ok := RiskAdjustedReturn(nil); ok {
		t.Error("nil record must not produce a ratio")
	}
	if _, ok := RiskAdjustedReturn(&model.StatisticsRecord{Average: 2, StdDev: 0, Count: 1}); ok {
		t.Error("zero volatility must not produce a ratio")
	}
	ratio, ok := RiskAdjustedReturn(&model.StatisticsRecord{Average: 3, StdDev: 2, Count: 10})
	if !ok || math.Abs(ratio-1.5) > 1e-9 {
		t.Errorf("expected ratio 1.5, got %f (ok=%v)", ratio, ok)
	}
}

func TestWinRate(t *testing.T) {
	positive, pct := WinRate(returnsOf(1.2, -0.5, 0.8, -2.0, 3.1))
	if positive != 3 {
		t.Errorf("positive = %d, want 3", positive)
	}
	if math.Abs(pct-60.0) > 1e-9 {
		t.Errorf("pct = %f, want 60", pct)
	}
	if p, r := WinRate(nil); p != 0 || r != 0 {
		t.Errorf("empty input should give zeros, got %d/%f", p, r)
	}
}
