package report

import (
	"strings"
	"testing"
	"time"

	"WeeklyPulse/internal/model"
)

func TestFormatTimeframeComparison_OmitsRatioAtZeroVolatility(t *testing.T) {
	results := model.TimeframeResults{
		"max": {Average: 0.5, Minimum: -3, Maximum: 4, StdDev: 2, Count: 100, YearsOfData: 4},
		"1yr": {Average: 5, Minimum: 5, Maximum: 5, StdDev: 0, Count: 1, YearsOfData: 0.1},
	}
	out := FormatTimeframeComparison(results)

	if !strings.Contains(out, "MAX") || !strings.Contains(out, "1YR") {
		t.Fatalf("expected both labels in output:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, line := range lines {
		if strings.Contains(line, "1YR") && strings.Contains(line, "r/v") {
			t.Errorf("zero-volatility window must not show a risk-adjusted ratio: %s", line)
		}
		if strings.Contains(line, "MAX") && !strings.Contains(line, "r/v 0.25") {
			t.Errorf("expected ratio 0.25 on the max line: %s", line)
		}
	}
}

func TestFormatTimeframeComparison_Empty(t *testing.T) {
	out := FormatTimeframeComparison(model.TimeframeResults{})
	if !strings.Contains(out, "no timeframe") {
		t.Errorf("expected placeholder for empty results, got %q", out)
	}
}

func TestFormatProjection(t *testing.T) {
	p := &model.ProjectionRecord{
		CurrentPrice:      100,
		ExpectedPrice:     108.24,
		OptimisticPrice:   120,
		PessimisticPrice:  90,
		ExpectedChange:    8.24,
		OptimisticChange:  20,
		PessimisticChange: -10,
		WeeksAhead:        4,
		TargetDate:        time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC),
		WeeklyAvgReturn:   2,
		WeeklyMaxReturn:   4.66,
		WeeklyMinReturn:   -2.6,
	}
	out := FormatProjection(p)
	for _, want := range []string{"4 week(s)", "April 11, 2025", "108.24", "+8.24%", "Pessimistic"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatLargeNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5e12, "2.50T"},
		{3.1e9, "3.10B"},
		{4.2e6, "4.20M"},
		{9.9e3, "9.90K"},
		{512, "512.00"},
	}
	for _, tt := range tests {
		if got := FormatLargeNumber(tt.in); got != tt.want {
			t.Errorf("FormatLargeNumber(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
