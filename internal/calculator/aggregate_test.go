package calculator

import (
	"testing"
	"time"

	"WeeklyPulse/internal/model"
)

// fridaySeries builds a series with one close per Friday, starting at from.
func fridaySeries(from time.Time, weeks int) model.PriceSeries {
	points := make([]model.PricePoint, weeks)
	d := from
	for i := 0; i < weeks; i++ {
		points[i] = model.PricePoint{Date: d, Close: 100 + float64(i)*0.5}
		d = d.AddDate(0, 0, 7)
	}
	return series(points...)
}

func TestTimeframeStats_TwoYearSeries(t *testing.T) {
	// 104 Fridays: roughly two years of weekly closes.
	s := fridaySeries(day(2023, 9, 1), 104)
	results := TimeframeStats(s)

	for _, label := range []string{"max", "10yr", "5yr", "3yr", "1yr"} {
		rec, ok := results[label]
		if !ok {
			t.Fatalf("label %q missing: every window slicing into >=2 weekly closes must be present", label)
		}
		if rec == nil {
			t.Fatalf("label %q present with nil record", label)
		}
	}

	maxRec := results["max"]
	yrRec := results["1yr"]
	if yrRec.Count >= maxRec.Count {
		t.Errorf("1yr window must see fewer returns than max: %d vs %d", yrRec.Count, maxRec.Count)
	}
	if maxRec.Count != 103 {
		t.Errorf("max window: expected 103 returns from 104 weekly closes, got %d", maxRec.Count)
	}

	if !maxRec.DataStart.Equal(s.FirstDate()) || !maxRec.DataEnd.Equal(s.LastDate()) {
		t.Errorf("max record must carry slice bounds, got %s..%s", maxRec.DataStart, maxRec.DataEnd)
	}
	wantYears := float64(s.Len()) / 252
	if maxRec.YearsOfData != wantYears {
		t.Errorf("years of data = %f, want %f", maxRec.YearsOfData, wantYears)
	}
}

func TestTimeframeStats_InsufficientHistory(t *testing.T) {
	oneDay := series(model.PricePoint{Date: day(2025, 1, 6), Close: 100})
	results := TimeframeStats(oneDay)
	if len(results) != 0 {
		t.Errorf("a single trading day yields no usable window, got %d entries", len(results))
	}

	if results := TimeframeStats(model.PriceSeries{}); len(results) != 0 {
		t.Errorf("empty series must yield an empty result, got %d entries", len(results))
	}
}

func TestTimeframeStats_AbsentNotNil(t *testing.T) {
	// Three weekly closes only: every produced entry must be non-nil and no
	// label may be stored as an explicit null.
	s := fridaySeries(day(2025, 6, 6), 3)
	results := TimeframeStats(s)
	if len(results) == 0 {
		t.Fatal("expected at least the max window")
	}
	for label, rec := range results {
		if rec == nil {
			t.Errorf("label %q stored with nil record", label)
		}
	}
}
