package calculator

import (
	"math"
	"testing"
	"time"

	"WeeklyPulse/internal/model"
)

func statsRecord(avg, min, max float64) *model.StatisticsRecord {
	return &model.StatisticsRecord{Average: avg, Minimum: min, Maximum: max, StdDev: 1, Count: 52}
}

func TestProjectPrice_CompoundingLaw(t *testing.T) {
	today := day(2025, 3, 10) // a Monday
	rec := statsRecord(2.0, -3.0, 4.0)

	one := ProjectPrice(100, rec, 1, today)
	if one == nil {
		t.Fatal("expected a projection")
	}
	if math.Abs(one.ExpectedPrice-102.0) > 1e-9 {
		t.Errorf("weeks=1: expected 102.0, got %f", one.ExpectedPrice)
	}

	four := ProjectPrice(100, rec, 4, today)
	want := 100 * math.Pow(1.02, 4) // 108.243216
	if math.Abs(four.ExpectedPrice-want) > 1e-9 {
		t.Errorf("weeks=4: expected %f, got %f", want, four.ExpectedPrice)
	}
	if math.Abs(four.ExpectedChange-8.24321616) > 1e-6 {
		t.Errorf("expected change ~8.2432%%, got %f", four.ExpectedChange)
	}
	// Compounded, never linear.
	if math.Abs(four.ExpectedChange-8.0) < 1e-6 {
		t.Error("expected change must be the compounded total, not weekly rate x weeks")
	}
}

func TestProjectPrice_TargetDateIsFriday(t *testing.T) {
	rec := statsRecord(1.0, -1.0, 2.0)
	// Sweep a full week of anchor days and several horizons.
	for offset := 0; offset < 7; offset++ {
		today := day(2025, 3, 9).AddDate(0, 0, offset)
		for _, weeks := range []int{1, 2, 5, 12} {
			proj := ProjectPrice(50, rec, weeks, today)
			if proj == nil {
				t.Fatalf("no projection for offset %d weeks %d", offset, weeks)
			}
			if proj.TargetDate.Weekday() != time.Friday {
				t.Errorf("target %s is %s, want Friday", proj.TargetDate.Format("2006-01-02"), proj.TargetDate.Weekday())
			}
			horizon := today.AddDate(0, 0, weeks*7)
			if proj.TargetDate.Before(horizon) {
				t.Errorf("target %s is before today+%d weeks (%s)", proj.TargetDate.Format("2006-01-02"), weeks, horizon.Format("2006-01-02"))
			}
		}
	}
}

func TestProjectPrice_ScenarioOrdering(t *testing.T) {
	rec := statsRecord(0.5, -4.2, 6.3)
	proj := ProjectPrice(250, rec, 8, day(2025, 7, 1))
	if proj == nil {
		t.Fatal("expected a projection")
	}
	if !(proj.OptimisticPrice >= proj.ExpectedPrice && proj.ExpectedPrice >= proj.PessimisticPrice) {
		t.Errorf("ordering violated: %f / %f / %f", proj.OptimisticPrice, proj.ExpectedPrice, proj.PessimisticPrice)
	}
	if proj.WeeklyAvgReturn != 0.5 || proj.WeeklyMaxReturn != 6.3 || proj.WeeklyMinReturn != -4.2 {
		t.Errorf("input rates must be carried through verbatim, got %+v", proj)
	}
}

func TestProjectPrice_InvalidInputs(t *testing.T) {
	today := day(2025, 3, 10)
	rec := statsRecord(2.0, -3.0, 4.0)

	if p := ProjectPrice(100, nil, 1, today); p != nil {
		t.Error("nil stats must yield nil")
	}
	if p := ProjectPrice(100, rec, 0, today); p != nil {
		t.Error("weeksAhead < 1 must yield nil")
	}
	if p := ProjectPrice(0, rec, 1, today); p != nil {
		t.Error("zero price must yield nil")
	}
	if p := ProjectPrice(-10, rec, 1, today); p != nil {
		t.Error("negative price must yield nil")
	}
	if p := ProjectPrice(math.NaN(), rec, 1, today); p != nil {
		t.Error("NaN price must yield nil")
	}
	if p := ProjectPrice(math.Inf(1), rec, 1, today); p != nil {
		t.Error("infinite price must yield nil")
	}
}

func TestProjectPrice_SingleReturnWeek(t *testing.T) {
	// The concrete two-week scenario: one +5% return compounds to 105.
	rec := &model.StatisticsRecord{Average: 5, Minimum: 5, Maximum: 5, StdDev: 0, Count: 1}
	proj := ProjectPrice(100, rec, 1, day(2025, 1, 13))
	if proj == nil {
		t.Fatal("expected a projection")
	}
	if math.Abs(proj.ExpectedPrice-105) > 1e-9 {
		t.Errorf("expected 105, got %f", proj.ExpectedPrice)
	}
	if proj.ExpectedPrice != proj.OptimisticPrice || proj.ExpectedPrice != proj.PessimisticPrice {
		t.Error("degenerate stats must collapse all three scenarios")
	}
}
