package calculator

import (
	"testing"

	"WeeklyPulse/internal/model"
)

func TestSliceTimeframe_Unbounded(t *testing.T) {
	s := series(
		model.PricePoint{Date: day(2020, 1, 6), Close: 100},
		model.PricePoint{Date: day(2025, 1, 6), Close: 200},
	)
	got := SliceTimeframe(s, 0)
	if got.Len() != s.Len() {
		t.Errorf("years=0 must return the input unchanged, got %d points", got.Len())
	}
}

func TestSliceTimeframe_CutoffInclusive(t *testing.T) {
	s := series(
		model.PricePoint{Date: day(2023, 6, 1), Close: 90},
		model.PricePoint{Date: day(2024, 6, 14), Close: 100}, // exactly latest - 1yr
		model.PricePoint{Date: day(2024, 9, 2), Close: 110},
		model.PricePoint{Date: day(2025, 6, 14), Close: 120},
	)
	got := SliceTimeframe(s, 1)
	if got.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", got.Len())
	}
	if !got.FirstDate().Equal(day(2024, 6, 14)) {
		t.Errorf("cutoff date itself must be kept, first = %s", got.FirstDate().Format("2006-01-02"))
	}
}

func TestSliceTimeframe_Idempotent(t *testing.T) {
	s := series(
		model.PricePoint{Date: day(2022, 3, 1), Close: 90},
		model.PricePoint{Date: day(2024, 3, 1), Close: 100},
		model.PricePoint{Date: day(2025, 3, 1), Close: 110},
	)
	once := SliceTimeframe(s, 2)
	twice := SliceTimeframe(once, 2)
	if once.Len() != twice.Len() {
		t.Errorf("slicing twice with the same years changed the result: %d vs %d", once.Len(), twice.Len())
	}
}

func TestSliceTimeframe_Empty(t *testing.T) {
	got := SliceTimeframe(model.PriceSeries{}, 5)
	if !got.Empty() {
		t.Errorf("empty input must stay empty")
	}
}
