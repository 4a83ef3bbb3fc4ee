package collector

import (
	"testing"
	"time"
)

func TestCollect_MultiTimeframe(t *testing.T) {
	end := time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC) // a Friday
	fetcher := &MockFetcher{Price: 200, Days: 756, EndDate: end}
	col := NewCollector(fetcher, "MOCK")

	now := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	analysis, err := col.Collect(4, now)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	// Three years of history covers max, 3yr and 1yr at minimum.
	for _, label := range []string{"max", "3yr", "1yr"} {
		if analysis.Timeframes[label] == nil {
			t.Errorf("expected %q timeframe for a 3-year mock series", label)
		}
	}
	if len(analysis.WeeklyReturns) == 0 {
		t.Error("expected weekly returns over the full window")
	}
	if analysis.Projection == nil {
		t.Fatal("expected a projection from the 1yr record")
	}
	if analysis.Projection.WeeksAhead != 4 {
		t.Errorf("weeks ahead = %d, want 4", analysis.Projection.WeeksAhead)
	}
	if analysis.Projection.TargetDate.Weekday() != time.Friday {
		t.Errorf("target date %s is not a Friday", analysis.Projection.TargetDate.Format("2006-01-02"))
	}
	if analysis.CurrentPrice <= 0 {
		t.Errorf("current price = %f", analysis.CurrentPrice)
	}
	if !analysis.GeneratedAt.Equal(now) {
		t.Error("analysis must be stamped with the injected run time")
	}
}

func TestCollectRange_ShortRangeYieldsAbsence(t *testing.T) {
	end := time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC)
	fetcher := &MockFetcher{Price: 100, Days: 756, EndDate: end}
	col := NewCollector(fetcher, "MOCK")

	// Three days inside one week: no second weekly close, so no stats.
	start := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	ra, err := col.CollectRange(start, start.AddDate(0, 0, 3), 1, end)
	if err != nil {
		t.Fatalf("collect range: %v", err)
	}
	if ra.Stats != nil {
		t.Errorf("expected absent stats for a sub-week range, got %+v", ra.Stats)
	}
	if ra.Projection != nil {
		t.Error("projection must be absent without stats")
	}
}

func TestCollectRange_InvalidRange(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 100}, "MOCK")
	start := time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC)
	if _, err := col.CollectRange(start, start, 1, start); err == nil {
		t.Error("expected error for start == end")
	}
}
