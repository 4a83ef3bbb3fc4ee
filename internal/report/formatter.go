package report

import (
	"fmt"
	"strings"

	"WeeklyPulse/internal/calculator"
	"WeeklyPulse/internal/model"
)

// FormatAnalysis formats a multi-timeframe analysis into a Telegram-ready
// HTML message.
func FormatAnalysis(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s weekly returns</b> | %s\n\n", a.Symbol, a.GeneratedAt.Format("2006-01-02")))

	if a.Info != nil {
		b.WriteString(formatInfo(a.Info))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("📅 Data: %s to %s (%.1f years)\n",
		a.Series.FirstDate().Format("2006-01-02"),
		a.Series.LastDate().Format("2006-01-02"),
		float64(a.Series.Len())/252))
	b.WriteString(fmt.Sprintf("Current price: %.2f\n\n", a.CurrentPrice))

	b.WriteString("📈 <b>Timeframe comparison:</b>\n")
	b.WriteString(FormatTimeframeComparison(a.Timeframes))

	if positive, winRate := calculator.WinRate(a.WeeklyReturns); len(a.WeeklyReturns) > 0 {
		b.WriteString(fmt.Sprintf("\n✅ Positive weeks: %d of %d (%.1f%%)\n",
			positive, len(a.WeeklyReturns), winRate))
	}

	if a.Projection != nil {
		b.WriteString("\n")
		b.WriteString(FormatProjection(a.Projection))
	}

	return b.String()
}

// FormatRangeAnalysis formats a custom date-range analysis.
func FormatRangeAnalysis(ra *model.RangeAnalysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s weekly returns</b> | %s to %s\n\n",
		ra.Symbol, ra.Start.Format("2006-01-02"), ra.End.Format("2006-01-02")))

	if ra.Stats == nil {
		b.WriteString("Not enough data in this range to form weekly returns.\n")
		return b.String()
	}

	s := ra.Stats
	b.WriteString(fmt.Sprintf("Average: %+.2f%% | Min: %+.2f%% | Max: %+.2f%%\n", s.Average, s.Minimum, s.Maximum))
	b.WriteString(fmt.Sprintf("Volatility: %.2f%% over %d weeks\n", s.StdDev, s.Count))

	if positive, winRate := calculator.WinRate(ra.WeeklyReturns); len(ra.WeeklyReturns) > 0 {
		b.WriteString(fmt.Sprintf("Positive weeks: %d of %d (%.1f%%)\n", positive, len(ra.WeeklyReturns), winRate))
	}

	if ra.Projection != nil {
		b.WriteString("\n")
		b.WriteString(FormatProjection(ra.Projection))
	}

	return b.String()
}

// FormatTimeframeComparison renders one line per produced timeframe, in the
// fixed window order. The risk-adjusted ratio is omitted for windows with
// zero or undefined volatility rather than rendered as infinity.
func FormatTimeframeComparison(results model.TimeframeResults) string {
	var b strings.Builder
	for _, w := range calculator.TimeframeWindows {
		rec, ok := results[w.Label]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-4s avg %+.2f%% | min %+.2f%% | max %+.2f%% | vol %.2f%% | n=%d (%.1fy)",
			strings.ToUpper(w.Label), rec.Average, rec.Minimum, rec.Maximum, rec.StdDev, rec.Count, rec.YearsOfData))
		if ratio, ok := calculator.RiskAdjustedReturn(rec); ok {
			b.WriteString(fmt.Sprintf(" | r/v %.2f", ratio))
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "  no timeframe with sufficient history\n"
	}
	return b.String()
}

// FormatProjection renders the compounded price scenarios.
func FormatProjection(p *model.ProjectionRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔮 <b>Projection:</b> %d week(s) ahead, target %s\n",
		p.WeeksAhead, p.TargetDate.Format("January 02, 2006")))
	b.WriteString(fmt.Sprintf("  Expected:    %.2f (%+.2f%%) at %+.2f%%/wk\n", p.ExpectedPrice, p.ExpectedChange, p.WeeklyAvgReturn))
	b.WriteString(fmt.Sprintf("  Optimistic:  %.2f (%+.2f%%) at %+.2f%%/wk\n", p.OptimisticPrice, p.OptimisticChange, p.WeeklyMaxReturn))
	b.WriteString(fmt.Sprintf("  Pessimistic: %.2f (%+.2f%%) at %+.2f%%/wk\n", p.PessimisticPrice, p.PessimisticChange, p.WeeklyMinReturn))
	return b.String()
}

func formatInfo(info *model.StockInfo) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏢 %s", info.Name))
	if info.Exchange != "" {
		b.WriteString(fmt.Sprintf(" (%s)", info.Exchange))
	}
	b.WriteString("\n")
	if info.FiftyTwoWeekHigh > 0 && info.FiftyTwoWeekLow > 0 {
		b.WriteString(fmt.Sprintf("52w range: %.2f - %.2f\n", info.FiftyTwoWeekLow, info.FiftyTwoWeekHigh))
	}
	if info.MarketVolume > 0 {
		b.WriteString(fmt.Sprintf("Volume: %s\n", FormatLargeNumber(info.MarketVolume)))
	}
	return b.String()
}

// FormatLargeNumber renders big values with T/B/M/K suffixes.
func FormatLargeNumber(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
