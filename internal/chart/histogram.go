package chart

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"WeeklyPulse/internal/model"
)

const histogramBins = 20

// RenderHistogram draws the weekly-return distribution as a PNG bar chart
// with fixed-width bins. The mean is annotated in the subtitle since every
// consumer asks for it next anyway.
func RenderHistogram(returns []model.WeeklyReturn, title string) ([]byte, error) {
	if len(returns) == 0 {
		return nil, errors.New("no returns to plot")
	}

	min, max, mean := returns[0].Pct, returns[0].Pct, 0.0
	for _, r := range returns {
		if r.Pct < min {
			min = r.Pct
		}
		if r.Pct > max {
			max = r.Pct
		}
		mean += r.Pct
	}
	mean /= float64(len(returns))

	bins := histogramBins
	width := (max - min) / float64(bins)
	if width == 0 {
		// All returns identical: a single bar carries everything.
		bins = 1
		width = 1
	}

	counts := make([]float64, bins)
	labels := make([]string, bins)
	for _, r := range returns {
		idx := int((r.Pct - min) / width)
		if idx >= bins {
			idx = bins - 1 // the max value lands in the last bin
		}
		counts[idx]++
	}
	for i := range labels {
		center := min + (float64(i)+0.5)*width
		labels[i] = fmt.Sprintf("%.1f", center)
	}

	painter, err := charts.BarRender([][]float64{counts},
		charts.TitleTextOptionFunc(title+" weekly return distribution", fmt.Sprintf("mean %.2f%%, %d weeks", mean, len(returns))),
		charts.XAxisDataOptionFunc(labels),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	return painter.Bytes()
}
