package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"WeeklyPulse/internal/chart"
	"WeeklyPulse/internal/collector"
	"WeeklyPulse/internal/model"
	"WeeklyPulse/internal/notifier"
	"WeeklyPulse/internal/recorder"
	"WeeklyPulse/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic analysis task and serves chat commands.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Recorder   recorder.Recorder
	Notifier   *notifier.TelegramNotifier // nil means log-only reports
	Ctx        context.Context
	WeeksAhead int
	ChartDir   string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, tn *notifier.TelegramNotifier, weeksAhead int, chartDir string) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Recorder:   rec,
		Notifier:   tn,
		Ctx:        ctx,
		WeeksAhead: weeksAhead,
		ChartDir:   chartDir,
	}
}

// RegisterAll registers the scheduled analysis task.
func (s *Scheduler) RegisterAll(analysisCron string) error {
	if _, err := s.Cron.AddFunc(analysisCron, s.analysisTask); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAnalysisNow executes the analysis task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunAnalysisNow() {
	s.analysisTask()
}

func (s *Scheduler) analysisTask() {
	log.Printf("[INFO] running analysis for %s", s.Collector.Symbol)

	analysis, err := s.Collector.Collect(s.WeeksAhead, time.Now())
	if err != nil {
		log.Printf("[ERROR] analysis collect: %v", err)
		s.trySend(fmt.Sprintf("❌ analysis failed for %s: %v", s.Collector.Symbol, err))
		return
	}

	s.trySend(report.FormatAnalysis(analysis))

	if err := s.Recorder.RecordAnalysis(analysis); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}

	s.saveHistogram(analysis)
}

// saveHistogram renders the full-window return distribution to ChartDir.
// Disabled when no directory is configured.
func (s *Scheduler) saveHistogram(analysis *model.Analysis) {
	if s.ChartDir == "" || len(analysis.WeeklyReturns) == 0 {
		return
	}
	img, err := chart.RenderHistogram(analysis.WeeklyReturns, analysis.Symbol)
	if err != nil {
		log.Printf("[WARN] render histogram: %v", err)
		return
	}
	if err := os.MkdirAll(s.ChartDir, 0755); err != nil {
		log.Printf("[WARN] create chart dir: %v", err)
		return
	}
	name := fmt.Sprintf("%s_%s.png", analysis.Symbol, analysis.GeneratedAt.Format("20060102"))
	path := filepath.Join(s.ChartDir, name)
	if err := os.WriteFile(path, img, 0644); err != nil {
		log.Printf("[WARN] write histogram: %v", err)
		return
	}
	log.Printf("[INFO] histogram saved: %s", path)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return s.helpText()
	}

	switch fields[0] {
	case "/analyze":
		go s.RunAnalysisNow()
		return fmt.Sprintf("running analysis for %s...", s.Collector.Symbol)
	case "/price":
		price, err := s.Collector.Fetcher.FetchLatestPrice(s.Collector.Symbol)
		if err != nil {
			return fmt.Sprintf("price fetch failed: %v", err)
		}
		return fmt.Sprintf("%s latest close: %.2f", s.Collector.Symbol, price)
	case "/range":
		if len(fields) != 3 {
			return "usage: /range 2024-01-01 2025-01-01"
		}
		return s.rangeAnalysis(fields[1], fields[2])
	default:
		return s.helpText()
	}
}

func (s *Scheduler) rangeAnalysis(startStr, endStr string) string {
	start, err := time.ParseInLocation("2006-01-02", startStr, time.UTC)
	if err != nil {
		return fmt.Sprintf("bad start date %q", startStr)
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.UTC)
	if err != nil {
		return fmt.Sprintf("bad end date %q", endStr)
	}

	ra, err := s.Collector.CollectRange(start, end, s.WeeksAhead, time.Now())
	if err != nil {
		return fmt.Sprintf("range analysis failed: %v", err)
	}
	return report.FormatRangeAnalysis(ra)
}

func (s *Scheduler) helpText() string {
	return "commands:\n• /analyze - run multi-timeframe analysis now\n• /price - latest close\n• /range START END - analyze a custom date range"
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		log.Printf("[INFO] report:\n%s", text)
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
