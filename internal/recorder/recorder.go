package recorder

import "WeeklyPulse/internal/model"

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordAnalysis(a *model.Analysis) error
	Close() error
}
