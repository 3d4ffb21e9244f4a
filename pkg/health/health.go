// Package health provides the scorecard, threshold rules and report
// pipeline shared by all telemetry collectors.
package health

import "fmt"

// Sink receives report lines as they are produced. Implementations render
// to the console and mirror every line into the run log.
type Sink interface {
	// Section opens a new titled report section.
	Section(title string)

	// Infof writes a plain informational line.
	Infof(format string, args ...any)

	// Successf writes a positive finding.
	Successf(format string, args ...any)

	// Notef writes a capability note (feature absent or unsupported).
	Notef(format string, args ...any)

	// Warnf writes a threshold warning.
	Warnf(format string, args ...any)

	// Errorf writes a query failure.
	Errorf(format string, args ...any)

	// Itemf writes a list entry.
	Itemf(format string, args ...any)

	// Detailf writes an indented continuation of the previous entry.
	Detailf(format string, args ...any)
}

// Recorder carries the presentation sink and the scorecard through one
// report run. It is passed by reference down the pipeline so no collector
// ever touches shared mutable state directly.
type Recorder struct {
	Sink
	card *Scorecard
}

// NewRecorder returns a Recorder writing to sink with a fresh scorecard.
func NewRecorder(sink Sink) *Recorder {
	return &Recorder{Sink: sink, card: NewScorecard()}
}

// Card returns the scorecard accumulating this run's penalties.
func (r *Recorder) Card() *Scorecard { return r.card }

// Score returns the current health score.
func (r *Recorder) Score() int { return r.card.Score() }

// Breach records a threshold breach: the warning is rendered through the
// sink and the penalty lands on the scorecard in the same step, so the
// two can never drift apart.
func (r *Recorder) Breach(penalty int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.Warnf("%s", msg)
	r.card.Penalize(penalty, msg)
}
