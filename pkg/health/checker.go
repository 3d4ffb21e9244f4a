package health

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Collector gathers one category of host telemetry and reports findings
// through the Recorder.
type Collector interface {
	Name() string
	Collect(rec *Recorder) error
}

// Checker runs collectors in a fixed sequence. Collection is strictly
// sequential: the report reads top to bottom in the order the host was
// queried, and the 1-second CPU sample never races anything.
type Checker struct {
	logger *logrus.Logger
}

// NewChecker creates a checker logging diagnostics to logger.
func NewChecker(logger *logrus.Logger) *Checker {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.WarnLevel)
	}
	return &Checker{logger: logger}
}

// Run executes each collector once, in order. A failed collector is
// reported through the sink and skipped; it never stops the run.
func (c *Checker) Run(rec *Recorder, collectors []Collector) {
	for _, collector := range collectors {
		c.logger.WithField("collector", collector.Name()).Debug("Running collector")

		rec.Section(collector.Name())

		start := time.Now()
		err := collector.Collect(rec)
		elapsed := time.Since(start)

		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"collector": collector.Name(),
				"error":     err,
			}).Warn("Collector failed")
			rec.Errorf("Could not retrieve %s: %v", collector.Name(), err)
			continue
		}

		c.logger.WithFields(logrus.Fields{
			"collector": collector.Name(),
			"duration":  elapsed,
		}).Debug("Collector finished")
	}
}
