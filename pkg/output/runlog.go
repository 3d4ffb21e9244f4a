package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// RunLog is the per-run report file. One is created fresh for every run,
// appended to for the duration of that run, and never read back.
type RunLog struct {
	Logger *logrus.Logger
	Path   string
	file   *os.File
}

// lineFormatter renders entries as "<timestamp> - <LEVEL> - <message>".
type lineFormatter struct{}

// Format implements logrus.Formatter.
func (lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	line := fmt.Sprintf("%s - %s - %s\n",
		entry.Time.Format("2006-01-02 15:04:05"),
		strings.ToUpper(entry.Level.String()),
		entry.Message)
	return []byte(line), nil
}

// RunLogName returns the report filename for a run starting at now.
func RunLogName(now time.Time) string {
	return fmt.Sprintf("system_health_report_%s.log", now.Format("2006-01-02_15-04-05"))
}

// OpenRunLog creates a fresh report log in dir. The caller owns the file
// and must Close it when the run ends.
func OpenRunLog(dir string, now time.Time) (*RunLog, error) {
	path := filepath.Join(dir, RunLogName(now))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create run log: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetFormatter(lineFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	return &RunLog{Logger: logger, Path: path, file: file}, nil
}

// Close closes the underlying log file.
func (l *RunLog) Close() error {
	return l.file.Close()
}
